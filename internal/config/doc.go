// Package config provides configuration loading for driftd.
//
// Configuration is read from a project-local .drift.yaml, overridden by
// DRIFT_-prefixed environment variables, with hardcoded defaults filling in
// the rest. The staleness windows default to the values the original
// workflow scripts used as fixed constants.
package config
