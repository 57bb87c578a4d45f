package drift

import (
	"encoding/json"
)

// Type classifies a drift issue.
type Type string

const (
	TypeIncompleteShipped    Type = "incomplete_shipped"
	TypeStatusDrift          Type = "status_drift"
	TypeStaleInProgress      Type = "stale_in_progress"
	TypeOrphanedAcceptance   Type = "orphaned_acceptance"
	TypeOrphanedAnnotation   Type = "orphaned_annotation"
	TypeMissingAnnotation    Type = "missing_annotation"
	TypeStaleFocus           Type = "stale_focus"
	TypeUntrackedFile        Type = "untracked_file"
	TypeHookMisconfigured    Type = "hook_misconfigured"
	TypeTemplateMarker       Type = "template_marker"
	TypeTemplatePlaceholder  Type = "template_placeholder"
	TypeDocDrift             Type = "doc_drift"
	TypeUndocumentedCode     Type = "undocumented_code"
	TypeUndocumentedEndpoint Type = "undocumented_endpoint"
)

// Issue is one detected inconsistency. Issues are ephemeral: recomputed on
// every run and never persisted except as report output.
type Issue struct {
	Type        Type
	Description string
	File        string
	Feature     string

	// Attrs carries free-form extra attributes (completion percentages,
	// keyword lists). They are flattened into the JSON rendering.
	Attrs map[string]any
}

// MarshalJSON flattens Attrs into the issue object, keeping the stable
// type/description/file/feature fields first-class.
func (i Issue) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(i.Attrs)+4)
	for k, v := range i.Attrs {
		m[k] = v
	}
	m["type"] = string(i.Type)
	m["description"] = i.Description
	if i.File != "" {
		m["file"] = i.File
	}
	if i.Feature != "" {
		m["feature"] = i.Feature
	}
	return json.Marshal(m)
}
