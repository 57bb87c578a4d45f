package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableRegistry = `# Features

| ID | Name | Status |
|----|------|--------|
| F-0001 | Drift detection | shipped |
| F-0002 | Sync fixes | in_progress |
| F-0003 | Reporting | planned |
`

const headingRegistry = `# Features

## F-0001: Drift detection
Status: shipped

Some prose about the feature.

## F-0002: Sync fixes
- **Status**: in_progress

## F-0003: Reporting
Status: planned
`

func TestDetectSchema(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Schema
	}{
		{"table rows", tableRegistry, SchemaTable},
		{"headings", headingRegistry, SchemaHeading},
		{"empty defaults to table", "", SchemaTable},
		{"prose only defaults to table", "nothing to see here\n", SchemaTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSchema(tt.text))
		})
	}
}

func TestParseRegistryTable(t *testing.T) {
	features := ParseRegistry(tableRegistry)
	require.Len(t, features, 3)

	assert.Equal(t, "F-0001", features[0].ID)
	assert.Equal(t, "Drift detection", features[0].Name)
	assert.Equal(t, StatusShipped, features[0].Status)
	assert.Equal(t, SchemaTable, features[0].Schema)

	assert.Equal(t, StatusInProgress, features[1].Status)
	assert.Equal(t, StatusPlanned, features[2].Status)
}

func TestParseRegistryHeading(t *testing.T) {
	features := ParseRegistry(headingRegistry)
	require.Len(t, features, 3)

	assert.Equal(t, "F-0001", features[0].ID)
	assert.Equal(t, "Drift detection", features[0].Name)
	assert.Equal(t, StatusShipped, features[0].Status)
	assert.Equal(t, SchemaHeading, features[0].Schema)
	assert.Equal(t, StatusInProgress, features[1].Status)
}

// Equivalent feature sets in either schema must parse identically apart
// from the schema tag.
func TestSchemaEquivalence(t *testing.T) {
	table := ParseRegistry(tableRegistry)
	heading := ParseRegistry(headingRegistry)
	require.Equal(t, len(table), len(heading))

	for i := range table {
		assert.Equal(t, table[i].ID, heading[i].ID)
		assert.Equal(t, table[i].Name, heading[i].Name)
		assert.Equal(t, table[i].Status, heading[i].Status)
	}
}

func TestParseStatusDefaults(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"shipped", StatusShipped},
		{"SHIPPED", StatusShipped},
		{"in_progress", StatusInProgress},
		{"in-progress", StatusInProgress},
		{"pending", StatusPlanned},
		{"paused", StatusPaused},
		{"deprecated", StatusDeprecated},
		{"garbage", StatusPlanned},
		{"", StatusPlanned},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseStatus(tt.raw), "raw=%q", tt.raw)
	}
}

func TestHeadingWithoutStatusLine(t *testing.T) {
	features := ParseRegistry("## F-0009: Mystery\n\nNo status here.\n")
	require.Len(t, features, 1)
	assert.Equal(t, StatusPlanned, features[0].Status)
}

func TestSetFeatureStatusTable(t *testing.T) {
	out, found := SetFeatureStatus(tableRegistry, "F-0003", StatusInProgress)
	require.True(t, found)
	assert.Contains(t, out, "| F-0003 | Reporting | in_progress |")
	// Untouched rows survive byte for byte.
	assert.Contains(t, out, "| F-0001 | Drift detection | shipped |")
	assert.Contains(t, out, "# Features")

	features := ParseRegistry(out)
	require.Len(t, features, 3)
	assert.Equal(t, StatusInProgress, features[2].Status)
}

func TestSetFeatureStatusHeading(t *testing.T) {
	out, found := SetFeatureStatus(headingRegistry, "F-0003", StatusInProgress)
	require.True(t, found)
	assert.Contains(t, out, "Status: in_progress")
	assert.Contains(t, out, "Status: shipped")
	assert.Contains(t, out, "Some prose about the feature.")

	features := ParseRegistry(out)
	assert.Equal(t, StatusInProgress, features[2].Status)
}

func TestSetFeatureStatusUnknownFeature(t *testing.T) {
	out, found := SetFeatureStatus(tableRegistry, "F-0404", StatusShipped)
	assert.False(t, found)
	assert.Equal(t, tableRegistry, out)
}

func TestSetFeatureStatusHeadingWithoutStatusLine(t *testing.T) {
	_, found := SetFeatureStatus("## F-0009: Mystery\n\nNo status here.\n", "F-0009", StatusShipped)
	assert.False(t, found)
}
