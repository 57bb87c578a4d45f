package artifact

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// The registry appears in the wild in two incompatible text schemas. Both
// map onto the same Feature type behind a one-shot schema detection; when
// neither marker is present the table parser is the default.

var (
	// tableRowRe matches "| F-0001 | name | status |" rows.
	tableRowRe = regexp.MustCompile(`^\|\s*(F-\d{4})\s*\|([^|]*)\|([^|]*)`)

	// headingRe matches "## F-0001: name" or "### F-0001 name" headings.
	headingRe = regexp.MustCompile(`^#{2,3}\s+(F-\d{4})\s*:?\s*(.*)$`)

	// headingStatusRe matches a "Status: shipped" line under a feature
	// heading, with optional bullet and bold markers.
	headingStatusRe = regexp.MustCompile(`^(?:[-*]\s*)?\*{0,2}[Ss]tatus\*{0,2}\s*:\s*([A-Za-z_ -]+)`)
)

// registryParser is one schema strategy.
type registryParser interface {
	Parse(text string) []Feature
}

// DetectSchema inspects the registry text once and picks the schema. The
// first marker wins; undetectable input defaults to the table schema.
func DetectSchema(text string) Schema {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if tableRowRe.MatchString(line) {
			return SchemaTable
		}
		if headingRe.MatchString(line) {
			return SchemaHeading
		}
	}
	return SchemaTable
}

// ParseRegistry parses registry text into features using the detected
// schema.
func ParseRegistry(text string) []Feature {
	schema := DetectSchema(text)
	var p registryParser
	switch schema {
	case SchemaHeading:
		p = headingParser{}
	default:
		p = tableParser{}
	}
	return p.Parse(text)
}

// LoadRegistry reads and parses the registry file. A missing file yields an
// empty feature set.
func LoadRegistry(path string) ([]Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return ParseRegistry(string(data)), nil
}

// tableParser parses the markdown-table schema.
type tableParser struct{}

func (tableParser) Parse(text string) []Feature {
	var features []Feature
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		m := tableRowRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		features = append(features, Feature{
			ID:     m[1],
			Name:   strings.TrimSpace(m[2]),
			Status: ParseStatus(m[3]),
			Schema: SchemaTable,
		})
	}
	return features
}

// headingParser parses the heading schema: one "## F-####" heading per
// feature with a Status line somewhere in its body.
type headingParser struct{}

func (headingParser) Parse(text string) []Feature {
	var features []Feature
	var current *Feature

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()

		if m := headingRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				features = append(features, *current)
			}
			current = &Feature{
				ID:     m[1],
				Name:   strings.TrimSpace(m[2]),
				Status: StatusPlanned,
				Schema: SchemaHeading,
			}
			continue
		}

		if current == nil {
			continue
		}
		if m := headingStatusRe.FindStringSubmatch(line); m != nil {
			current.Status = ParseStatus(m[1])
		}
	}
	if current != nil {
		features = append(features, *current)
	}
	return features
}

// SetFeatureStatus rewrites the status field of one feature in registry
// text, preserving everything else byte for byte. It reports whether the
// feature (and, in the heading schema, its status line) was found.
func SetFeatureStatus(text, id string, status Status) (string, bool) {
	lines := strings.Split(text, "\n")
	switch DetectSchema(text) {
	case SchemaHeading:
		in := false
		for i, line := range lines {
			if m := headingRe.FindStringSubmatch(line); m != nil {
				in = m[1] == id
				continue
			}
			if !in {
				continue
			}
			if loc := headingStatusRe.FindStringSubmatchIndex(line); loc != nil {
				lines[i] = line[:loc[2]] + string(status) + line[loc[3]:]
				return strings.Join(lines, "\n"), true
			}
		}
	default:
		for i, line := range lines {
			m := tableRowRe.FindStringSubmatchIndex(line)
			if m == nil || line[m[2]:m[3]] != id {
				continue
			}
			lines[i] = line[:m[6]] + " " + string(status) + " " + line[m[7]:]
			return strings.Join(lines, "\n"), true
		}
	}
	return text, false
}

// normalizeToken lowercases and underscores a raw field value.
func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, "*`")
	return strings.ReplaceAll(s, " ", "_")
}
