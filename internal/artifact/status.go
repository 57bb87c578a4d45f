package artifact

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"time"
)

// kvLineRe matches "Key: value" lines after bullet and bold markers have
// been stripped.
var kvLineRe = regexp.MustCompile(`^([A-Za-z][A-Za-z _]*?)\s*:\s*(.*)$`)

// statusTimeLayouts are the timestamp formats accepted in the status
// document's last-updated field.
var statusTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseStatusDoc parses the status document. Unknown keys are ignored.
func ParseStatusDoc(text string) *StatusDoc {
	doc := &StatusDoc{}
	found := false

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.ReplaceAll(scanner.Text(), "**", "")
		line = strings.TrimLeft(line, "-* \t")
		m := kvLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[2])
		switch normalizeToken(m[1]) {
		case "focus", "current_focus":
			doc.Focus = value
			found = true
		case "progress":
			doc.Progress = value
			found = true
		case "next_step", "next_steps", "next":
			doc.NextStep = value
			found = true
		case "blocker", "blockers", "blocked_on":
			doc.Blocker = value
			found = true
		case "last_updated", "updated":
			doc.RawLastUpdated = value
			doc.LastUpdated = parseStatusTime(value)
			found = true
		}
	}

	if !found {
		return nil
	}
	return doc
}

// LoadStatusDoc reads and parses the status document. Missing file yields
// nil, not an error.
func LoadStatusDoc(path string) (*StatusDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return ParseStatusDoc(string(data)), nil
}

func parseStatusTime(value string) time.Time {
	for _, layout := range statusTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Keywords extracts the focus keywords used for commit correlation: words
// of four or more letters, lowercased, with common filler removed.
func (d *StatusDoc) Keywords() []string {
	if d == nil {
		return nil
	}
	return KeywordsOf(d.Focus)
}

var keywordRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9_-]{3,}`)

// keywordStop is filler that carries no correlation signal.
var keywordStop = map[string]bool{
	"with": true, "that": true, "this": true, "from": true, "into": true,
	"then": true, "when": true, "have": true, "will": true, "work": true,
	"working": true, "implement": true, "implementing": true, "feature": true,
	"support": true, "update": true, "updating": true, "adding": true,
}

// KeywordsOf extracts correlation keywords from free text.
func KeywordsOf(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, w := range keywordRe.FindAllString(text, -1) {
		w = strings.ToLower(w)
		if keywordStop[w] || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
