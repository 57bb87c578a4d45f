package artifact

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// journalTimeLayouts are the timestamp formats accepted in entry headings.
var journalTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseJournal parses the append-only session journal. Entries start with a
// "## <timestamp> — <topic>" heading; bodies carry Accomplished / Next steps
// / Blockers sections and an optional fenced YAML metadata block.
func ParseJournal(text string) []JournalEntry {
	var entries []JournalEntry
	var current *JournalEntry

	section := ""
	inYAML := false
	var yamlLines []string

	flushYAML := func() {
		if current == nil || len(yamlLines) == 0 {
			yamlLines = nil
			return
		}
		meta := make(map[string]any)
		if err := yaml.Unmarshal([]byte(strings.Join(yamlLines, "\n")), &meta); err == nil && len(meta) > 0 {
			current.Meta = meta
		}
		yamlLines = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if inYAML {
			if trimmed == "```" {
				inYAML = false
				flushYAML()
				continue
			}
			yamlLines = append(yamlLines, line)
			continue
		}

		if strings.HasPrefix(trimmed, "## ") && !strings.HasPrefix(trimmed, "###") {
			if current != nil {
				entries = append(entries, *current)
			}
			ts, topic := parseJournalHeading(strings.TrimPrefix(trimmed, "## "))
			current = &JournalEntry{Timestamp: ts, Topic: topic}
			section = ""
			continue
		}

		if current == nil {
			continue
		}

		if trimmed == "```yaml" || trimmed == "```yml" {
			inYAML = true
			continue
		}

		if s := journalSection(trimmed); s != "" {
			section = s
			continue
		}

		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			item := strings.TrimSpace(trimmed[2:])
			switch section {
			case "accomplished":
				current.Accomplished = append(current.Accomplished, item)
			case "next_steps":
				current.NextSteps = append(current.NextSteps, item)
			case "blockers":
				current.Blockers = append(current.Blockers, item)
			}
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// LoadJournal reads and parses the journal. Missing file yields an empty
// result.
func LoadJournal(path string) ([]JournalEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return ParseJournal(string(data)), nil
}

// parseJournalHeading splits "<timestamp> — <topic>"; either half may be
// absent.
func parseJournalHeading(heading string) (time.Time, string) {
	heading = strings.TrimSpace(heading)

	for _, sep := range []string{" — ", " - ", " | "} {
		if idx := strings.Index(heading, sep); idx > 0 {
			if ts := parseJournalTime(heading[:idx]); !ts.IsZero() {
				return ts, strings.TrimSpace(heading[idx+len(sep):])
			}
		}
	}
	if ts := parseJournalTime(heading); !ts.IsZero() {
		return ts, ""
	}
	return time.Time{}, heading
}

func parseJournalTime(value string) time.Time {
	value = strings.Trim(strings.TrimSpace(value), "[]")
	for _, layout := range journalTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// journalSection recognizes a section heading and returns its canonical key.
func journalSection(line string) string {
	line = strings.ReplaceAll(line, "**", "")
	line = strings.TrimLeft(line, "# ")
	line = strings.TrimSuffix(strings.TrimSpace(line), ":")
	switch normalizeToken(line) {
	case "accomplished", "done", "completed":
		return "accomplished"
	case "next_steps", "next", "next_step", "todo":
		return "next_steps"
	case "blockers", "blocked", "blocker":
		return "blockers"
	}
	return ""
}
