package match

import (
	"path"
	"path/filepath"
	"strings"
	"unicode"
)

func (m *Matcher) matchTitle(notePath string) []Match {
	all := m.terms.All()
	if len(all) == 0 {
		return nil
	}
	s := stem(notePath)

	var ok bool
	switch m.titlePolicy {
	case TitleAnyWord:
		folded := s
		if !m.terms.CaseSensitive {
			folded = strings.ToLower(s)
		}
		for _, w := range all {
			if w != "" && strings.Contains(folded, w) {
				ok = true
				break
			}
		}
	default:
		ok = m.phrase.MatchString(s)
	}
	if !ok {
		return nil
	}
	return []Match{{Line: 1, Column: 1, Kind: KindTitle, Text: s}}
}

func (m *Matcher) matchContents(lines []string) []Match {
	if m.phrase.Empty() {
		return nil
	}
	var out []Match
	for i, line := range lines {
		for _, loc := range m.phrase.FindAll(line) {
			out = append(out, Match{Line: i + 1, Column: loc[0] + 1, Kind: KindContents, Text: line})
		}
	}
	return out
}

func (m *Matcher) matchHeaders(lines []string) []Match {
	if m.phrase.Empty() {
		return nil
	}
	var out []Match
	for i, line := range lines {
		if !isHeader(line) {
			continue
		}
		if m.phrase.MatchString(line) {
			out = append(out, Match{Line: i + 1, Column: 1, Kind: KindHeader, Text: line})
		}
	}
	return out
}

func (m *Matcher) matchTags(data []byte, lines []string) []Match {
	if len(m.terms.Tags) == 0 {
		return nil
	}
	if m.tagScope == TagScopeFile {
		tags := m.extractor.FileTags(data)
		if !m.filter.Matches(tags) {
			return nil
		}
		return []Match{{Line: 1, Column: 1, Kind: KindTags, Text: strings.Join(tags, " ")}}
	}

	var out []Match
	for i, line := range lines {
		if m.filter.Matches(m.extractor.LineTags(line)) {
			out = append(out, Match{Line: i + 1, Column: 1, Kind: KindTags, Text: line})
		}
	}
	return out
}

func isHeader(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "#")
}

// splitLines splits text into physical lines. A trailing newline does not
// start another line and a CR before the newline is dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// stem returns the file name without its last extension. A name whose
// only dot is the leading one, such as ".hidden", is its own stem.
func stem(notePath string) string {
	base := path.Base(filepath.ToSlash(notePath))
	if base == "." || base == "/" {
		return ""
	}
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return base
	}
	return base[:i]
}
