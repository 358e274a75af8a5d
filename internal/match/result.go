package match

import "strings"

// Kind identifies the criterion that produced a Match.
type Kind int

const (
	KindTitle Kind = iota
	KindTags
	KindHeader
	KindContents
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "Title"
	case KindTags:
		return "Tags"
	case KindHeader:
		return "Header"
	case KindContents:
		return "Contents"
	default:
		return "Unknown"
	}
}

// Match is one located hit. Line and Column are 1-indexed. Whole-line
// criteria always report column 1. Text is the title stem, the matching
// line, or the matching tag line.
type Match struct {
	Line   int
	Column int
	Kind   Kind
	Text   string
}

// Summary records which criteria matched at all.
type Summary struct {
	Title    bool
	Tags     bool
	Header   bool
	Contents bool
}

// String renders the four-slot glyph summary: title, tags, header, contents.
func (s Summary) String() string {
	glyph := func(ok bool, g byte) byte {
		if ok {
			return g
		}
		return ' '
	}
	return string([]byte{
		glyph(s.Title, 'T'),
		glyph(s.Tags, 't'),
		glyph(s.Header, 'h'),
		glyph(s.Contents, 'c'),
	})
}

// None reports whether no criterion matched.
func (s Summary) None() bool {
	return !(s.Title || s.Tags || s.Header || s.Contents)
}

// Describe lists the matched criteria in English, e.g. "Title, Tags, and Contents".
func (s Summary) Describe() string {
	var parts []string
	for _, k := range []struct {
		ok   bool
		kind Kind
	}{
		{s.Title, KindTitle},
		{s.Tags, KindTags},
		{s.Header, KindHeader},
		{s.Contents, KindContents},
	} {
		if k.ok {
			parts = append(parts, k.kind.String())
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	}
	parts[len(parts)-1] = "and " + parts[len(parts)-1]
	return strings.Join(parts, ", ")
}

// FileResult is the aggregated outcome of matching one note.
type FileResult struct {
	Path    string
	Summary Summary
	Matches []Match
}

// Empty reports whether the result carries nothing to show.
func (r FileResult) Empty() bool {
	return r.Summary.None() && len(r.Matches) == 0
}
