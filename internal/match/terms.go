package match

import (
	"slices"
	"strings"

	"github.com/starford/notesearch/internal/parser"
)

// TermSet is the classified query of one run.
type TermSet struct {
	// Content holds the content terms in input order. Order and repetition
	// are kept because the phrase is built from them.
	Content []string
	// Tags holds the tag terms, sigil removed, deduplicated in first-seen order.
	Tags []string
	// CaseSensitive is false when every term was lowercased.
	CaseSensitive bool
}

// Classify splits raw search terms into tag terms and content terms.
// Unless caseSensitive is set, terms are lowercased first. A bare sigil
// produces the empty tag term, which matches no tag. Empty content terms
// are dropped.
func Classify(raw []string, caseSensitive bool) TermSet {
	ts := TermSet{CaseSensitive: caseSensitive}
	for _, w := range raw {
		if !caseSensitive {
			w = strings.ToLower(w)
		}
		if tag, ok := strings.CutPrefix(w, parser.TagSigil); ok {
			if !slices.Contains(ts.Tags, tag) {
				ts.Tags = append(ts.Tags, tag)
			}
			continue
		}
		if w == "" {
			continue
		}
		ts.Content = append(ts.Content, w)
	}
	return ts
}

// All returns the deduplicated union of content and tag terms.
func (ts TermSet) All() []string {
	out := make([]string, 0, len(ts.Content)+len(ts.Tags))
	for _, w := range ts.Content {
		if !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	for _, w := range ts.Tags {
		if !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}

// Empty reports whether the query has no terms at all.
func (ts TermSet) Empty() bool {
	return len(ts.Content) == 0 && len(ts.Tags) == 0
}

// HasEmptyTag reports whether a bare sigil was given.
func (ts TermSet) HasEmptyTag() bool {
	return slices.Contains(ts.Tags, "")
}
