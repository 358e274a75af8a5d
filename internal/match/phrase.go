package match

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/starford/notesearch/internal/apperr"
)

// separator matches one or more whitespace characters, including Unicode
// spaces such as U+00A0 that \s alone does not cover.
const separator = `[\s\p{Zs}]+`

// Phrase matches content terms appearing in order, separated by one or
// more whitespace characters. The zero Phrase matches nothing.
//
// A case-insensitive Phrase lowercases the text before matching, the same
// way the terms were lowercased, and reports offsets into the original text.
type Phrase struct {
	re   *regexp.Regexp
	fold bool
}

// CompilePhrase builds a Phrase from terms. Terms are matched literally.
func CompilePhrase(terms []string, caseSensitive bool) (*Phrase, error) {
	if len(terms) == 0 {
		return &Phrase{}, nil
	}
	quoted := make([]string, len(terms))
	for i, t := range terms {
		if !caseSensitive {
			t, _ = fold(t)
		}
		quoted[i] = regexp.QuoteMeta(t)
	}
	expr := strings.Join(quoted, separator)
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", apperr.ErrPattern, expr, err)
	}
	return &Phrase{re: re, fold: !caseSensitive}, nil
}

// Empty reports whether the phrase was built from no terms.
func (p *Phrase) Empty() bool {
	return p.re == nil
}

// MatchString reports whether the phrase occurs anywhere in s.
func (p *Phrase) MatchString(s string) bool {
	if p.re == nil {
		return false
	}
	if p.fold {
		s, _ = fold(s)
	}
	return p.re.MatchString(s)
}

// FindAll returns the byte offsets in s of every non-overlapping occurrence.
func (p *Phrase) FindAll(s string) [][]int {
	if p.re == nil {
		return nil
	}
	if !p.fold {
		return p.re.FindAllStringIndex(s, -1)
	}
	folded, offsets := fold(s)
	locs := p.re.FindAllStringIndex(folded, -1)
	for _, loc := range locs {
		loc[0], loc[1] = offsets[loc[0]], offsets[loc[1]]
	}
	return locs
}

func (p *Phrase) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// fold lowercases s rune by rune. Lowercasing may change a rune's encoded
// length (U+0130 is two bytes, its lowercase one), so offsets maps every
// byte of the folded string back to the start of its rune in s, plus one
// trailing entry for len(s).
func fold(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		n := b.Len()
		b.WriteRune(unicode.ToLower(r))
		for k := b.Len() - n; k > 0; k-- {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(s))
	return b.String(), offsets
}
