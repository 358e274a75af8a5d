// Package match decides which criteria (title, tags, header, contents) a
// note satisfies for a query and records where each hit is.
package match

import (
	"cmp"
	"errors"
	"slices"
	"unicode/utf8"

	"github.com/starford/notesearch/internal/apperr"
	"github.com/starford/notesearch/internal/parser"
	"github.com/starford/notesearch/internal/tagfilter"
)

var errInvalidUTF8 = errors.New("not valid UTF-8 text")

// Reader loads the raw bytes of a note.
type Reader interface {
	Read(path string) ([]byte, error)
}

// TagExtractor returns the tags declared on a line or in a whole note.
type TagExtractor interface {
	LineTags(line string) []string
	FileTags(data []byte) []string
}

// TagFilter decides whether a declared tag set satisfies the tag query.
type TagFilter interface {
	Matches(tags []string) bool
}

// Option is a functional option for configuring a Matcher.
type Option func(*Matcher)

// WithTitlePolicy sets the title matching policy.
func WithTitlePolicy(p TitlePolicy) Option {
	return func(m *Matcher) {
		m.titlePolicy = p
	}
}

// WithTagScope sets where tags are read from.
func WithTagScope(s TagScope) Option {
	return func(m *Matcher) {
		m.tagScope = s
	}
}

// WithPositionalTitles adds title matches to FileResult.Matches.
func WithPositionalTitles(on bool) Option {
	return func(m *Matcher) {
		m.positionalTitles = on
	}
}

// WithTagExtractor replaces the default @tag extractor.
func WithTagExtractor(e TagExtractor) Option {
	return func(m *Matcher) {
		m.extractor = e
	}
}

// WithTagFilter replaces the default conjunctive filter over the tag terms.
func WithTagFilter(f TagFilter) Option {
	return func(m *Matcher) {
		m.filter = f
	}
}

// Matcher evaluates every criterion against one note at a time. It only
// reads its own state after New returns, so one Matcher may serve many
// notes.
type Matcher struct {
	reader Reader
	terms  TermSet
	phrase *Phrase

	titlePolicy      TitlePolicy
	tagScope         TagScope
	positionalTitles bool

	extractor TagExtractor
	filter    TagFilter
}

// New compiles the phrase for terms and returns a Matcher reading notes
// through reader.
func New(reader Reader, terms TermSet, opts ...Option) (*Matcher, error) {
	phrase, err := CompilePhrase(terms.Content, terms.CaseSensitive)
	if err != nil {
		return nil, err
	}
	m := &Matcher{
		reader:      reader,
		terms:       terms,
		phrase:      phrase,
		titlePolicy: TitlePhrase,
		tagScope:    TagScopeLine,
		extractor:   parser.Extractor{},
		filter:      tagfilter.New(terms.Tags, nil, false),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Phrase returns the compiled content phrase.
func (m *Matcher) Phrase() *Phrase {
	return m.phrase
}

// Match reads the note at path and evaluates it. A note that cannot be
// read as UTF-8 text yields an *apperr.ReadError and no result.
func (m *Matcher) Match(path string) (FileResult, error) {
	data, err := m.reader.Read(path)
	if err != nil {
		return FileResult{}, apperr.NewReadError(path, err)
	}
	return m.MatchContent(path, data)
}

// MatchContent evaluates note content that was already read, such as the
// bytes a watcher checksummed. Content that is not UTF-8 text yields an
// *apperr.ReadError.
func (m *Matcher) MatchContent(path string, data []byte) (FileResult, error) {
	if !utf8.Valid(data) {
		return FileResult{}, apperr.NewReadError(path, errInvalidUTF8)
	}
	lines := splitLines(string(data))

	title := m.matchTitle(path)
	tags := m.matchTags(data, lines)
	headers := m.matchHeaders(lines)
	contents := m.matchContents(lines)

	res := FileResult{
		Path: path,
		Summary: Summary{
			Title:    len(title) > 0,
			Tags:     len(tags) > 0,
			Header:   len(headers) > 0,
			Contents: len(contents) > 0,
		},
	}
	if m.positionalTitles {
		res.Matches = append(res.Matches, title...)
	}
	res.Matches = append(res.Matches, tags...)
	res.Matches = append(res.Matches, headers...)
	res.Matches = append(res.Matches, contents...)

	// Stable: equal positions keep title, tags, header, contents order.
	slices.SortStableFunc(res.Matches, func(a, b Match) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.Column, b.Column)
	})
	return res, nil
}
