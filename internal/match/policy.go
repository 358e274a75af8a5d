package match

import "fmt"

// TitlePolicy selects how the title criterion treats the query.
type TitlePolicy string

const (
	// TitlePhrase requires the ordered content phrase inside the stem.
	TitlePhrase TitlePolicy = "phrase"
	// TitleAnyWord accepts any content or tag term found inside the stem.
	TitleAnyWord TitlePolicy = "any"
)

// TagScope selects where tags are read from.
type TagScope string

const (
	// TagScopeLine checks the tags declared on each line separately.
	TagScopeLine TagScope = "line"
	// TagScopeFile checks the tag set of the whole note once.
	TagScopeFile TagScope = "file"
)

// ParseTitlePolicy converts a configuration value. Empty means TitlePhrase.
func ParseTitlePolicy(s string) (TitlePolicy, error) {
	switch TitlePolicy(s) {
	case "", TitlePhrase:
		return TitlePhrase, nil
	case TitleAnyWord:
		return TitleAnyWord, nil
	}
	return "", fmt.Errorf("unknown title policy %q", s)
}

// ParseTagScope converts a configuration value. Empty means TagScopeLine.
func ParseTagScope(s string) (TagScope, error) {
	switch TagScope(s) {
	case "", TagScopeLine:
		return TagScopeLine, nil
	case TagScopeFile:
		return TagScopeFile, nil
	}
	return "", fmt.Errorf("unknown tag scope %q", s)
}
