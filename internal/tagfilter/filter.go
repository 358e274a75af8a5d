// Package tagfilter evaluates boolean tag queries against a set of tags.
package tagfilter

import "slices"

// Filter holds a tag query: tags that must be present, tags that must be
// absent, and whether one present tag is enough.
type Filter struct {
	good  []string
	bad   []string
	anyOf bool
}

// New builds a Filter. With anyOf unset every good tag must be present;
// with anyOf set a single one suffices. Any bad tag present rejects the set.
func New(good, bad []string, anyOf bool) *Filter {
	return &Filter{
		good:  slices.Clone(good),
		bad:   slices.Clone(bad),
		anyOf: anyOf,
	}
}

// Matches reports whether tags satisfies the query. Tags are compared
// literally. An empty good list places no requirement.
func (f *Filter) Matches(tags []string) bool {
	for _, b := range f.bad {
		if slices.Contains(tags, b) {
			return false
		}
	}
	if len(f.good) == 0 {
		return true
	}
	if f.anyOf {
		return slices.ContainsFunc(f.good, func(g string) bool {
			return slices.Contains(tags, g)
		})
	}
	for _, g := range f.good {
		if !slices.Contains(tags, g) {
			return false
		}
	}
	return true
}
