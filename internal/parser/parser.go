// Package parser extracts @tags from note text and YAML frontmatter.
package parser

import (
	"bytes"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// TagSigil marks an inline tag, as in "@project".
const TagSigil = "@"

var tagRe = regexp.MustCompile(`(?:^|\s)@([\p{L}\p{N}_][\p{L}\p{N}_/-]*)`)

// Extractor implements tag extraction for single lines and whole files.
type Extractor struct{}

// LineTags returns the inline tags declared on one line of text.
func (Extractor) LineTags(line string) []string {
	return LineTags(line)
}

// FileTags returns the tags declared anywhere in a note.
func (Extractor) FileTags(data []byte) []string {
	return FileTags(data)
}

// LineTags returns the deduplicated inline @tags of line, sigil removed,
// in order of first appearance.
func LineTags(line string) []string {
	var out []string
	seen := make(map[string]struct{})
	collectInline(line, seen, &out)
	return out
}

// FileTags collects tags from the frontmatter "tags" field and from inline
// @tags in the body.
func FileTags(data []byte) []string {
	fm, body := splitFrontmatter(data)

	seen := make(map[string]struct{})
	var out []string
	for _, t := range frontmatterTags(fm) {
		if _, dup := seen[t]; !dup {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	collectInline(body, seen, &out)
	return out
}

func collectInline(text string, seen map[string]struct{}, out *[]string) {
	for _, m := range tagRe.FindAllStringSubmatch(text, -1) {
		t := m[1]
		if _, dup := seen[t]; !dup {
			seen[t] = struct{}{}
			*out = append(*out, t)
		}
	}
}

// splitFrontmatter separates YAML frontmatter (between leading --- delimiters)
// from the note body. If no frontmatter is found the entire content is body.
func splitFrontmatter(data []byte) (map[string]any, string) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data)
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, string(data)
	}

	yamlBlock := rest[:idx]
	body := strings.TrimLeft(string(rest[idx+1+len(delim):]), "\n\r")

	var fm map[string]any
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		// Invalid YAML is treated as plain body text.
		return nil, string(data)
	}
	return fm, body
}

// frontmatterTags accepts either a YAML list or a comma/space separated string.
func frontmatterTags(fm map[string]any) []string {
	raw, ok := fm["tags"]
	if !ok {
		return nil
	}
	var items []string
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	case string:
		items = strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
	}

	var out []string
	for _, s := range items {
		s = strings.TrimPrefix(strings.TrimSpace(s), TagSigil)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
