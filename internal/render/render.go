// Package render formats match results for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/starford/notesearch/internal/match"
)

// Mode selects the output layout.
type Mode string

const (
	// ModePlain prints one "<glyphs> <path>" line per note.
	ModePlain Mode = "plain"
	// ModePositional prints one "path:line:col:text" line per match, as vimgrep expects.
	ModePositional Mode = "vimgrep"
)

// Color settings.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ParseMode converts a configuration value. Empty means ModePlain.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModePlain:
		return ModePlain, nil
	case ModePositional:
		return ModePositional, nil
	}
	return "", fmt.Errorf("unknown output mode %q", s)
}

// ColorEnabled resolves a color setting for output written to f.
func ColorEnabled(setting string, f *os.File) bool {
	switch setting {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Renderer turns a match.FileResult into text.
type Renderer struct {
	mode  Mode
	color bool
	glyph lipgloss.Style
	path  lipgloss.Style
}

// New returns a Renderer. Color only applies to ModePlain; positional output
// is meant for editors and stays uncolored.
func New(mode Mode, color bool) *Renderer {
	r := &Renderer{mode: mode, color: color && mode == ModePlain}
	if r.color {
		lr := lipgloss.NewRenderer(io.Discard)
		lr.SetColorProfile(termenv.ANSI256)
		r.glyph = lr.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true)
		r.path = lr.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	}
	return r
}

// Render formats res. A result with nothing to show renders as "".
func (r *Renderer) Render(res match.FileResult) string {
	if res.Empty() {
		return ""
	}
	if r.mode == ModePositional {
		return positional(res)
	}
	return r.plain(res)
}

// Write renders res to w followed by a newline, skipping empty output.
// It reports whether anything was written.
func (r *Renderer) Write(w io.Writer, res match.FileResult) (bool, error) {
	out := r.Render(res)
	if out == "" {
		return false, nil
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return false, fmt.Errorf("render: write %s: %w", res.Path, err)
	}
	return true, nil
}

func (r *Renderer) plain(res match.FileResult) string {
	glyphs := res.Summary.String()
	if !r.color {
		return glyphs + " " + res.Path
	}
	return r.glyph.Render(glyphs) + " " + r.path.Render(res.Path)
}

func positional(res match.FileResult) string {
	lines := make([]string, 0, len(res.Matches))
	for _, m := range res.Matches {
		var b strings.Builder
		b.WriteString(res.Path)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(m.Line))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(m.Column))
		b.WriteByte(':')
		b.WriteString(prefix(m.Kind))
		b.WriteString(m.Text)
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func prefix(k match.Kind) string {
	switch k {
	case match.KindTitle:
		return "Title "
	case match.KindTags:
		return "@ "
	default:
		return ""
	}
}
