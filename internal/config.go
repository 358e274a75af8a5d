package internal

import (
	"log/slog"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/notesearch/internal/match"
	"github.com/starford/notesearch/internal/render"
	"github.com/starford/notesearch/internal/storage"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Vault  VaultConfig       `yaml:"vault"`
	Match  MatchConfig       `yaml:"match"`
	Output OutputConfig      `yaml:"output"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Vault.Validate(); err != nil {
		return err
	}
	if err := c.Match.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// VaultConfig holds the note directory and which files count as notes.
type VaultConfig struct {
	Path       string   `yaml:"path"`
	Extensions []string `yaml:"extensions"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Extensions, validation.Each(validation.Required)),
	)
}

// MatchConfig selects matching behaviour.
//
// TitlePolicy is "phrase" (all content terms, in order, inside the file
// stem) or "any" (any content or tag term inside the stem). TagScope is
// "line" (each line's tags checked on their own) or "file" (the note's
// whole tag set checked once). PositionalTitles adds title hits to the
// vimgrep listing.
type MatchConfig struct {
	CaseSensitive    bool   `yaml:"case_sensitive"`
	TitlePolicy      string `yaml:"title_policy"`
	TagScope         string `yaml:"tag_scope"`
	PositionalTitles bool   `yaml:"positional_titles"`
	RejectEmptyTags  bool   `yaml:"reject_empty_tags"`
}

// Validate validates the match configuration.
func (c *MatchConfig) Validate() error {
	if c.TitlePolicy == "" {
		c.TitlePolicy = string(match.TitlePhrase)
	}
	if c.TagScope == "" {
		c.TagScope = string(match.TagScopeLine)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.TitlePolicy, parsedBy(match.ParseTitlePolicy)),
		validation.Field(&c.TagScope, parsedBy(match.ParseTagScope)),
	)
}

// Options converts the configuration into matcher options.
func (c *MatchConfig) Options() []match.Option {
	return []match.Option{
		match.WithTitlePolicy(match.TitlePolicy(c.TitlePolicy)),
		match.WithTagScope(match.TagScope(c.TagScope)),
		match.WithPositionalTitles(c.PositionalTitles),
	}
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Mode  string `yaml:"mode"`
	Color string `yaml:"color"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = string(render.ModePlain)
	}
	if c.Color == "" {
		c.Color = render.ColorAuto
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Mode, parsedBy(render.ParseMode)),
		validation.Field(&c.Color, validation.In(render.ColorAuto, render.ColorAlways, render.ColorNever)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Vault: VaultConfig{
			Path:       ".",
			Extensions: slices.Clone(storage.DefaultExtensions),
		},
		Match: MatchConfig{
			TitlePolicy: string(match.TitlePhrase),
			TagScope:    string(match.TagScopeLine),
		},
		Output: OutputConfig{
			Mode:  string(render.ModePlain),
			Color: render.ColorAuto,
		},
	}
}

// parsedBy validates a string field with the parser that later consumes it.
func parsedBy[T any](parse func(string) (T, error)) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		_, err := parse(s)
		return err
	})
}
