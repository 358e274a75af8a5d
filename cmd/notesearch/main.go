package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/notesearch/internal"
	"github.com/starford/notesearch/internal/render"
	pkgconfig "github.com/starford/notesearch/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := loadConfig(configPath, cmd.IsSet("config"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithTerms(cmd.Args().Slice()),
		internal.WithWatch(cmd.Bool("watch")),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return nil
}

// loadConfig reads the config file into cfg. A file named explicitly by
// flag or environment must exist; the default one is optional.
func loadConfig(path string, explicit bool, cfg *internal.Config) error {
	if explicit {
		return pkgconfig.Load(path, cfg)
	}
	_, err := pkgconfig.LoadIfExists(path, cfg)
	return err
}

// applyFlags overrides configuration values with flags given on the command line.
func applyFlags(cmd *cli.Command, cfg *internal.Config) {
	if cmd.IsSet("dir") {
		cfg.Vault.Path = cmd.String("dir")
	}
	if cmd.IsSet("case-sensitive") {
		cfg.Match.CaseSensitive = cmd.Bool("case-sensitive")
	}
	if cmd.IsSet("title-policy") {
		cfg.Match.TitlePolicy = cmd.String("title-policy")
	}
	if cmd.IsSet("tag-scope") {
		cfg.Match.TagScope = cmd.String("tag-scope")
	}
	if cmd.IsSet("positional-titles") {
		cfg.Match.PositionalTitles = cmd.Bool("positional-titles")
	}
	if cmd.Bool("vimgrep") {
		cfg.Output.Mode = string(render.ModePositional)
	}
	if cmd.IsSet("color") {
		cfg.Output.Color = cmd.String("color")
	}
	if cmd.Bool("debug") {
		cfg.App.LogLevel = slog.LevelDebug
	}
}

func main() {
	cmd := &cli.Command{
		Name:      "notesearch",
		Usage:     "Search notes by title, @tags, headers and contents",
		ArgsUsage: "TERM... (prefix a term with @ to search tags)",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (optional)",
				DefaultText: "notesearch.yaml",
				Value:       "notesearch.yaml",
				Sources:     cli.EnvVars("NOTESEARCH_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Vault directory to search",
				Sources: cli.EnvVars("NOTESEARCH_DIR"),
			},
			&cli.BoolFlag{
				Name:    "case-sensitive",
				Aliases: []string{"s"},
				Usage:   "Match terms case-sensitively",
			},
			&cli.BoolFlag{
				Name:    "vimgrep",
				Aliases: []string{"v"},
				Usage:   "Print path:line:col:text for every match",
			},
			&cli.StringFlag{
				Name:  "title-policy",
				Usage: "Title matching: phrase (ordered content terms) or any (any term)",
			},
			&cli.StringFlag{
				Name:  "tag-scope",
				Usage: "Tag matching: line (per line) or file (whole note)",
			},
			&cli.BoolFlag{
				Name:  "positional-titles",
				Usage: "Include title matches in vimgrep output",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Color plain output: auto, always or never",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Keep running and re-match notes as they change",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
