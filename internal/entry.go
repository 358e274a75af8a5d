// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/notesearch/internal/apperr"
	"github.com/starford/notesearch/internal/match"
	"github.com/starford/notesearch/internal/noteservice"
	"github.com/starford/notesearch/internal/parser"
	"github.com/starford/notesearch/internal/render"
	"github.com/starford/notesearch/internal/storage"
	"github.com/starford/notesearch/internal/watch"
)

// Run searches the vault once and, in watch mode, keeps re-matching notes
// as they change until ctx is cancelled or a signal arrives.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{stdout: os.Stdout}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Structured JSON logs go to stderr; stdout carries results only.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("vault_path", cfg.Vault.Path),
		slog.Any("extensions", cfg.Vault.Extensions),
		slog.Bool("case_sensitive", cfg.Match.CaseSensitive),
		slog.String("title_policy", cfg.Match.TitlePolicy),
		slog.String("tag_scope", cfg.Match.TagScope),
		slog.String("output_mode", cfg.Output.Mode),
		slog.String("log_level", cfg.App.LogLevel.String()))

	terms := match.Classify(app.terms, cfg.Match.CaseSensitive)
	if cfg.Match.RejectEmptyTags && terms.HasEmptyTag() {
		return fmt.Errorf("%w: %q names no tag", apperr.ErrEmptyTag, parser.TagSigil)
	}
	if terms.Empty() {
		logger.Info("No search terms given, nothing will match")
	}

	var store storage.Provider
	fsStore, err := storage.NewFS(cfg.Vault.Path, cfg.Vault.Extensions...)
	if err != nil {
		store = storage.Unavailable{Err: err}
	} else {
		store = fsStore
	}

	matcher, err := match.New(store, terms, cfg.Match.Options()...)
	if err != nil {
		return fmt.Errorf("build matcher: %w", err)
	}
	logger.Debug("Query compiled",
		slog.Any("content_terms", terms.Content),
		slog.Any("tag_terms", terms.Tags),
		slog.String("phrase", matcher.Phrase().String()))

	mode, err := render.ParseMode(cfg.Output.Mode)
	if err != nil {
		return err
	}
	renderer := render.New(mode, colorEnabled(cfg.Output.Color, app.stdout))
	svc := noteservice.NewService(store, matcher, logger)

	emit := func(res match.FileResult) error {
		_, err := renderer.Write(app.stdout, res)
		return err
	}

	st, err := svc.Search(ctx, emit)
	if err != nil {
		return err
	}
	logger.Info("Search finished",
		slog.Int("scanned", st.Scanned),
		slog.Int("matched", st.Matched),
		slog.Int64("bytes", st.Bytes))

	if !app.watch {
		return nil
	}
	if fsStore == nil {
		logger.Warn("watch: vault unavailable, nothing to watch", slog.String("vault_path", cfg.Vault.Path))
		return nil
	}
	return watchVault(ctx, fsStore, svc, emit, logger)
}

// watchVault re-matches changed notes until ctx ends or SIGINT/SIGTERM arrives.
// Read failures are logged; the note may be gone by the time it is read.
func watchVault(ctx context.Context, vault watch.Vault, svc *noteservice.Service, emit noteservice.ResultFunc, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return watch.Watch(gCtx, vault, logger, func(path string, data []byte) {
			res, err := svc.MatchContent(path, data)
			if err != nil {
				logger.Warn("watch: match failed", slog.String("path", path), slog.String("error", err.Error()))
				return
			}
			if err := emit(res); err != nil {
				logger.Error("watch: write failed", slog.String("path", path), slog.String("error", err.Error()))
			}
		})
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Watch error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func colorEnabled(setting string, w io.Writer) bool {
	f, _ := w.(*os.File)
	return render.ColorEnabled(setting, f)
}
