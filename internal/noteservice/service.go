// Package noteservice runs a query over every note in the vault.
package noteservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/starford/notesearch/internal/apperr"
	"github.com/starford/notesearch/internal/match"
	"github.com/starford/notesearch/internal/models"
	"github.com/starford/notesearch/internal/storage"
)

// ResultFunc receives each non-empty result in enumeration order.
type ResultFunc func(res match.FileResult) error

// Stats summarises one search pass. Bytes is the listed size of the
// scanned notes.
type Stats struct {
	Scanned int
	Matched int
	Bytes   int64
}

// Service coordinates note enumeration and matching.
type Service struct {
	store   storage.Provider
	matcher *match.Matcher
	logger  *slog.Logger
}

// NewService creates a new search service.
func NewService(store storage.Provider, matcher *match.Matcher, logger *slog.Logger) *Service {
	return &Service{store: store, matcher: matcher, logger: logger}
}

// Notes lists the notes of the vault. A listing failure is logged and
// treated as an empty vault.
func (s *Service) Notes() []models.NoteMetadata {
	notes, err := s.store.List("")
	if err != nil {
		s.logger.Warn("search: listing notes failed, treating vault as empty",
			slog.String("error", fmt.Errorf("%w: %w", apperr.ErrEnumerate, err).Error()))
		return nil
	}
	return notes
}

// Search matches every note in turn and hands non-empty results to fn.
// The first read failure aborts the pass.
func (s *Service) Search(ctx context.Context, fn ResultFunc) (Stats, error) {
	var st Stats
	for _, note := range s.Notes() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		res, err := s.MatchOne(note.Path)
		if err != nil {
			return st, fmt.Errorf("search: %w", err)
		}
		st.Scanned++
		st.Bytes += note.Size
		if res.Empty() {
			continue
		}
		st.Matched++
		if err := fn(res); err != nil {
			return st, err
		}
	}
	s.logger.Debug("search: done",
		slog.Int("scanned", st.Scanned),
		slog.Int("matched", st.Matched),
		slog.Int64("bytes", st.Bytes))
	return st, nil
}

// MatchOne reads and evaluates a single note.
func (s *Service) MatchOne(path string) (match.FileResult, error) {
	res, err := s.matcher.Match(path)
	if err != nil {
		return match.FileResult{}, err
	}
	s.logMatch(res)
	return res, nil
}

// MatchContent evaluates a note whose content the caller already read.
func (s *Service) MatchContent(path string, data []byte) (match.FileResult, error) {
	res, err := s.matcher.MatchContent(path, data)
	if err != nil {
		return match.FileResult{}, err
	}
	s.logMatch(res)
	return res, nil
}

func (s *Service) logMatch(res match.FileResult) {
	if !res.Empty() {
		s.logger.Debug("search: matched",
			slog.String("path", res.Path),
			slog.String("criteria", res.Summary.Describe()),
			slog.Int("positions", len(res.Matches)))
	}
}
