package noteservice

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/notesearch/internal/apperr"
	"github.com/starford/notesearch/internal/match"
	"github.com/starford/notesearch/internal/models"
	"github.com/starford/notesearch/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newService(t *testing.T, files map[string]string, raw ...string) *Service {
	t.Helper()
	_, store := testutil.TestVault(t, files)
	m, err := match.New(store, match.Classify(raw, false))
	require.NoError(t, err)
	return NewService(store, m, quietLogger())
}

func TestSearch_SuppressesEmptyResults(t *testing.T) {
	svc := newService(t, map[string]string{
		"a.md":     "alpha beta\n",
		"b.md":     "nothing here\n",
		"sub/c.md": "# Alpha Beta\n",
	}, "alpha", "beta")

	var got []string
	st, err := svc.Search(context.Background(), func(res match.FileResult) error {
		got = append(got, res.Summary.String()+" "+res.Path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"   c a.md", "  hc sub/c.md"}, got)
	assert.Equal(t, Stats{Scanned: 3, Matched: 2, Bytes: 37}, st)
}

func TestSearch_NoQueryNoResults(t *testing.T) {
	svc := newService(t, map[string]string{"a.md": "alpha\n"})
	st, err := svc.Search(context.Background(), func(match.FileResult) error {
		t.Fatal("no result expected")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, st.Matched)
}

func TestSearch_ReadFailureAborts(t *testing.T) {
	_, store := testutil.TestVault(t, map[string]string{
		"a.md": "alpha\n",
		"b.md": "\xff not text",
		"c.md": "alpha\n",
	})
	m, err := match.New(store, match.Classify([]string{"alpha"}, false))
	require.NoError(t, err)
	svc := NewService(store, m, quietLogger())

	var seen []string
	_, err = svc.Search(context.Background(), func(res match.FileResult) error {
		seen = append(seen, res.Path)
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrRead))
	assert.Equal(t, []string{"a.md"}, seen)
}

func TestSearch_CallbackErrorStops(t *testing.T) {
	svc := newService(t, map[string]string{"a.md": "alpha\n", "b.md": "alpha\n"}, "alpha")
	stop := errors.New("stop")
	calls := 0
	_, err := svc.Search(context.Background(), func(match.FileResult) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestSearch_CancelledContext(t *testing.T) {
	svc := newService(t, map[string]string{"a.md": "alpha\n"}, "alpha")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Search(ctx, func(match.FileResult) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

type failingLister struct{}

func (failingLister) List(string) ([]models.NoteMetadata, error) {
	return nil, errors.New("permission denied")
}

func (failingLister) Read(string) ([]byte, error) {
	return nil, errors.New("unreachable")
}

func TestPaths_EnumerationFailureIsEmpty(t *testing.T) {
	m, err := match.New(failingLister{}, match.Classify([]string{"alpha"}, false))
	require.NoError(t, err)
	svc := NewService(failingLister{}, m, quietLogger())

	assert.Empty(t, svc.Notes())
	st, err := svc.Search(context.Background(), func(match.FileResult) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}

func TestMatchOne(t *testing.T) {
	dir, store := testutil.TestVault(t, map[string]string{"x/alpha.md": "@tag\n"})
	require.FileExists(t, filepath.Join(dir, "x", "alpha.md"))

	m, err := match.New(store, match.Classify([]string{"@tag"}, false))
	require.NoError(t, err)
	res, err := NewService(store, m, quietLogger()).MatchOne("x/alpha.md")
	require.NoError(t, err)
	assert.Equal(t, " t  ", res.Summary.String())
}

func TestMatchContent_UsesGivenBytes(t *testing.T) {
	// The stored file says nothing; only the passed content matches.
	svc := newService(t, map[string]string{"a.md": "nothing\n"}, "alpha")

	res, err := svc.MatchContent("a.md", []byte("# alpha\n"))
	require.NoError(t, err)
	assert.Equal(t, "  hc", res.Summary.String())
	assert.Equal(t, "a.md", res.Path)

	_, err = svc.MatchContent("a.md", []byte("\xff"))
	assert.ErrorIs(t, err, apperr.ErrRead)
}
