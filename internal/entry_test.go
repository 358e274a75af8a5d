package internal

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/notesearch/internal/apperr"
	"github.com/starford/notesearch/internal/testutil"
)

func runSearch(t *testing.T, cfg *Config, terms ...string) (string, error) {
	t.Helper()
	cfg.App.LogLevel = slog.LevelError
	cfg.Output.Color = "never"
	var out bytes.Buffer
	err := Run(context.Background(), WithConfig(cfg), WithTerms(terms), WithStdout(&out))
	return out.String(), err
}

func vaultConfig(t *testing.T, files map[string]string) *Config {
	t.Helper()
	dir, _ := testutil.TestVault(t, files)
	cfg := NewDefaultConfig()
	cfg.Vault.Path = dir
	return cfg
}

func TestRun_ConfigRequired(t *testing.T) {
	err := Run(context.Background())
	require.Error(t, err)
}

func TestRun_PlainEndToEnd(t *testing.T) {
	cfg := vaultConfig(t, map[string]string{
		"notes/alpha-beta.md": "# Alpha\nsome alpha beta text\n",
		"notes/other.md":      "unrelated\n",
	})

	out, err := runSearch(t, cfg, "alpha", "beta")
	require.NoError(t, err)
	assert.Equal(t, "   c notes/alpha-beta.md\n", out)
}

func TestRun_PositionalEndToEnd(t *testing.T) {
	cfg := vaultConfig(t, map[string]string{
		"notes/alpha-beta.md": "# Alpha beta\nsome alpha beta text\n@project\n",
	})
	cfg.Output.Mode = "vimgrep"

	out, err := runSearch(t, cfg, "alpha", "beta", "@project")
	require.NoError(t, err)
	assert.Equal(t,
		"notes/alpha-beta.md:1:1:# Alpha beta\n"+
			"notes/alpha-beta.md:1:3:# Alpha beta\n"+
			"notes/alpha-beta.md:2:6:some alpha beta text\n"+
			"notes/alpha-beta.md:3:1:@ @project\n",
		out)
}

func TestRun_NoMatchesIsNotAnError(t *testing.T) {
	cfg := vaultConfig(t, map[string]string{"a.md": "nothing\n"})
	out, err := runSearch(t, cfg, "missing")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_NoTermsNoOutput(t *testing.T) {
	cfg := vaultConfig(t, map[string]string{"a.md": "alpha\n"})
	out, err := runSearch(t, cfg)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_MissingVaultIsEmptyCorpus(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Vault.Path = t.TempDir() + "/does-not-exist"
	out, err := runSearch(t, cfg, "alpha")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_ReadFailureIsFatal(t *testing.T) {
	cfg := vaultConfig(t, map[string]string{
		"a.md": "alpha\n",
		"b.md": "\xff\xfe",
	})
	out, err := runSearch(t, cfg, "alpha")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrRead))
	assert.Equal(t, "   c a.md\n", out)
}

func TestRun_RejectEmptyTags(t *testing.T) {
	cfg := vaultConfig(t, map[string]string{"a.md": "@x\n"})

	out, err := runSearch(t, cfg, "@")
	require.NoError(t, err)
	assert.Empty(t, out)

	cfg.Match.RejectEmptyTags = true
	_, err = runSearch(t, cfg, "@")
	assert.ErrorIs(t, err, apperr.ErrEmptyTag)
}

func TestRun_TitlePolicies(t *testing.T) {
	files := map[string]string{"project-plan.md": "body\n"}

	cfg := vaultConfig(t, files)
	out, err := runSearch(t, cfg, "@project")
	require.NoError(t, err)
	assert.Empty(t, out)

	cfg = vaultConfig(t, files)
	cfg.Match.TitlePolicy = "any"
	out, err = runSearch(t, cfg, "@project")
	require.NoError(t, err)
	assert.Equal(t, "T    project-plan.md\n", out)
}

func TestRun_Idempotent(t *testing.T) {
	cfg := vaultConfig(t, map[string]string{
		"a.md":     "# alpha\n@t alpha\n",
		"sub/b.md": "alpha alpha\n",
	})
	cfg.Output.Mode = "vimgrep"

	first, err := runSearch(t, cfg, "alpha", "@t")
	require.NoError(t, err)
	second, err := runSearch(t, cfg, "alpha", "@t")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
