// Package watch reports notes whose content changes while notesearch runs.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/notesearch/internal/checksum"
)

// Vault is the part of the storage layer the watcher needs.
type Vault interface {
	Root() string
	IsNote(name string) bool
	Read(path string) ([]byte, error)
}

// ChangeFunc is called with the slash-separated vault-relative path of a
// note whose content changed, and the content that was checksummed.
type ChangeFunc func(path string, data []byte)

// Watch starts an fsnotify watcher on the vault root and calls cb for every
// note that is created or whose content changes, until ctx is cancelled.
// Notes already present when Watch starts are recorded but not reported.
// Rewrites that leave the content identical are not reported.
//
// New directories created at runtime are automatically added to the watch
// list and any notes inside them are reported.
func Watch(ctx context.Context, vault Vault, logger *slog.Logger, cb ChangeFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	root := vault.Root()
	sums := checksum.NewSet()
	if err := addDirsRecursive(w, root); err != nil {
		return err
	}
	scanDir(vault, root, sums, logger, nil)

	logger.Info("watcher: started", slog.String("root", root), slog.Int("notes", sums.Len()))

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			absPath := ev.Name

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
					if hidden(root, absPath) {
						continue
					}
					if addErr := addDirsRecursive(w, absPath); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", absPath),
							slog.String("error", addErr.Error()))
					} else {
						logger.Debug("watcher: watching new dir", slog.String("path", absPath))
					}
					scanDir(vault, absPath, sums, logger, cb)
					continue
				}
			}

			if !vault.IsNote(absPath) {
				continue
			}
			rel, relErr := relPath(root, absPath)
			if relErr != nil {
				continue
			}

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				notify(vault, rel, sums, logger, cb)

			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// A rename arrives on the old path; the new path shows up
				// as a separate Create.
				sums.Forget(rel)
				logger.Debug("watcher: forgot", slog.String("path", rel))
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// notify reads rel and calls cb when its content differs from the last
// recorded digest. A nil cb only records the digest.
func notify(vault Vault, rel string, sums *checksum.Set, logger *slog.Logger, cb ChangeFunc) {
	data, err := vault.Read(rel)
	if err != nil {
		logger.Warn("watcher: read failed", slog.String("path", rel), slog.String("error", err.Error()))
		return
	}
	if !sums.Changed(rel, data) {
		return
	}
	logger.Debug("watcher: changed", slog.String("path", rel))
	if cb != nil {
		cb(rel, data)
	}
}

// scanDir records or reports every note below dir.
func scanDir(vault Vault, dir string, sums *checksum.Set, logger *slog.Logger, cb ChangeFunc) {
	root := vault.Root()
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !vault.IsNote(p) {
			return nil
		}
		rel, relErr := relPath(root, p)
		if relErr != nil {
			return nil
		}
		notify(vault, rel, sums, logger, cb)
		return nil
	})
}

// addDirsRecursive adds root and all its visible subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
}

func relPath(root, abs string) (string, error) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

func hidden(root, abs string) bool {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") && part != "." {
			return true
		}
	}
	return false
}
