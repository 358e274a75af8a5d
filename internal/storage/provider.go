// Package storage defines the read-only vault file-system abstraction.
package storage

import "github.com/starford/notesearch/internal/models"

// Provider is the interface for vault file operations.
type Provider interface {
	// List returns metadata for every note file under dir (relative to vault root),
	// in lexical path order.
	List(dir string) ([]models.NoteMetadata, error)
	// Read returns the raw bytes of the file at path (relative to vault root).
	Read(path string) ([]byte, error)
}

// Unavailable is the Provider of a vault that could not be opened. Every
// call reports the original error.
type Unavailable struct {
	Err error
}

// List reports the error that made the vault unavailable.
func (u Unavailable) List(string) ([]models.NoteMetadata, error) {
	return nil, u.Err
}

// Read reports the error that made the vault unavailable.
func (u Unavailable) Read(string) ([]byte, error) {
	return nil, u.Err
}
