// Package models defines the domain types shared across notesearch.
package models

// NoteMetadata describes one note file found in the vault.
type NoteMetadata struct {
	Path string
	Size int64
}
