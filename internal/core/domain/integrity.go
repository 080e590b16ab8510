package domain

import "time"

// IntegrityRecord caches the digest of a package archive.
// The record is stale once the archive's size or modification time changes.
type IntegrityRecord struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
	Digest  string    `json:"digest"`
}

// Matches reports whether the record still describes a file with the given size and mtime.
func (r *IntegrityRecord) Matches(size int64, modTime time.Time) bool {
	return r != nil && r.Size == size && r.ModTime.Equal(modTime)
}
