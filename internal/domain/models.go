package domain

import (
	"path/filepath"
	"time"
)

// ImageRef is an opaque handle to an image picked from the media library.
// Its identity is Path; the remaining fields are informational.
type ImageRef struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// NewImageRef builds a reference for the file at path
func NewImageRef(path string, size int64, modTime time.Time) ImageRef {
	return ImageRef{
		Path:    path,
		Name:    filepath.Base(path),
		Size:    size,
		ModTime: modTime,
	}
}

// IsZero reports whether the reference points at nothing
func (r ImageRef) IsZero() bool {
	return r.Path == ""
}

// ScanProgress represents the current scanning state
type ScanProgress struct {
	IsScanning  bool
	ImagesFound int
	Root        string
}
