// Package docstore is the client side of the hierarchical document database.
// Data is addressed by slash separated paths and read back as ordered
// snapshots.
package docstore

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Store is the capability surface the rest of the service needs from the
// database.
type Store interface {
	// Read returns the subtree at path. A missing location is not an error;
	// the snapshot reports Exists() == false.
	Read(ctx context.Context, path string) (Snapshot, error)
	// Update merges fields into the object at path, creating it when absent.
	// A nil field value removes that field.
	Update(ctx context.Context, path string, fields map[string]interface{}) error
	// Delete removes the subtree at path.
	Delete(ctx context.Context, path string) error
	// GenerateKey returns a new unique, time ordered child key.
	GenerateKey(ctx context.Context) (string, error)
}

// Fresh returns the store behind any read cache in front of s. Reads whose
// result guards a write go through it.
func Fresh(s Store) Store {
	if c, ok := s.(interface{ Uncached() Store }); ok {
		return c.Uncached()
	}
	return s
}

// Join builds a path from segments, dropping empty ones and stray slashes.
func Join(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		for _, p := range strings.Split(s, "/") {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}
	return strings.Join(parts, "/")
}

// Split returns the non-empty segments of path.
func Split(path string) []string {
	if j := Join(path); j != "" {
		return strings.Split(j, "/")
	}
	return nil
}

// Base returns the last segment of path.
func Base(path string) string {
	segs := Split(path)
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

const maxKeyBytes = 768

// ValidKey reports whether s can be used as a single path segment.
func ValidKey(s string) bool {
	if s == "" || len(s) > maxKeyBytes || !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
		switch r {
		case '.', '#', '$', '[', ']', '/':
			return false
		}
	}
	return true
}
