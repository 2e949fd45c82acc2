package store

import (
	"errors"
	"io"
)

var ErrNotFound = errors.New("image not found")

// Store is the blob bucket behind /images. Keys are opaque generated
// identifiers, never derived from content.
type Store interface {
	Put(key string, r io.Reader, contentType string) error
	// Get returns the blob and its content type. Callers close the reader.
	Get(key string) (io.ReadCloser, string, error)
}
