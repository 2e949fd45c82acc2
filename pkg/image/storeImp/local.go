package storeImp

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"agriportal/pkg/image/store"
)

// localStore keeps blobs as flat files under root. The content type is
// recorded in a "<key>.ct" sidecar; a missing sidecar reads back as
// image/jpeg, which covers most camera uploads.
type localStore struct{ root string }

func New(root string) (store.Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &localStore{root: root}, nil
}

func (s *localStore) Put(key string, r io.Reader, contentType string) error {
	f, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	if contentType != "" {
		return os.WriteFile(filepath.Join(s.root, key+".ct"), []byte(contentType), 0o644)
	}
	return nil
}

func (s *localStore) Get(key string) (io.ReadCloser, string, error) {
	// keys are uuids; refuse anything that could escape the root
	if key == "" || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return nil, "", store.ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.root, key))
	if err != nil {
		return nil, "", store.ErrNotFound
	}

	ct := "image/jpeg"
	if b, err := os.ReadFile(filepath.Join(s.root, key+".ct")); err == nil && len(b) > 0 {
		ct = string(b)
	}
	return f, ct, nil
}
