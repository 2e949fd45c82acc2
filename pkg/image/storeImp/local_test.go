package storeImp

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriportal/pkg/image/store"
)

func TestPutThenGet(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put("abc123", strings.NewReader("bytes"), "image/png"))

	r, ct, err := s.Get("abc123")
	require.NoError(t, err)
	defer r.Close()

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(b))
	assert.Equal(t, "image/png", ct)
}

func TestGetDefaultsToJPEG(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put("k", strings.NewReader("x"), ""))

	r, ct, err := s.Get("k")
	require.NoError(t, err)
	r.Close()
	assert.Equal(t, "image/jpeg", ct)
}

func TestGetMissingAndTraversal(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, _, err = s.Get("nope")
	assert.ErrorIs(t, err, store.ErrNotFound)

	for _, k := range []string{"", "../secret", "a/b", `a\b`} {
		_, _, err := s.Get(k)
		assert.ErrorIs(t, err, store.ErrNotFound, "key %q", k)
	}
}
