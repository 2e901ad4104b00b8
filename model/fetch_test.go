package model

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/cjkseg/cjkerr"
)

func TestFetchBarePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.model")
	require.NoError(t, os.WriteFile(path, []byte("0.0\n"), 0o644))

	r, err := Fetch(context.Background(), path)
	require.NoError(t, err)
	defer r.Close()
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "0.0\n", string(content))
}

func TestFetchFileScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.model")
	require.NoError(t, os.WriteFile(path, []byte("0.0\n"), 0o644))

	r, err := Fetch(context.Background(), "file://"+path)
	require.NoError(t, err)
	defer r.Close()
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "0.0\n", string(content))
}

func TestFetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("0.0\n"))
	}))
	defer srv.Close()

	r, err := Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	defer r.Close()
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "0.0\n", string(content))
}

func TestFetchHTTPNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, cjkerr.ErrInvalidInput)
}

func TestFetchEmptyURI(t *testing.T) {
	_, err := Fetch(context.Background(), "")
	assert.ErrorIs(t, err, cjkerr.ErrInvalidInput)
}

func TestFetchUnsupportedScheme(t *testing.T) {
	_, err := Fetch(context.Background(), "ftp://example.com/japanese.model")
	assert.ErrorIs(t, err, cjkerr.ErrInvalidInput)
}
