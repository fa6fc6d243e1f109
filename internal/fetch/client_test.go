package fetch

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
)

const packBody = `{"config": {"key": "test"}, "items": []}`

func packServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Write([]byte(packBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchPack(t *testing.T) {
	hits := 0
	srv := packServer(t, &hits)
	dir := t.TempDir()

	c := NewClient(dir, false)

	path, err := c.FetchPack(context.Background(), srv.URL, "default", nil)
	require.NoError(t, err)
	assert.Equal(t, c.PackPath("default"), path)
	assert.Equal(t, 1, hits)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, packBody, string(raw))

	t.Run("Cached Copy Short Circuits", func(t *testing.T) {
		_, err := c.FetchPack(context.Background(), srv.URL, "default", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, hits)
	})

	t.Run("Force Redownloads", func(t *testing.T) {
		forced := NewClient(dir, true)
		_, err := forced.FetchPack(context.Background(), srv.URL, "default", nil)
		require.NoError(t, err)
		assert.Equal(t, 2, hits)
	})

	t.Run("No Partial Files Left Behind", func(t *testing.T) {
		parts, err := filepath.Glob(filepath.Join(dir, "*.part"))
		require.NoError(t, err)
		assert.Empty(t, parts)
	})
}

func TestFetchPackReportsProgress(t *testing.T) {
	hits := 0
	srv := packServer(t, &hits)

	var total int64 = -2
	var written int

	c := NewClient(t.TempDir(), false)
	_, err := c.FetchPack(context.Background(), srv.URL, "default", func(t int64) io.Writer {
		total = t
		return writerFunc(func(p []byte) (int, error) {
			written += len(p)
			return len(p), nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, int64(len(packBody)), total)
	assert.Equal(t, len(packBody), written)
}

func TestFetchPackHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(t.TempDir(), false)
	_, err := c.FetchPack(context.Background(), srv.URL, "default", nil)
	assert.Error(t, err)
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
