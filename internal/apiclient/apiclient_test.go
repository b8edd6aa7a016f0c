package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mekvam/logdeck/internal/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second)
}

func TestTail(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		want       string
		wantErr    error
		wantStatus int
	}{
		{"content returned verbatim", http.StatusOK, "line one\nline two\n", "line one\nline two\n", nil, 0},
		{"empty body", http.StatusOK, "", "", nil, 0},
		{"missing file", http.StatusNotFound, "not found", "", ErrNoLogFile, 0},
		{"server failure", http.StatusInternalServerError, "boom", "", nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/logs/requests.log", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			got, err := client.Tail(context.Background(), apitypes.StreamRequests)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantStatus != 0:
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.wantStatus, statusErr.Code)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTailNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := New(server.URL, time.Second)

	_, err := client.Tail(context.Background(), apitypes.StreamErrors)
	assert.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr), "transport failures must not look like server statuses")
}

func TestStats(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/logs/stats", r.URL.Path)
		assert.Equal(t, "errors", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"size": 2048, "max_size": 5242880}`))
	}))

	stats, err := client.Stats(context.Background(), apitypes.StreamErrors)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), stats.Size)
	assert.Equal(t, int64(5242880), stats.MaxSize)
}

func TestStatsServerErrorBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to fetch log stats", "code": 500}`))
	}))

	_, err := client.Stats(context.Background(), apitypes.StreamRequests)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Contains(t, statusErr.Message, "Failed to fetch log stats")
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/logs/search", r.URL.Path)
		assert.Equal(t, "GET /index & more", r.URL.Query().Get("q"))
		assert.Equal(t, "requests", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 2, "results": ["a", "b"]}`))
	}))

	resp, err := client.Search(context.Background(), apitypes.StreamRequests, "GET /index & more")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, []string{"a", "b"}, resp.Results)
}

func TestArchive(t *testing.T) {
	t.Run("server provided filename", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/logs/archive", r.URL.Path)
			assert.Equal(t, "requests", r.URL.Query().Get("type"))
			w.Header().Set("Content-Disposition", `attachment; filename="requests_archive_20250101_120000.log"`)
			w.Write([]byte("archived content"))
		}))

		dir := t.TempDir()
		path, err := client.Archive(context.Background(), apitypes.StreamRequests, dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "requests_archive_20250101_120000.log"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "archived content", string(data))
	})

	t.Run("fallback filename without header", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("x"))
		}))

		dir := t.TempDir()
		path, err := client.Archive(context.Background(), apitypes.StreamErrors, dir)
		require.NoError(t, err)
		assert.Contains(t, filepath.Base(path), "errors_archive_")
	})

	t.Run("missing file", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.Archive(context.Background(), apitypes.StreamRequests, t.TempDir())
		assert.ErrorIs(t, err, ErrNoLogFile)
	})
}
