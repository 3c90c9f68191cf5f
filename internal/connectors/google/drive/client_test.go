package drive

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/custodia-labs/gsuites/internal/connectors/google"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
	"github.com/custodia-labs/gsuites/internal/core/services"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := google.NewDriveService(context.Background(), nil,
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return NewClient(svc, &Config{RootID: "root", Spaces: "drive", PageSize: 2})
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/files", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "name = 'a' and trashed = false", q.Get("q"))
		assert.Equal(t, "tok-1", q.Get("pageToken"))
		assert.Equal(t, "2", q.Get("pageSize"))
		assert.Equal(t, "drive", q.Get("spaces"))
		assert.Equal(t, "nextPageToken, files(id, name, parents)", q.Get("fields"))

		writeJSON(t, w, map[string]any{
			"nextPageToken": "tok-2",
			"files": []map[string]any{
				{"id": "1", "name": "a", "parents": []string{"root"}},
			},
		})
	})

	page, err := client.List(context.Background(), driven.KindFile,
		"name = 'a' and trashed = false", "tok-1", []string{"id", "name", "parents"})

	require.NoError(t, err)
	assert.Equal(t, "tok-2", page.NextCursor)
	require.Len(t, page.Items, 1)
	assert.Equal(t, domain.Resource{ID: "1", Name: "a", Parents: []string{"root"}}, page.Items[0])
}

func TestClient_ListOmitsEmptyQueryAndCursor(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("q"))
		assert.False(t, q.Has("pageToken"))
		assert.Equal(t, "nextPageToken, files(id, name)", q.Get("fields"))
		writeJSON(t, w, map[string]any{"files": []any{}})
	})

	page, err := client.List(context.Background(), driven.KindFile, "", "", nil)

	require.NoError(t, err)
	assert.False(t, page.HasMore())
	assert.Empty(t, page.Items)
}

func TestClient_PagesThroughListResources(t *testing.T) {
	var tokens []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("pageToken")
		tokens = append(tokens, token)
		switch token {
		case "":
			writeJSON(t, w, map[string]any{"nextPageToken": "p2", "files": []map[string]any{{"id": "1"}, {"id": "2"}}})
		case "p2":
			writeJSON(t, w, map[string]any{"files": []map[string]any{{"id": "3"}}})
		default:
			t.Errorf("unexpected token %q", token)
		}
	})

	items, err := services.Collect(services.ListResources(context.Background(), client, driven.KindFile, "", nil))

	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, []string{"", "p2"}, tokens)
}

func TestClient_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/files", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "reports", body["name"])
		assert.Equal(t, domain.MimeTypeFolder, body["mimeType"])
		assert.Equal(t, []any{"root"}, body["parents"])

		writeJSON(t, w, map[string]any{
			"id": "new-1", "name": "reports", "mimeType": domain.MimeTypeFolder, "parents": []string{"root"},
		})
	})

	created, err := client.Create(context.Background(), driven.KindFile, domain.Resource{
		Name: "reports", MimeType: domain.MimeTypeFolder, Parents: []string{"root"},
	})

	require.NoError(t, err)
	assert.Equal(t, "new-1", created.ID)
	assert.True(t, created.IsFolder())
}

func TestClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/files/f1", r.URL.Path)
		assert.Equal(t, "p2", r.URL.Query().Get("addParents"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "renamed", body["name"])
		assert.NotContains(t, body, "parents")

		writeJSON(t, w, map[string]any{"id": "f1", "name": "renamed"})
	})

	updated, err := client.Update(context.Background(), driven.KindFile, "f1",
		domain.Resource{Name: "renamed", Parents: []string{"p2"}})

	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
}

func TestClient_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/files/f1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Delete(context.Background(), driven.KindFile, "f1"))
}

func TestClient_UploadCreate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload/drive/v3/files", r.URL.Path)
		assert.Equal(t, "multipart", r.URL.Query().Get("uploadType"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"name":"notes.txt"`)
		assert.Contains(t, string(raw), "hello content")

		writeJSON(t, w, map[string]any{"id": "u1", "name": "notes.txt", "mimeType": "text/plain", "size": "13"})
	})

	created, err := client.Upload(context.Background(), driven.KindFile, "", strings.NewReader("hello content"),
		"text/plain", domain.Resource{Name: "notes.txt", MimeType: "text/plain", Parents: []string{"root"}})

	require.NoError(t, err)
	assert.Equal(t, "u1", created.ID)
	assert.Equal(t, int64(13), created.Size)
}

func TestClient_UploadUpdate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/upload/drive/v3/files/u1", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"modifiedTime":"2024-03-01T12:00:00Z"`)
		assert.Contains(t, string(raw), "v2")

		writeJSON(t, w, map[string]any{"id": "u1", "modifiedTime": "2024-03-01T12:00:00Z"})
	})

	updated, err := client.Upload(context.Background(), driven.KindFile, "u1", strings.NewReader("v2"),
		"text/plain", domain.Resource{ModifiedTime: "2024-03-01T12:00:00Z"})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00Z", updated.ModifiedTime)
}

func TestClient_ErrorClassification(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"File not found: f9"}}`))
	})

	err := client.Delete(context.Background(), driven.KindFile, "f9")

	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	var te *domain.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "files.delete", te.Op)
	assert.Equal(t, http.StatusNotFound, te.StatusCode)
}

func TestClient_RejectsUnknownKind(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.List(context.Background(), "labels", "", "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = client.Create(context.Background(), "labels", domain.Resource{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
