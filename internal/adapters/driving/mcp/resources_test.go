package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestExtractFolderID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid folder URI",
			uri:      "gsuites://drive/folders/1AbC",
			expected: "1AbC",
		},
		{
			name:     "root alias",
			uri:      "gsuites://drive/folders/root",
			expected: "root",
		},
		{
			name:     "invalid prefix",
			uri:      "file://drive/folders/1AbC",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "gsuites://drive/folders/1AbC/extra",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractFolderID(tt.uri))
		})
	}
}

func TestServer_handleFolderResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists children of folder", func(t *testing.T) {
		ports, b := testPorts()
		folder := b.files.Seed(domain.Resource{Name: "docs", MimeType: domain.MimeTypeFolder, Parents: []string{"root"}})
		b.files.Seed(domain.Resource{Name: "a.txt", Parents: []string{folder.ID}})
		b.files.Seed(domain.Resource{Name: "b.txt", Parents: []string{folder.ID}})
		b.files.Seed(domain.Resource{Name: "c.txt", Parents: []string{folder.ID}})
		b.files.Seed(domain.Resource{Name: "gone.txt", Parents: []string{folder.ID}, Trashed: true})
		server, err := NewServer(ports)
		require.NoError(t, err)

		uri := "gsuites://drive/folders/" + folder.ID
		result, err := server.handleFolderResource(ctx, readRequest(uri))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, uri, result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var files []FileOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &files))
		require.Len(t, files, 3)
		assert.Equal(t, "c.txt", files[2].Name)
	})

	t.Run("unknown URI is not found", func(t *testing.T) {
		ports, _ := testPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, err = server.handleFolderResource(ctx, readRequest("gsuites://drive/folders/"))
		assert.Error(t, err)
	})
}

func TestServer_handleLabelsResource(t *testing.T) {
	ports, _ := testPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	result, err := server.handleLabelsResource(context.Background(), readRequest("gsuites://gmail/labels"))
	require.NoError(t, err)

	var labels []domain.Label
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &labels))
	require.Len(t, labels, 1)
	assert.Equal(t, "Receipts", labels[0].Name)
}

func TestServer_handleCalendarsResource(t *testing.T) {
	ports, _ := testPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	result, err := server.handleCalendarsResource(context.Background(), readRequest("gsuites://calendars"))
	require.NoError(t, err)

	var cals []CalendarOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &cals))
	require.Len(t, cals, 2)
	assert.True(t, cals[0].Primary)
	assert.Equal(t, "Team", cals[1].Summary)
}
