package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChildQuery_String(t *testing.T) {
	tests := []struct {
		name  string
		query ChildQuery
		want  string
	}{
		{
			name:  "folder under parent",
			query: ChildQuery{Name: "reports", MimeType: MimeTypeFolder, ParentID: "root"},
			want: "mimeType = 'application/vnd.google-apps.folder' and name = 'reports' " +
				"and 'root' in parents and trashed = false",
		},
		{
			name:  "file with mime type",
			query: ChildQuery{Name: "a.txt", MimeType: "text/plain", ParentID: "p1"},
			want:  "mimeType = 'text/plain' and name = 'a.txt' and 'p1' in parents and trashed = false",
		},
		{
			name:  "children of parent",
			query: ChildQuery{ParentID: "p1"},
			want:  "'p1' in parents and trashed = false",
		},
		{
			name:  "empty query still excludes trash",
			query: ChildQuery{},
			want:  "trashed = false",
		},
		{
			name:  "quotes are escaped",
			query: ChildQuery{Name: "Tom's folder", ParentID: "root"},
			want:  `name = 'Tom\'s folder' and 'root' in parents and trashed = false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.String())
		})
	}
}

func TestEscapeQuery(t *testing.T) {
	assert.Equal(t, "plain", EscapeQuery("plain"))
	assert.Equal(t, `it\'s`, EscapeQuery("it's"))
	assert.Equal(t, `back\\slash`, EscapeQuery(`back\slash`))
	assert.Equal(t, `\\\'`, EscapeQuery(`\'`))
}

func TestFolderQuery(t *testing.T) {
	assert.Equal(t,
		"mimeType = 'application/vnd.google-apps.folder' and name = 'x' and trashed = false",
		FolderQuery("x"))
}
