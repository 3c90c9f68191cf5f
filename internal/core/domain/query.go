package domain

import (
	"fmt"
	"strings"
)

// ChildQuery selects non-trashed resources under a parent, optionally
// restricted by exact name and mime type. String renders it in the Drive
// query language.
type ChildQuery struct {
	Name     string
	MimeType string
	ParentID string
}

// String renders the query. Values are escaped for the query language,
// so callers pass names verbatim.
func (q ChildQuery) String() string {
	clauses := make([]string, 0, 4)
	if q.MimeType != "" {
		clauses = append(clauses, fmt.Sprintf("mimeType = '%s'", EscapeQuery(q.MimeType)))
	}
	if q.Name != "" {
		clauses = append(clauses, fmt.Sprintf("name = '%s'", EscapeQuery(q.Name)))
	}
	if q.ParentID != "" {
		clauses = append(clauses, fmt.Sprintf("'%s' in parents", EscapeQuery(q.ParentID)))
	}
	clauses = append(clauses, "trashed = false")
	return strings.Join(clauses, " and ")
}

// FolderQuery selects non-trashed folders with the given name under any parent.
func FolderQuery(name string) string {
	return ChildQuery{Name: name, MimeType: MimeTypeFolder}.String()
}

// EscapeQuery escapes backslashes and single quotes inside a quoted
// query-language string literal.
func EscapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}
