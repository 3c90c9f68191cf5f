package drive

import "github.com/custodia-labs/gsuites/internal/core/domain"

// ResolveWebURL returns the browser URL of a resource. The link reported by
// the API takes precedence; otherwise one is derived from the ID.
func ResolveWebURL(r domain.Resource) string {
	if r.WebViewLink != "" {
		return r.WebViewLink
	}
	if r.ID == "" {
		return ""
	}
	if r.IsFolder() {
		return "https://drive.google.com/drive/folders/" + r.ID
	}
	return "https://drive.google.com/file/d/" + r.ID + "/view"
}
