package domain

// MimeTypeFolder is the mime type Drive uses for folder resources.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// RootID is the well-known identifier of a user's My Drive root folder.
const RootID = "root"

// Resource is one item returned by or sent to a remote resource API.
// The core reads only ID, Name and Parents; everything else is carried
// through untouched.
type Resource struct {
	// ID is the remote identifier. Empty on create requests.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// Name is the display name, unique per parent only by convention.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// MimeType identifies the resource kind (folder, document, ...).
	MimeType string `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
	// Parents lists the identifiers of the containing resources.
	Parents []string `json:"parents,omitempty" yaml:"parents,omitempty"`
	// ModifiedTime is an RFC 3339 timestamp.
	ModifiedTime string `json:"modifiedTime,omitempty" yaml:"modifiedTime,omitempty"`
	// Size is the content size in bytes, when known.
	Size int64 `json:"size,omitempty" yaml:"size,omitempty"`
	// WebViewLink is the browser URL of the resource.
	WebViewLink string `json:"webViewLink,omitempty" yaml:"webViewLink,omitempty"`
	// Trashed reports whether the resource is soft-deleted.
	Trashed bool `json:"trashed,omitempty" yaml:"trashed,omitempty"`
}

// IsFolder returns true if the resource is a container.
func (r Resource) IsFolder() bool {
	return r.MimeType == MimeTypeFolder
}

// HasParent returns true if parentID is one of the resource's parents.
func (r Resource) HasParent(parentID string) bool {
	for _, p := range r.Parents {
		if p == parentID {
			return true
		}
	}
	return false
}

// Page is one page of a cursor-paginated listing.
type Page[T any] struct {
	// Items are the page's results in remote order.
	Items []T
	// NextCursor continues the listing. Empty means there are no more pages.
	NextCursor string
}

// HasMore returns true if another page can be fetched.
func (p Page[T]) HasMore() bool {
	return p.NextCursor != ""
}

// DefaultResourceFields is the field set requested when callers give none.
var DefaultResourceFields = []string{"id", "name"}
