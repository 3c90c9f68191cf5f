package drive

import (
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// resourceFields are returned by create, update and upload calls.
const resourceFields googleapi.Field = "id, name, mimeType, parents, modifiedTime, size, webViewLink, trashed"

// listFields builds the partial response selector for a list call.
func listFields(fields []string) googleapi.Field {
	if len(fields) == 0 {
		fields = domain.DefaultResourceFields
	}
	return googleapi.Field("nextPageToken, files(" + strings.Join(fields, ", ") + ")")
}

// fileToResource converts a Drive file to a domain resource.
func fileToResource(f *drive.File) domain.Resource {
	if f == nil {
		return domain.Resource{}
	}
	return domain.Resource{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Parents:      f.Parents,
		ModifiedTime: f.ModifiedTime,
		Size:         f.Size,
		WebViewLink:  f.WebViewLink,
		Trashed:      f.Trashed,
	}
}

// resourceToFile builds a create request body.
func resourceToFile(r domain.Resource) *drive.File {
	return &drive.File{
		Name:         r.Name,
		MimeType:     r.MimeType,
		Parents:      r.Parents,
		ModifiedTime: r.ModifiedTime,
	}
}

// resourceToPatch builds an update request body. Drive rejects parents in
// update bodies; they are moved with addParents instead.
func resourceToPatch(r domain.Resource) *drive.File {
	f := &drive.File{
		Name:         r.Name,
		MimeType:     r.MimeType,
		ModifiedTime: r.ModifiedTime,
	}
	if r.Trashed {
		f.Trashed = true
		f.ForceSendFields = append(f.ForceSendFields, "Trashed")
	}
	return f
}
