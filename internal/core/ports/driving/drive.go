package driving

import (
	"context"
	"iter"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// DriveService provides file storage operations to external actors.
type DriveService interface {
	// ListFiles lazily enumerates files matching a Drive query.
	ListFiles(ctx context.Context, query string, fields []string) iter.Seq2[domain.Resource, error]

	// FindFolder lazily enumerates non-trashed folders with the given name.
	FindFolder(ctx context.Context, name string) iter.Seq2[domain.Resource, error]

	// MakeDir returns the folder named name under parentID, creating it if absent.
	MakeDir(ctx context.Context, name, parentID string) (domain.Resource, error)

	// MakeDirs resolves or creates every folder along path and returns the last one.
	MakeDirs(ctx context.Context, path string) (domain.Resource, error)

	// UploadFile uploads a local file to remotePath, replacing the content of
	// an existing file with the same name, mime type and parent folder.
	UploadFile(ctx context.Context, localPath, remotePath string) (domain.Resource, error)

	// Delete permanently removes a file or folder.
	Delete(ctx context.Context, id string) error
}
