package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// ResourceKind names the remote collection a ResourceClient call addresses.
type ResourceKind string

// KindFile is the Drive files collection, which holds both files and folders.
const KindFile ResourceKind = "files"

// ResourceClient is the remote resource client. Implementations perform
// exactly one remote call per method and never retry.
type ResourceClient interface {
	// List returns one page of resources matching query, continuing from
	// cursor ("" for the first page). fields limits the returned fields.
	List(ctx context.Context, kind ResourceKind, query, cursor string, fields []string) (domain.Page[domain.Resource], error)

	// Create creates a resource from body and returns it.
	Create(ctx context.Context, kind ResourceKind, body domain.Resource) (domain.Resource, error)

	// Update patches the resource with the non-zero fields of body.
	Update(ctx context.Context, kind ResourceKind, id string, body domain.Resource) (domain.Resource, error)

	// Delete permanently removes the resource.
	Delete(ctx context.Context, kind ResourceKind, id string) error

	// Upload transfers content. With an empty id a new resource is created
	// from body; otherwise the existing resource's content and metadata
	// are replaced.
	Upload(
		ctx context.Context, kind ResourceKind, id string, content io.Reader, mimeType string, body domain.Resource,
	) (domain.Resource, error)
}
