package drive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gsuites/internal/connectors/google"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ResourceClient = (*Client)(nil)

// Client implements driven.ResourceClient over the Drive v3 files API.
// Each method issues exactly one API call and never retries.
type Client struct {
	svc *drive.Service
	cfg *Config
}

// NewClient creates a Drive resource client. A nil cfg uses DefaultConfig.
func NewClient(svc *drive.Service, cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Client{svc: svc, cfg: cfg}
}

// List returns one page of files matching query.
func (c *Client) List(
	ctx context.Context, kind driven.ResourceKind, query, cursor string, fields []string,
) (domain.Page[domain.Resource], error) {
	if err := checkKind(kind); err != nil {
		return domain.Page[domain.Resource]{}, err
	}

	call := c.svc.Files.List().
		Context(ctx).
		Spaces(c.cfg.Spaces).
		PageSize(c.cfg.PageSize).
		Fields(listFields(fields))
	if query != "" {
		call = call.Q(query)
	}
	if cursor != "" {
		call = call.PageToken(cursor)
	}

	resp, err := call.Do()
	if err != nil {
		return domain.Page[domain.Resource]{}, google.WrapError("files.list", err)
	}

	page := domain.Page[domain.Resource]{
		Items:      make([]domain.Resource, 0, len(resp.Files)),
		NextCursor: resp.NextPageToken,
	}
	for _, f := range resp.Files {
		page.Items = append(page.Items, fileToResource(f))
	}
	return page, nil
}

// Create creates a file or folder from body.
func (c *Client) Create(ctx context.Context, kind driven.ResourceKind, body domain.Resource) (domain.Resource, error) {
	if err := checkKind(kind); err != nil {
		return domain.Resource{}, err
	}
	f, err := c.svc.Files.Create(resourceToFile(body)).Context(ctx).Fields(resourceFields).Do()
	if err != nil {
		return domain.Resource{}, google.WrapError("files.create", err)
	}
	return fileToResource(f), nil
}

// Update patches a file's metadata. Parents in body are added, not replaced.
func (c *Client) Update(
	ctx context.Context, kind driven.ResourceKind, id string, body domain.Resource,
) (domain.Resource, error) {
	if err := checkKind(kind); err != nil {
		return domain.Resource{}, err
	}
	call := c.svc.Files.Update(id, resourceToPatch(body)).Context(ctx).Fields(resourceFields)
	if len(body.Parents) > 0 {
		call = call.AddParents(strings.Join(body.Parents, ","))
	}
	f, err := call.Do()
	if err != nil {
		return domain.Resource{}, google.WrapError("files.update", err)
	}
	return fileToResource(f), nil
}

// Delete permanently deletes a file, skipping the trash.
func (c *Client) Delete(ctx context.Context, kind driven.ResourceKind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if err := c.svc.Files.Delete(id).Context(ctx).Do(); err != nil {
		return google.WrapError("files.delete", err)
	}
	return nil
}

// Upload creates a file with content (empty id) or replaces an existing
// file's content. Content larger than one chunk is sent as a resumable upload.
func (c *Client) Upload(
	ctx context.Context, kind driven.ResourceKind, id string, content io.Reader, mimeType string, body domain.Resource,
) (domain.Resource, error) {
	if err := checkKind(kind); err != nil {
		return domain.Resource{}, err
	}
	media := []googleapi.MediaOption{
		googleapi.ContentType(mimeType),
		googleapi.ChunkSize(googleapi.DefaultUploadChunkSize),
	}

	if id == "" {
		f, err := c.svc.Files.Create(resourceToFile(body)).
			Context(ctx).
			Media(content, media...).
			Fields(resourceFields).
			Do()
		if err != nil {
			return domain.Resource{}, google.WrapError("files.create", err)
		}
		return fileToResource(f), nil
	}

	f, err := c.svc.Files.Update(id, resourceToPatch(body)).
		Context(ctx).
		Media(content, media...).
		Fields(resourceFields).
		Do()
	if err != nil {
		return domain.Resource{}, google.WrapError("files.update", err)
	}
	return fileToResource(f), nil
}

func checkKind(kind driven.ResourceKind) error {
	if kind != driven.KindFile {
		return fmt.Errorf("drive: unsupported resource kind %q: %w", kind, domain.ErrInvalidInput)
	}
	return nil
}
