package services

import (
	"context"
	"fmt"
	"iter"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
	"github.com/custodia-labs/gsuites/internal/core/ports/driving"
)

// Ensure DriveService implements the interface.
var _ driving.DriveService = (*DriveService)(nil)

// DriveOptions configures a DriveService.
type DriveOptions struct {
	// RootID is the folder paths are resolved from. Defaults to domain.RootID.
	RootID string
	// Strict surfaces duplicate same-named folders as domain.ErrAmbiguousResource.
	Strict bool
}

// DriveService implements file storage operations over a remote resource client.
type DriveService struct {
	client   driven.ResourceClient
	resolver *Resolver
	paths    *PathResolver
	uploader *Uploader
}

// NewDriveService creates a new drive service.
func NewDriveService(client driven.ResourceClient, opts DriveOptions) *DriveService {
	resolver := NewResolver(client, WithStrict(opts.Strict))
	paths := NewPathResolver(resolver, opts.RootID)
	return &DriveService{
		client:   client,
		resolver: resolver,
		paths:    paths,
		uploader: NewUploader(client, paths),
	}
}

// ListFiles lazily enumerates files matching a Drive query.
func (s *DriveService) ListFiles(ctx context.Context, query string, fields []string) iter.Seq2[domain.Resource, error] {
	return ListResources(ctx, s.client, driven.KindFile, query, fields)
}

// FindFolder lazily enumerates non-trashed folders named name, anywhere.
func (s *DriveService) FindFolder(ctx context.Context, name string) iter.Seq2[domain.Resource, error] {
	return ListResources(ctx, s.client, driven.KindFile, domain.FolderQuery(name), nil)
}

// MakeDir returns the folder named name under parentID, creating it if absent.
// An empty parentID means the configured root.
func (s *DriveService) MakeDir(ctx context.Context, name, parentID string) (domain.Resource, error) {
	if parentID == "" {
		parentID = s.paths.RootID()
	}
	return s.resolver.ResolveOrCreate(ctx, name, parentID, domain.MimeTypeFolder)
}

// MakeDirs resolves or creates every folder along path.
func (s *DriveService) MakeDirs(ctx context.Context, path string) (domain.Resource, error) {
	return s.paths.ResolvePath(ctx, path)
}

// UploadFile uploads a local file to remotePath.
func (s *DriveService) UploadFile(ctx context.Context, localPath, remotePath string) (domain.Resource, error) {
	return s.uploader.Upload(ctx, localPath, remotePath)
}

// Delete permanently removes a file or folder.
func (s *DriveService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := s.client.Delete(ctx, driven.KindFile, id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}
