package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
	"github.com/custodia-labs/gsuites/internal/logger"
)

// DefaultMimeType is used when a local file's type cannot be guessed.
const DefaultMimeType = "application/octet-stream"

// Uploader writes local content to a remote file path, updating the file if
// one with the same name, mime type and parent exists and creating it
// otherwise. The same check-then-act race as Resolver applies.
type Uploader struct {
	client driven.ResourceClient
	paths  *PathResolver
	now    func() time.Time
}

// NewUploader creates an uploader that resolves parent folders with paths.
func NewUploader(client driven.ResourceClient, paths *PathResolver) *Uploader {
	return &Uploader{
		client: client,
		paths:  paths,
		now:    time.Now,
	}
}

// Upload uploads the file at localPath to remotePath. The mime type is
// guessed from the local file's extension.
func (u *Uploader) Upload(ctx context.Context, localPath, remotePath string) (domain.Resource, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	return u.UploadContent(ctx, f, DetectMimeType(localPath), remotePath)
}

// UploadContent uploads content with the given mime type to remotePath.
// A remote path with no folder part ("/name") targets the root folder.
func (u *Uploader) UploadContent(
	ctx context.Context, content io.Reader, mimeType, remotePath string,
) (domain.Resource, error) {
	dir, name, err := domain.SplitFilePath(remotePath)
	if err != nil {
		return domain.Resource{}, err
	}

	parentID := u.paths.RootID()
	if dir != "" {
		folder, err := u.paths.ResolvePath(ctx, dir)
		if err != nil {
			return domain.Resource{}, fmt.Errorf("resolve folder %q: %w", dir, err)
		}
		parentID = folder.ID
	}

	query := domain.ChildQuery{Name: name, MimeType: mimeType, ParentID: parentID}.String()
	existing, found, err := First(ListResources(ctx, u.client, driven.KindFile, query, resolveFields))
	if err != nil {
		return domain.Resource{}, fmt.Errorf("look up %q: %w", remotePath, err)
	}

	if found {
		logger.Info("updating existing file: %s", remotePath)
		updated, err := u.client.Upload(ctx, driven.KindFile, existing.ID, content, mimeType, domain.Resource{
			ModifiedTime: u.now().UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return domain.Resource{}, fmt.Errorf("update %q: %w", remotePath, err)
		}
		return updated, nil
	}

	logger.Info("creating new file: %s", remotePath)
	created, err := u.client.Upload(ctx, driven.KindFile, "", content, mimeType, domain.Resource{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{parentID},
	})
	if err != nil {
		return domain.Resource{}, fmt.Errorf("create %q: %w", remotePath, err)
	}
	return created, nil
}

// DetectMimeType guesses a mime type from a file name's extension, without
// parameters such as charset.
func DetectMimeType(name string) string {
	t := mime.TypeByExtension(filepath.Ext(name))
	if t == "" {
		return DefaultMimeType
	}
	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return DefaultMimeType
	}
	return mediaType
}
