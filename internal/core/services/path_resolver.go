package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// PathResolver resolves or creates a chain of nested folders.
type PathResolver struct {
	resolver *Resolver
	rootID   string
}

// NewPathResolver creates a path resolver starting at rootID.
// An empty rootID means domain.RootID.
func NewPathResolver(resolver *Resolver, rootID string) *PathResolver {
	if rootID == "" {
		rootID = domain.RootID
	}
	return &PathResolver{
		resolver: resolver,
		rootID:   rootID,
	}
}

// RootID returns the identifier paths are resolved from.
func (p *PathResolver) RootID() string {
	return p.rootID
}

// ResolvePath resolves every segment of a slash-delimited path in order,
// each parented to the previous one, and returns the last folder.
//
// An empty path fails with domain.ErrInvalidPath before any remote call.
// A failure part-way leaves the folders already created in place.
func (p *PathResolver) ResolvePath(ctx context.Context, path string) (domain.Resource, error) {
	segments, err := domain.SplitPath(path)
	if err != nil {
		return domain.Resource{}, err
	}

	parentID := p.rootID
	var folder domain.Resource
	for i, name := range segments {
		folder, err = p.resolver.ResolveOrCreate(ctx, name, parentID, domain.MimeTypeFolder)
		if err != nil {
			return domain.Resource{}, fmt.Errorf("resolve segment %d of %q: %w", i+1, path, err)
		}
		if folder.ID == "" {
			return domain.Resource{}, fmt.Errorf("folder %q resolved without an id: %w", name, domain.ErrInvalidInput)
		}
		parentID = folder.ID
	}
	return folder, nil
}
