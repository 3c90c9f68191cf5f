package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
	"github.com/custodia-labs/gsuites/internal/logger"
)

// resolveFields are the fields requested when looking up a child resource.
var resolveFields = []string{"id", "name", "mimeType", "parents"}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStrict makes the resolver fail with domain.ErrAmbiguousResource when
// more than one same-named resource exists under the parent, instead of
// returning the first match.
func WithStrict(strict bool) ResolverOption {
	return func(r *Resolver) {
		r.strict = strict
	}
}

// WithKind sets the collection the resolver searches and creates in.
// Defaults to driven.KindFile.
func WithKind(kind driven.ResourceKind) ResolverOption {
	return func(r *Resolver) {
		r.kind = kind
	}
}

// Resolver returns a named resource under a parent, creating it if absent.
//
// Resolution is check-then-act with no atomicity: two callers resolving the
// same (name, parent) concurrently may both find nothing and both create,
// leaving duplicates. The remote API offers no conditional create, and a
// process-local lock cannot cover other processes, so none is taken.
//
// When duplicates exist the first match in remote order wins. That order is
// not guaranteed to be stable across calls.
type Resolver struct {
	client driven.ResourceClient
	kind   driven.ResourceKind
	strict bool
}

// NewResolver creates a resolver over the given remote resource client.
func NewResolver(client driven.ResourceClient, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client: client,
		kind:   driven.KindFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveOrCreate returns the non-trashed resource named name with the given
// mime type under parentID. If there is none, it creates {name, mimeType,
// parents: [parentID]} and returns the created resource.
func (r *Resolver) ResolveOrCreate(ctx context.Context, name, parentID, mimeType string) (domain.Resource, error) {
	if name == "" || parentID == "" {
		return domain.Resource{}, fmt.Errorf("resolve %q under %q: %w", name, parentID, domain.ErrInvalidInput)
	}

	existing, found, err := r.lookup(ctx, name, parentID, mimeType)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("look up %q under %q: %w", name, parentID, err)
	}
	if found {
		logger.Debug("resolved %q under %q: %s", name, parentID, existing.ID)
		return existing, nil
	}

	created, err := r.client.Create(ctx, r.kind, domain.Resource{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{parentID},
	})
	if err != nil {
		return domain.Resource{}, fmt.Errorf("create %q under %q: %w", name, parentID, err)
	}
	logger.Debug("created %q under %q: %s", name, parentID, created.ID)
	return created, nil
}

// lookup returns the first matching child. In strict mode it reads one
// match further to detect duplicates.
func (r *Resolver) lookup(ctx context.Context, name, parentID, mimeType string) (domain.Resource, bool, error) {
	query := domain.ChildQuery{Name: name, MimeType: mimeType, ParentID: parentID}.String()
	seq := ListResources(ctx, r.client, r.kind, query, resolveFields)

	if !r.strict {
		return First(seq)
	}

	matches, err := Collect(Take(seq, 2))
	if err != nil {
		return domain.Resource{}, false, err
	}
	switch len(matches) {
	case 0:
		return domain.Resource{}, false, nil
	case 1:
		return matches[0], true, nil
	default:
		return domain.Resource{}, false, fmt.Errorf(
			"%d or more resources named %q under %q: %w", len(matches), name, parentID, domain.ErrAmbiguousResource)
	}
}
