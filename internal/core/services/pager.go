package services

import (
	"context"
	"fmt"
	"iter"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
	"github.com/custodia-labs/gsuites/internal/logger"
)

// PageFunc fetches the page that follows cursor ("" for the first page).
type PageFunc[T any] func(ctx context.Context, cursor string) (domain.Page[T], error)

// Paginate returns a lazy sequence over every item of a cursor-paginated
// listing. Pages are fetched strictly one at a time, only when the consumer
// has drained the previous one, and items are yielded in page order.
//
// Enumeration ends when a page carries no next cursor. Any fetch error,
// context cancellation, or a page that hands back a cursor already sent
// earlier in the listing is yielded once as the final element. The sequence is not restartable;
// ranging over it again issues a fresh listing.
func Paginate[T any](ctx context.Context, fetch PageFunc[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		cursor := ""
		seen := map[string]struct{}{}
		for n := 1; ; n++ {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}

			page, err := fetch(ctx, cursor)
			if err != nil {
				yield(zero, err)
				return
			}
			logger.Debug("page %d: %d items, more=%t", n, len(page.Items), page.HasMore())

			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}

			if !page.HasMore() {
				return
			}
			seen[cursor] = struct{}{}
			if _, ok := seen[page.NextCursor]; ok {
				yield(zero, fmt.Errorf("page %d repeated cursor %q: %w", n, page.NextCursor, domain.ErrStaleCursor))
				return
			}
			cursor = page.NextCursor
		}
	}
}

// ListResources lazily enumerates the resources matching query.
// A nil fields slice requests domain.DefaultResourceFields.
func ListResources(
	ctx context.Context, client driven.ResourceClient, kind driven.ResourceKind, query string, fields []string,
) iter.Seq2[domain.Resource, error] {
	if fields == nil {
		fields = domain.DefaultResourceFields
	}
	return Paginate(ctx, func(ctx context.Context, cursor string) (domain.Page[domain.Resource], error) {
		return client.List(ctx, kind, query, cursor, fields)
	})
}

// First returns the first item of seq and stops the enumeration there.
// found is false if the sequence was empty.
func First[T any](seq iter.Seq2[T, error]) (item T, found bool, err error) {
	for v, err := range seq {
		if err != nil {
			return item, false, err
		}
		return v, true, nil
	}
	return item, false, nil
}

// Collect drains seq into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var items []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// Take returns a sequence yielding at most limit items of seq.
// A limit of 0 or less means no limit.
func Take[T any](seq iter.Seq2[T, error], limit int) iter.Seq2[T, error] {
	if limit <= 0 {
		return seq
	}
	return func(yield func(T, error) bool) {
		taken := 0
		for v, err := range seq {
			if !yield(v, err) || err != nil {
				return
			}
			taken++
			if taken >= limit {
				return
			}
		}
	}
}
