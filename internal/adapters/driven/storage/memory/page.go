package memory

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// pageOf slices items at a numeric offset cursor.
func pageOf[T any](items []T, cursor string, size int) (domain.Page[T], error) {
	offset := 0
	if cursor != "" {
		var err error
		offset, err = strconv.Atoi(cursor)
		if err != nil || offset < 0 {
			return domain.Page[T]{}, fmt.Errorf("cursor %q: %w", cursor, domain.ErrInvalidInput)
		}
	}
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + size
	page := domain.Page[T]{}
	if end < len(items) {
		page.NextCursor = strconv.Itoa(end)
	} else {
		end = len(items)
	}
	page.Items = append([]T(nil), items[offset:end]...)
	return page, nil
}
