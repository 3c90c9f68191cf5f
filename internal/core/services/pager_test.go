package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

func threePages() *pageScript[string] {
	return &pageScript[string]{
		pages: map[string]domain.Page[string]{
			"":   {Items: []string{"a", "b"}, NextCursor: "p2"},
			"p2": {Items: []string{"c"}, NextCursor: "p3"},
			"p3": {Items: []string{"d", "e"}},
		},
	}
}

func TestPaginate_YieldsAllPagesInOrder(t *testing.T) {
	script := threePages()

	items, err := Collect(Paginate(context.Background(), script.fetch))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
	assert.Equal(t, []string{"", "p2", "p3"}, script.requests)
}

func TestPaginate_EmptyListing(t *testing.T) {
	script := &pageScript[string]{pages: map[string]domain.Page[string]{"": {}}}

	items, err := Collect(Paginate(context.Background(), script.fetch))

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Len(t, script.requests, 1)
}

func TestPaginate_EmptyMiddlePage(t *testing.T) {
	script := &pageScript[string]{
		pages: map[string]domain.Page[string]{
			"":   {Items: []string{"a"}, NextCursor: "p2"},
			"p2": {NextCursor: "p3"},
			"p3": {Items: []string{"b"}},
		},
	}

	items, err := Collect(Paginate(context.Background(), script.fetch))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)
}

func TestPaginate_IsLazy(t *testing.T) {
	script := threePages()

	var got []string
	for item, err := range Paginate(context.Background(), script.fetch) {
		require.NoError(t, err)
		got = append(got, item)
		if item == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, []string{""}, script.requests, "second page must not be fetched")
}

func TestPaginate_NotRestartedAcrossRanges(t *testing.T) {
	script := threePages()
	seq := Paginate(context.Background(), script.fetch)

	first, err := Collect(seq)
	require.NoError(t, err)
	second, err := Collect(seq)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, script.requests, 6, "each range issues a fresh listing")
}

func TestPaginate_ErrorAbortsEnumeration(t *testing.T) {
	boom := &domain.TransportError{Op: "files.list", StatusCode: 503, Err: errors.New("unavailable")}
	script := threePages()
	script.errAt = map[string]error{"p2": boom}

	var got []string
	var gotErr error
	for item, err := range Paginate(context.Background(), script.fetch) {
		if err != nil {
			gotErr = err
			continue
		}
		got = append(got, item)
	}

	assert.Equal(t, []string{"a", "b"}, got)
	assert.ErrorIs(t, gotErr, domain.ErrTransport)
	assert.Equal(t, []string{"", "p2"}, script.requests, "no fetch after the error")
}

func TestPaginate_StaleCursor(t *testing.T) {
	script := &pageScript[string]{
		pages: map[string]domain.Page[string]{
			"":    {Items: []string{"a"}, NextCursor: "tok"},
			"tok": {Items: []string{"b"}, NextCursor: "tok"},
		},
	}

	items, err := Collect(Paginate(context.Background(), script.fetch))

	assert.ErrorIs(t, err, domain.ErrStaleCursor)
	assert.Nil(t, items)
	assert.Equal(t, []string{"", "tok"}, script.requests)
}

func TestPaginate_CursorCycle(t *testing.T) {
	script := &pageScript[string]{
		pages: map[string]domain.Page[string]{
			"":  {Items: []string{"a"}, NextCursor: "A"},
			"A": {Items: []string{"b"}, NextCursor: "B"},
			"B": {Items: []string{"c"}, NextCursor: "A"},
		},
	}

	var got []string
	var gotErr error
	for item, err := range Paginate(context.Background(), script.fetch) {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, item)
	}

	assert.ErrorIs(t, gotErr, domain.ErrStaleCursor)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, []string{"", "A", "B"}, script.requests)
}

func TestPaginate_ContextCancelledBetweenPages(t *testing.T) {
	script := threePages()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []string
	var gotErr error
	for item, err := range Paginate(ctx, script.fetch) {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, item)
		if item == "b" {
			cancel()
		}
	}

	assert.Equal(t, []string{"a", "b"}, got)
	assert.ErrorIs(t, gotErr, context.Canceled)
	assert.Equal(t, []string{""}, script.requests)
}

func TestFirst(t *testing.T) {
	script := threePages()

	item, found, err := First(Paginate(context.Background(), script.fetch))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a", item)
	assert.Len(t, script.requests, 1)

	empty := &pageScript[string]{pages: map[string]domain.Page[string]{"": {}}}
	_, found, err = First(Paginate(context.Background(), empty.fetch))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTake(t *testing.T) {
	script := threePages()

	items, err := Collect(Take(Paginate(context.Background(), script.fetch), 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
	assert.Equal(t, []string{"", "p2"}, script.requests)

	all, err := Collect(Take(Paginate(context.Background(), threePages().fetch), 0))
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
