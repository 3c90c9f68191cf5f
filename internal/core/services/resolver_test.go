package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gsuites/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/gsuites/internal/core/domain"
)

func TestResolver_CreatesWhenAbsent(t *testing.T) {
	store := memory.NewResourceStore(0)
	client := newRecordingClient(store)
	resolver := NewResolver(client)

	folder, err := resolver.ResolveOrCreate(context.Background(), "reports", "root", domain.MimeTypeFolder)

	require.NoError(t, err)
	assert.NotEmpty(t, folder.ID)
	assert.Equal(t, "reports", folder.Name)
	assert.Equal(t, []string{"root"}, folder.Parents)
	assert.Equal(t, domain.MimeTypeFolder, folder.MimeType)

	lists := client.callsOf("list")
	require.Len(t, lists, 1)
	assert.Equal(t,
		"mimeType = 'application/vnd.google-apps.folder' and name = 'reports' and 'root' in parents and trashed = false",
		lists[0].Query)
}

func TestResolver_IsIdempotent(t *testing.T) {
	client := newRecordingClient(memory.NewResourceStore(0))
	resolver := NewResolver(client)
	ctx := context.Background()

	first, err := resolver.ResolveOrCreate(ctx, "x", "p", domain.MimeTypeFolder)
	require.NoError(t, err)
	second, err := resolver.ResolveOrCreate(ctx, "x", "p", domain.MimeTypeFolder)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, client.callsOf("create"), 1)
}

func TestResolver_IgnoresOtherParentsAndTrashed(t *testing.T) {
	store := memory.NewResourceStore(0)
	store.Seed(domain.Resource{ID: "elsewhere", Name: "x", MimeType: domain.MimeTypeFolder, Parents: []string{"other"}})
	store.Seed(domain.Resource{ID: "binned", Name: "x", MimeType: domain.MimeTypeFolder, Parents: []string{"p"}, Trashed: true})
	store.Seed(domain.Resource{ID: "file", Name: "x", MimeType: "text/plain", Parents: []string{"p"}})
	client := newRecordingClient(store)

	folder, err := NewResolver(client).ResolveOrCreate(context.Background(), "x", "p", domain.MimeTypeFolder)

	require.NoError(t, err)
	assert.NotContains(t, []string{"elsewhere", "binned", "file"}, folder.ID)
	assert.Len(t, client.callsOf("create"), 1)
}

func TestResolver_FirstMatchWins(t *testing.T) {
	store := memory.NewResourceStore(0)
	store.Seed(domain.Resource{ID: "dup-1", Name: "x", MimeType: domain.MimeTypeFolder, Parents: []string{"p"}})
	store.Seed(domain.Resource{ID: "dup-2", Name: "x", MimeType: domain.MimeTypeFolder, Parents: []string{"p"}})
	client := newRecordingClient(store)

	folder, err := NewResolver(client).ResolveOrCreate(context.Background(), "x", "p", domain.MimeTypeFolder)

	require.NoError(t, err)
	assert.Equal(t, "dup-1", folder.ID)
	assert.Empty(t, client.callsOf("create"))
}

func TestResolver_StrictMode(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicates are ambiguous", func(t *testing.T) {
		store := memory.NewResourceStore(1)
		store.Seed(domain.Resource{ID: "dup-1", Name: "x", MimeType: domain.MimeTypeFolder, Parents: []string{"p"}})
		store.Seed(domain.Resource{ID: "dup-2", Name: "x", MimeType: domain.MimeTypeFolder, Parents: []string{"p"}})
		client := newRecordingClient(store)

		_, err := NewResolver(client, WithStrict(true)).ResolveOrCreate(ctx, "x", "p", domain.MimeTypeFolder)

		assert.ErrorIs(t, err, domain.ErrAmbiguousResource)
		assert.Empty(t, client.callsOf("create"))
	})

	t.Run("single match resolves", func(t *testing.T) {
		store := memory.NewResourceStore(0)
		store.Seed(domain.Resource{ID: "only", Name: "x", MimeType: domain.MimeTypeFolder, Parents: []string{"p"}})

		folder, err := NewResolver(store, WithStrict(true)).ResolveOrCreate(ctx, "x", "p", domain.MimeTypeFolder)

		require.NoError(t, err)
		assert.Equal(t, "only", folder.ID)
	})

	t.Run("no match creates", func(t *testing.T) {
		client := newRecordingClient(memory.NewResourceStore(0))

		_, err := NewResolver(client, WithStrict(true)).ResolveOrCreate(ctx, "x", "p", domain.MimeTypeFolder)

		require.NoError(t, err)
		assert.Len(t, client.callsOf("create"), 1)
	})
}

func TestResolver_InvalidInput(t *testing.T) {
	client := newRecordingClient(memory.NewResourceStore(0))
	resolver := NewResolver(client)

	_, err := resolver.ResolveOrCreate(context.Background(), "", "p", domain.MimeTypeFolder)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = resolver.ResolveOrCreate(context.Background(), "x", "", domain.MimeTypeFolder)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, client.calls)
}

func TestResolver_EscapesName(t *testing.T) {
	client := newRecordingClient(memory.NewResourceStore(0))
	resolver := NewResolver(client)
	ctx := context.Background()

	first, err := resolver.ResolveOrCreate(ctx, "it's", "root", domain.MimeTypeFolder)
	require.NoError(t, err)
	second, err := resolver.ResolveOrCreate(ctx, "it's", "root", domain.MimeTypeFolder)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Contains(t, client.callsOf("list")[0].Query, `name = 'it\'s'`)
}

func TestResolver_CreateFailurePropagates(t *testing.T) {
	client := newRecordingClient(memory.NewResourceStore(0))
	client.failCreate = "x"

	_, err := NewResolver(client).ResolveOrCreate(context.Background(), "x", "p", domain.MimeTypeFolder)

	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), `create "x" under "p"`)
}
