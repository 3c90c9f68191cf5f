package driven

import (
	"context"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// MailClient gives page-level access to one mailbox.
type MailClient interface {
	// ListMessages returns one page of messages matching query.
	// Listed messages carry only ID and ThreadID.
	ListMessages(ctx context.Context, query, cursor string, opts domain.SearchOptions) (domain.Page[domain.Message], error)

	// GetMessage fetches a single message.
	GetMessage(ctx context.Context, id string, opts domain.MessageOptions) (*domain.Message, error)

	// ListLabels returns all labels of the mailbox. The API is not paginated.
	ListLabels(ctx context.Context) ([]domain.Label, error)

	// ModifyLabels adds and removes label IDs on a message.
	ModifyLabels(ctx context.Context, messageID string, add, remove []string) (*domain.Message, error)
}
