package driving

import (
	"context"
	"iter"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// MailService provides mailbox operations to external actors.
type MailService interface {
	// Search lazily enumerates messages matching a Gmail query.
	Search(ctx context.Context, query string, opts domain.SearchOptions) iter.Seq2[domain.Message, error]

	// GetMessage fetches one message.
	GetMessage(ctx context.Context, id string, opts domain.MessageOptions) (*domain.Message, error)

	// GetMessages fetches messages one by one, in the order given.
	GetMessages(ctx context.Context, ids []string, opts domain.MessageOptions) ([]domain.Message, error)

	// Labels returns all labels of the mailbox.
	Labels(ctx context.Context) ([]domain.Label, error)

	// AddLabel applies the label with the given name to a message.
	// Returns domain.ErrNotFound if no label has that name.
	AddLabel(ctx context.Context, messageID, labelName string) (*domain.Message, error)
}
