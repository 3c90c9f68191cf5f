package services

import (
	"context"
	"fmt"
	"iter"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
	"github.com/custodia-labs/gsuites/internal/core/ports/driving"
)

// Ensure MailService implements the interface.
var _ driving.MailService = (*MailService)(nil)

// MailService implements mailbox operations over a mail client.
type MailService struct {
	client driven.MailClient
}

// NewMailService creates a new mail service.
func NewMailService(client driven.MailClient) *MailService {
	return &MailService{client: client}
}

// Search lazily enumerates messages matching query.
func (s *MailService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) iter.Seq2[domain.Message, error] {
	return Paginate(ctx, func(ctx context.Context, cursor string) (domain.Page[domain.Message], error) {
		return s.client.ListMessages(ctx, query, cursor, opts)
	})
}

// GetMessage fetches one message.
func (s *MailService) GetMessage(
	ctx context.Context, id string, opts domain.MessageOptions,
) (*domain.Message, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.client.GetMessage(ctx, id, opts)
}

// GetMessages fetches each message in turn. The first failure aborts.
func (s *MailService) GetMessages(
	ctx context.Context, ids []string, opts domain.MessageOptions,
) ([]domain.Message, error) {
	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		msg, err := s.GetMessage(ctx, id, opts)
		if err != nil {
			return nil, fmt.Errorf("get message %s: %w", id, err)
		}
		messages = append(messages, *msg)
	}
	return messages, nil
}

// Labels returns all labels of the mailbox.
func (s *MailService) Labels(ctx context.Context) ([]domain.Label, error) {
	return s.client.ListLabels(ctx)
}

// AddLabel applies the label named labelName to a message.
func (s *MailService) AddLabel(ctx context.Context, messageID, labelName string) (*domain.Message, error) {
	if messageID == "" || labelName == "" {
		return nil, domain.ErrInvalidInput
	}

	labels, err := s.client.ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	label, ok := domain.FindLabel(labels, labelName)
	if !ok {
		return nil, fmt.Errorf("label %q: %w", labelName, domain.ErrNotFound)
	}

	msg, err := s.client.ModifyLabels(ctx, messageID, []string{label.ID}, nil)
	if err != nil {
		return nil, fmt.Errorf("label message %s: %w", messageID, err)
	}
	return msg, nil
}
