package gmail

import (
	"context"

	"google.golang.org/api/gmail/v1"

	"github.com/custodia-labs/gsuites/internal/connectors/google"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.MailClient = (*Client)(nil)

// Client implements driven.MailClient over the Gmail v1 API.
type Client struct {
	svc *gmail.Service
	cfg *Config
}

// NewClient creates a Gmail client. A nil cfg uses DefaultConfig.
func NewClient(svc *gmail.Service, cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Client{svc: svc, cfg: cfg}
}

// ListMessages returns one page of messages matching a Gmail search query.
func (c *Client) ListMessages(
	ctx context.Context, query, cursor string, opts domain.SearchOptions,
) (domain.Page[domain.Message], error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = c.cfg.PageSize
	}

	call := c.svc.Users.Messages.List(c.cfg.UserID).
		Context(ctx).
		MaxResults(pageSize).
		IncludeSpamTrash(opts.IncludeSpamTrash || c.cfg.IncludeSpamTrash)
	if query != "" {
		call = call.Q(query)
	}
	if cursor != "" {
		call = call.PageToken(cursor)
	}
	if len(opts.LabelIDs) > 0 {
		call = call.LabelIds(opts.LabelIDs...)
	}

	resp, err := call.Do()
	if err != nil {
		return domain.Page[domain.Message]{}, google.WrapError("messages.list", err)
	}

	page := domain.Page[domain.Message]{
		Items:      make([]domain.Message, 0, len(resp.Messages)),
		NextCursor: resp.NextPageToken,
	}
	for _, m := range resp.Messages {
		page.Items = append(page.Items, *messageToDomain(m))
	}
	return page, nil
}

// GetMessage fetches a single message in the requested format.
func (c *Client) GetMessage(ctx context.Context, id string, opts domain.MessageOptions) (*domain.Message, error) {
	call := c.svc.Users.Messages.Get(c.cfg.UserID, id).Context(ctx)
	if opts.Format != "" {
		call = call.Format(opts.Format)
	}
	if len(opts.MetadataHeaders) > 0 {
		call = call.MetadataHeaders(opts.MetadataHeaders...)
	}

	msg, err := call.Do()
	if err != nil {
		return nil, google.WrapError("messages.get", err)
	}
	return messageToDomain(msg), nil
}

// ListLabels returns all labels of the mailbox.
func (c *Client) ListLabels(ctx context.Context) ([]domain.Label, error) {
	resp, err := c.svc.Users.Labels.List(c.cfg.UserID).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError("labels.list", err)
	}
	labels := make([]domain.Label, 0, len(resp.Labels))
	for _, l := range resp.Labels {
		labels = append(labels, labelToDomain(l))
	}
	return labels, nil
}

// ModifyLabels adds and removes labels on a message.
func (c *Client) ModifyLabels(
	ctx context.Context, messageID string, add, remove []string,
) (*domain.Message, error) {
	req := &gmail.ModifyMessageRequest{
		AddLabelIds:    add,
		RemoveLabelIds: remove,
	}
	msg, err := c.svc.Users.Messages.Modify(c.cfg.UserID, messageID, req).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError("messages.modify", err)
	}
	return messageToDomain(msg), nil
}
