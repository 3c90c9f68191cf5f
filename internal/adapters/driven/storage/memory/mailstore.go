package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
)

// Ensure MailStore implements the interface.
var _ driven.MailClient = (*MailStore)(nil)

// System labels hidden from searches unless IncludeSpamTrash is set.
const (
	LabelSpam  = "SPAM"
	LabelTrash = "TRASH"
)

// MailStore is an in-memory implementation of driven.MailClient.
// Queries match case-insensitively against the snippet and header values.
type MailStore struct {
	mu       sync.RWMutex
	messages []domain.Message
	labels   []domain.Label
	pageSize int
}

// NewMailStore creates a new in-memory mailbox returning at most pageSize
// messages per page.
func NewMailStore(pageSize int) *MailStore {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &MailStore{pageSize: pageSize}
}

// AddMessage stores a message.
func (s *MailStore) AddMessage(m domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

// AddLabel stores a label.
func (s *MailStore) AddLabel(l domain.Label) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = append(s.labels, l)
}

// ListMessages returns one page of messages matching query.
func (s *MailStore) ListMessages(
	_ context.Context, query, cursor string, opts domain.SearchOptions,
) (domain.Page[domain.Message], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Message
	for _, m := range s.messages {
		if !opts.IncludeSpamTrash &&
			(slices.Contains(m.LabelIDs, LabelSpam) || slices.Contains(m.LabelIDs, LabelTrash)) {
			continue
		}
		if !hasAll(m.LabelIDs, opts.LabelIDs) || !matchesText(m, query) {
			continue
		}
		matches = append(matches, domain.Message{ID: m.ID, ThreadID: m.ThreadID})
	}

	size := s.pageSize
	if opts.PageSize > 0 && int(opts.PageSize) < size {
		size = int(opts.PageSize)
	}
	return pageOf(matches, cursor, size)
}

// GetMessage returns a copy of a message trimmed to the requested format.
func (s *MailStore) GetMessage(_ context.Context, id string, opts domain.MessageOptions) (*domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}
	m := s.messages[i]
	out := domain.Message{
		ID:           m.ID,
		ThreadID:     m.ThreadID,
		LabelIDs:     slices.Clone(m.LabelIDs),
		Snippet:      m.Snippet,
		HistoryID:    m.HistoryID,
		InternalDate: m.InternalDate,
	}

	switch opts.Format {
	case domain.MessageFormatMinimal:
	case domain.MessageFormatRaw:
		out.Raw = slices.Clone(m.Raw)
	case domain.MessageFormatMetadata:
		out.Headers = make(map[string]string)
		for k, v := range m.Headers {
			if len(opts.MetadataHeaders) == 0 || slices.Contains(opts.MetadataHeaders, k) {
				out.Headers[k] = v
			}
		}
	default:
		out.Headers = make(map[string]string, len(m.Headers))
		for k, v := range m.Headers {
			out.Headers[k] = v
		}
	}
	return &out, nil
}

// ListLabels returns all labels.
func (s *MailStore) ListLabels(_ context.Context) ([]domain.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.labels), nil
}

// ModifyLabels adds and removes label IDs on a message. Unknown label IDs
// are rejected with domain.ErrNotFound.
func (s *MailStore) ModifyLabels(_ context.Context, messageID string, add, remove []string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(messageID)
	if i < 0 {
		return nil, fmt.Errorf("message %s: %w", messageID, domain.ErrNotFound)
	}
	for _, id := range add {
		if !s.hasLabel(id) {
			return nil, fmt.Errorf("label %s: %w", id, domain.ErrNotFound)
		}
	}

	m := &s.messages[i]
	m.LabelIDs = slices.DeleteFunc(m.LabelIDs, func(id string) bool {
		return slices.Contains(remove, id)
	})
	for _, id := range add {
		if !slices.Contains(m.LabelIDs, id) {
			m.LabelIDs = append(m.LabelIDs, id)
		}
	}
	return &domain.Message{ID: m.ID, ThreadID: m.ThreadID, LabelIDs: slices.Clone(m.LabelIDs)}, nil
}

// indexOf finds a message by ID (caller must hold lock).
func (s *MailStore) indexOf(id string) int {
	return slices.IndexFunc(s.messages, func(m domain.Message) bool { return m.ID == id })
}

// hasLabel reports whether a label ID exists (caller must hold lock).
func (s *MailStore) hasLabel(id string) bool {
	return slices.ContainsFunc(s.labels, func(l domain.Label) bool { return l.ID == id })
}

func hasAll(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

func matchesText(m domain.Message, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(m.Snippet), q) {
		return true
	}
	for _, v := range m.Headers {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}
