package gmail

import (
	"encoding/base64"
	"strings"

	"google.golang.org/api/gmail/v1"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// messageToDomain converts a Gmail message. For the "raw" format the
// base64url-encoded RFC 2822 body is decoded into Raw.
func messageToDomain(msg *gmail.Message) *domain.Message {
	if msg == nil {
		return nil
	}
	out := &domain.Message{
		ID:           msg.Id,
		ThreadID:     msg.ThreadId,
		LabelIDs:     msg.LabelIds,
		Snippet:      msg.Snippet,
		HistoryID:    msg.HistoryId,
		InternalDate: msg.InternalDate,
		Headers:      extractHeaders(msg.Payload),
	}
	if msg.Raw != "" {
		out.Raw = decodeRaw(msg.Raw)
	}
	return out
}

// extractHeaders collects top-level payload headers. The first value wins
// for repeated names such as Received.
func extractHeaders(part *gmail.MessagePart) map[string]string {
	if part == nil || len(part.Headers) == 0 {
		return nil
	}
	headers := make(map[string]string, len(part.Headers))
	for _, h := range part.Headers {
		if _, seen := headers[h.Name]; !seen {
			headers[h.Name] = h.Value
		}
	}
	return headers
}

// decodeRaw accepts padded and unpadded base64url.
func decodeRaw(s string) []byte {
	if b, err := base64.URLEncoding.DecodeString(s); err == nil {
		return b
	}
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil
	}
	return b
}

func labelToDomain(l *gmail.Label) domain.Label {
	return domain.Label{ID: l.Id, Name: l.Name, Type: l.Type}
}
