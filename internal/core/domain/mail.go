package domain

// Message is a Gmail message as returned by list or get calls.
// List results carry only ID and ThreadID.
type Message struct {
	ID           string            `json:"id" yaml:"id"`
	ThreadID     string            `json:"thread_id,omitempty" yaml:"thread_id,omitempty"`
	LabelIDs     []string          `json:"label_ids,omitempty" yaml:"label_ids,omitempty"`
	Snippet      string            `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	HistoryID    uint64            `json:"history_id,omitempty" yaml:"history_id,omitempty"`
	InternalDate int64             `json:"internal_date,omitempty" yaml:"internal_date,omitempty"`
	Headers      map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	// Raw is the RFC 2822 message, set only for the "raw" format.
	Raw []byte `json:"-" yaml:"-"`
}

// Header returns the named header value, if it was requested.
func (m *Message) Header(name string) string {
	if m.Headers == nil {
		return ""
	}
	return m.Headers[name]
}

// Label is a Gmail label.
type Label struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// FindLabel returns the first label with the given name.
func FindLabel(labels []Label, name string) (Label, bool) {
	for _, l := range labels {
		if l.Name == name {
			return l, true
		}
	}
	return Label{}, false
}

// SearchOptions narrows a message search.
type SearchOptions struct {
	// LabelIDs restricts results to messages carrying all of these labels.
	LabelIDs []string
	// IncludeSpamTrash includes messages from SPAM and TRASH.
	IncludeSpamTrash bool
	// PageSize is the number of messages requested per page (0 = provider default).
	PageSize int64
}

// Message formats accepted by MessageOptions.Format.
const (
	MessageFormatMinimal  = "minimal"
	MessageFormatMetadata = "metadata"
	MessageFormatFull     = "full"
	MessageFormatRaw      = "raw"
)

// MessageOptions controls how much of a message is fetched.
type MessageOptions struct {
	// Format is one of the MessageFormat constants. Empty means "full".
	Format string
	// MetadataHeaders limits headers returned with the "metadata" format.
	MetadataHeaders []string
}
