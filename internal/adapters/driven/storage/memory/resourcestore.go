package memory

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
)

// Ensure ResourceStore implements the interface.
var _ driven.ResourceClient = (*ResourceStore)(nil)

// DefaultPageSize is the page size of a ResourceStore built with a size of 0.
const DefaultPageSize = 100

// ResourceStore is an in-memory implementation of driven.ResourceClient.
// It understands the query subset produced by domain.ChildQuery and pages
// results in insertion order with numeric offset cursors.
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[string]domain.Resource
	content   map[string][]byte
	order     []string
	nextID    int
	pageSize  int
	now       func() time.Time
}

// NewResourceStore creates a new in-memory resource store returning at most
// pageSize items per page.
func NewResourceStore(pageSize int) *ResourceStore {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &ResourceStore{
		resources: make(map[string]domain.Resource),
		content:   make(map[string][]byte),
		pageSize:  pageSize,
		now:       time.Now,
	}
}

// Seed stores a resource as if it already existed remotely. An empty ID is
// assigned. The stored resource is returned.
func (s *ResourceStore) Seed(r domain.Resource) domain.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(r)
}

// Get returns a stored resource by ID.
func (s *ResourceStore) Get(id string) (domain.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.resources[id]
	return r, ok
}

// Content returns the content uploaded for a resource.
func (s *ResourceStore) Content(id string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content[id]
}

// Len returns the number of stored resources.
func (s *ResourceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.resources)
}

// List returns one page of resources matching query.
func (s *ResourceStore) List(
	_ context.Context, kind driven.ResourceKind, query, cursor string, _ []string,
) (domain.Page[domain.Resource], error) {
	if err := checkKind(kind); err != nil {
		return domain.Page[domain.Resource]{}, err
	}
	f, err := parseQuery(query)
	if err != nil {
		return domain.Page[domain.Resource]{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Resource
	for _, id := range s.order {
		r, ok := s.resources[id]
		if ok && f.match(r) {
			matches = append(matches, r)
		}
	}
	return pageOf(matches, cursor, s.pageSize)
}

// Create stores a new resource built from body.
func (s *ResourceStore) Create(_ context.Context, kind driven.ResourceKind, body domain.Resource) (domain.Resource, error) {
	if err := checkKind(kind); err != nil {
		return domain.Resource{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	body.ID = ""
	return s.insert(body), nil
}

// Update patches the non-zero fields of body onto a stored resource.
func (s *ResourceStore) Update(
	_ context.Context, kind driven.ResourceKind, id string, body domain.Resource,
) (domain.Resource, error) {
	if err := checkKind(kind); err != nil {
		return domain.Resource{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patch(id, body)
}

// Delete removes a stored resource.
func (s *ResourceStore) Delete(_ context.Context, kind driven.ResourceKind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.resources[id]; !ok {
		return fmt.Errorf("resource %s: %w", id, domain.ErrNotFound)
	}
	delete(s.resources, id)
	delete(s.content, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	return nil
}

// Upload stores content for a new (empty id) or existing resource.
func (s *ResourceStore) Upload(
	_ context.Context, kind driven.ResourceKind, id string, content io.Reader, mimeType string, body domain.Resource,
) (domain.Resource, error) {
	if err := checkKind(kind); err != nil {
		return domain.Resource{}, err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("read content: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var r domain.Resource
	if id == "" {
		body.ID = ""
		if body.MimeType == "" {
			body.MimeType = mimeType
		}
		r = s.insert(body)
	} else {
		r, err = s.patch(id, body)
		if err != nil {
			return domain.Resource{}, err
		}
	}
	r.Size = int64(len(data))
	s.resources[r.ID] = r
	s.content[r.ID] = data
	return r, nil
}

// insert assigns an ID if needed and stores r (caller must hold lock).
func (s *ResourceStore) insert(r domain.Resource) domain.Resource {
	if r.ID == "" {
		s.nextID++
		r.ID = "mem-" + strconv.Itoa(s.nextID)
	}
	if r.ModifiedTime == "" {
		r.ModifiedTime = s.now().UTC().Format(time.RFC3339)
	}
	r.Parents = append([]string(nil), r.Parents...)
	if _, exists := s.resources[r.ID]; !exists {
		s.order = append(s.order, r.ID)
	}
	s.resources[r.ID] = r
	return r
}

// patch applies the non-zero fields of body (caller must hold lock).
func (s *ResourceStore) patch(id string, body domain.Resource) (domain.Resource, error) {
	r, ok := s.resources[id]
	if !ok {
		return domain.Resource{}, fmt.Errorf("resource %s: %w", id, domain.ErrNotFound)
	}
	if body.Name != "" {
		r.Name = body.Name
	}
	if body.MimeType != "" {
		r.MimeType = body.MimeType
	}
	if len(body.Parents) > 0 {
		r.Parents = append([]string(nil), body.Parents...)
	}
	if body.Trashed {
		r.Trashed = true
	}
	if body.ModifiedTime != "" {
		r.ModifiedTime = body.ModifiedTime
	} else {
		r.ModifiedTime = s.now().UTC().Format(time.RFC3339)
	}
	s.resources[id] = r
	return r, nil
}

func checkKind(kind driven.ResourceKind) error {
	if kind != driven.KindFile {
		return fmt.Errorf("resource kind %q: %w", kind, domain.ErrInvalidInput)
	}
	return nil
}

// filter is a parsed query. Nil fields are unconstrained.
type filter struct {
	name     *string
	mimeType *string
	parent   *string
	trashed  *bool
}

func (f filter) match(r domain.Resource) bool {
	if f.name != nil && r.Name != *f.name {
		return false
	}
	if f.mimeType != nil && r.MimeType != *f.mimeType {
		return false
	}
	if f.parent != nil && !r.HasParent(*f.parent) {
		return false
	}
	if f.trashed != nil && r.Trashed != *f.trashed {
		return false
	}
	return true
}

// parseQuery understands clauses joined by "and":
// name = '..', mimeType = '..', '..' in parents, trashed = true|false.
func parseQuery(query string) (filter, error) {
	var f filter
	if strings.TrimSpace(query) == "" {
		return f, nil
	}
	for _, clause := range splitClauses(query) {
		clause = strings.TrimSpace(clause)
		if lit, ok := strings.CutSuffix(clause, " in parents"); ok {
			v, err := unquote(strings.TrimSpace(lit))
			if err != nil {
				return f, err
			}
			f.parent = &v
			continue
		}

		field, value, ok := strings.Cut(clause, "=")
		if !ok {
			return f, fmt.Errorf("unsupported query clause %q: %w", clause, domain.ErrInvalidInput)
		}
		field, value = strings.TrimSpace(field), strings.TrimSpace(value)
		switch field {
		case "name", "mimeType":
			v, err := unquote(value)
			if err != nil {
				return f, err
			}
			if field == "name" {
				f.name = &v
			} else {
				f.mimeType = &v
			}
		case "trashed":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return f, fmt.Errorf("trashed value %q: %w", value, domain.ErrInvalidInput)
			}
			f.trashed = &b
		default:
			return f, fmt.Errorf("unsupported query field %q: %w", field, domain.ErrInvalidInput)
		}
	}
	return f, nil
}

// splitClauses splits on " and " outside quoted literals.
func splitClauses(query string) []string {
	var clauses []string
	var cur strings.Builder
	inQuote, escaped := false, false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inQuote:
			escaped = true
		case c == '\'':
			inQuote = !inQuote
		case !inQuote && strings.HasPrefix(query[i:], " and "):
			clauses = append(clauses, cur.String())
			cur.Reset()
			i += len(" and ") - 1
			continue
		}
		cur.WriteByte(c)
	}
	return append(clauses, cur.String())
}

// unquote strips the quotes of a literal and reverses domain.EscapeQuery.
func unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return "", fmt.Errorf("expected quoted literal, got %q: %w", lit, domain.ErrInvalidInput)
	}
	var b strings.Builder
	body := lit[1 : len(lit)-1]
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
		}
		b.WriteByte(body[i])
	}
	return b.String(), nil
}
