package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/services"
)

const (
	// uriScheme is the custom URI scheme for gsuites resources.
	uriScheme = "gsuites://"

	folderPrefix = uriScheme + "drive/folders/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: folderPrefix + "{folderId}",
		Name:        "drive-folder",
		Description: "Files directly inside a Drive folder (use root for My Drive)",
		MIMEType:    "application/json",
	}, s.handleFolderResource)

	if s.ports.Mail != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "gmail/labels",
			Name:        "gmail-labels",
			Description: "Labels of the mailbox",
			MIMEType:    "application/json",
		}, s.handleLabelsResource)
	}

	if s.ports.Calendar != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "calendars",
			Name:        "calendars",
			Description: "Calendars of the user",
			MIMEType:    "application/json",
		}, s.handleCalendarsResource)
	}
}

// handleFolderResource lists the non-trashed children of a folder.
func (s *Server) handleFolderResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	folderID := extractFolderID(req.Params.URI)
	if folderID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	query := domain.ChildQuery{ParentID: folderID}.String()
	fields := []string{"id", "name", "mimeType", "modifiedTime", "size"}
	files, err := services.Collect(s.ports.Drive.ListFiles(ctx, query, fields))
	if err != nil {
		return nil, fmt.Errorf("listing folder %s: %w", folderID, err)
	}
	return jsonResource(req.Params.URI, toFilesOutput(files).Files)
}

// handleLabelsResource returns the mailbox labels.
func (s *Server) handleLabelsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	labels, err := s.ports.Mail.Labels(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	if labels == nil {
		labels = []domain.Label{}
	}
	return jsonResource(req.Params.URI, labels)
}

// handleCalendarsResource returns the calendar list.
func (s *Server) handleCalendarsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	cals, err := services.Collect(s.ports.Calendar.Calendars(ctx))
	if err != nil {
		return nil, fmt.Errorf("listing calendars: %w", err)
	}
	infos := make([]CalendarOutput, len(cals))
	for i := range cals {
		infos[i] = toCalendarOutput(&cals[i])
	}
	return jsonResource(req.Params.URI, infos)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractFolderID extracts the folder ID from a URI like gsuites://drive/folders/{folderId}.
func extractFolderID(uri string) string {
	if !strings.HasPrefix(uri, folderPrefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, folderPrefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
