package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsuites/internal/connectors/google/gmail"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/services"
)

// summaryHeaders are fetched for each search hit unless --ids-only is set.
var summaryHeaders = []string{"From", "Subject", "Date"}

var (
	gmailLimit            int
	gmailLabelIDs         []string
	gmailIncludeSpamTrash bool
	gmailIDsOnly          bool
	gmailFormat           string
)

var gmailCmd = &cobra.Command{
	Use:   "gmail",
	Short: "Search and label Gmail messages",
}

var gmailSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search messages with Gmail query syntax",
	Long: `Search messages with Gmail query syntax, following every result page.
Sender, subject and date are fetched for each hit unless --ids-only is set.

Example:
  gsuites gmail search "from:billing@example.com newer_than:7d" --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runGmailSearch,
}

var gmailGetCmd = &cobra.Command{
	Use:   "get ID...",
	Short: "Fetch messages by ID",
	Long: `Fetch messages by ID. With --format raw and a single ID the RFC 2822
message is written to stdout as is.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGmailGet,
}

var gmailLabelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List mailbox labels",
	Args:  cobra.NoArgs,
	RunE:  runGmailLabels,
}

var gmailLabelCmd = &cobra.Command{
	Use:   "label MESSAGE_ID LABEL",
	Short: "Apply a label to a message by label name",
	Args:  cobra.ExactArgs(2),
	RunE:  runGmailLabel,
}

func init() {
	gmailSearchCmd.Flags().IntVarP(&gmailLimit, "limit", "n", 0, "maximum number of messages (0 = all)")
	gmailSearchCmd.Flags().StringSliceVar(&gmailLabelIDs, "label-id", nil, "only messages carrying these label IDs")
	gmailSearchCmd.Flags().BoolVar(&gmailIncludeSpamTrash, "include-spam-trash", false, "include SPAM and TRASH")
	gmailSearchCmd.Flags().BoolVar(&gmailIDsOnly, "ids-only", false, "skip fetching sender and subject")
	gmailGetCmd.Flags().StringVarP(&gmailFormat, "format", "f", domain.MessageFormatFull,
		"message format: minimal, metadata, full or raw")

	gmailCmd.AddCommand(gmailSearchCmd, gmailGetCmd, gmailLabelsCmd, gmailLabelCmd)
	rootCmd.AddCommand(gmailCmd)
}

func runGmailSearch(cmd *cobra.Command, args []string) error {
	svc, err := requireMail(cmd)
	if err != nil {
		return err
	}
	opts := domain.SearchOptions{
		LabelIDs:         gmailLabelIDs,
		IncludeSpamTrash: gmailIncludeSpamTrash,
	}
	hits, err := services.Collect(services.Take(svc.Search(cmd.Context(), args[0], opts), gmailLimit))
	if err != nil {
		return err
	}
	if gmailIDsOnly || len(hits) == 0 {
		return renderMessages(cmd, hits)
	}

	ids := make([]string, len(hits))
	for i, m := range hits {
		ids[i] = m.ID
	}
	msgs, err := svc.GetMessages(cmd.Context(), ids, domain.MessageOptions{
		Format:          domain.MessageFormatMetadata,
		MetadataHeaders: summaryHeaders,
	})
	if err != nil {
		return err
	}
	return renderMessages(cmd, msgs)
}

func runGmailGet(cmd *cobra.Command, args []string) error {
	svc, err := requireMail(cmd)
	if err != nil {
		return err
	}
	switch gmailFormat {
	case domain.MessageFormatMinimal, domain.MessageFormatMetadata, domain.MessageFormatFull, domain.MessageFormatRaw:
	default:
		return fmt.Errorf("unknown message format %q", gmailFormat)
	}

	opts := domain.MessageOptions{Format: gmailFormat}
	if gmailFormat == domain.MessageFormatRaw && len(args) == 1 {
		msg, err := svc.GetMessage(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(msg.Raw)
		return err
	}

	msgs, err := svc.GetMessages(cmd.Context(), args, opts)
	if err != nil {
		return err
	}
	return renderMessages(cmd, msgs)
}

func runGmailLabels(cmd *cobra.Command, _ []string) error {
	svc, err := requireMail(cmd)
	if err != nil {
		return err
	}
	labels, err := svc.Labels(cmd.Context())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(labels))
	for _, l := range labels {
		rows = append(rows, []string{l.ID, l.Name, l.Type})
	}
	if labels == nil {
		labels = []domain.Label{}
	}
	return render(cmd, labels, table{headers: []string{"ID", "Name", "Type"}, rows: rows})
}

func runGmailLabel(cmd *cobra.Command, args []string) error {
	svc, err := requireMail(cmd)
	if err != nil {
		return err
	}
	msg, err := svc.AddLabel(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	cmd.Println(success(fmt.Sprintf("Labelled %s with %q", msg.ID, args[1])))
	return nil
}

// messageView is the rendered shape of a message.
type messageView struct {
	domain.Message `yaml:",inline"`
	WebURL         string `json:"web_url" yaml:"web_url"`
}

func renderMessages(cmd *cobra.Command, msgs []domain.Message) error {
	views := make([]messageView, 0, len(msgs))
	rows := make([][]string, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, messageView{Message: m, WebURL: gmail.ResolveWebURL(m.ID)})
		rows = append(rows, []string{
			m.ID, m.Header("From"), m.Header("Subject"), m.Header("Date"), strings.Join(m.LabelIDs, ","),
		})
	}
	return render(cmd, views, table{
		headers: []string{"ID", "From", "Subject", "Date", "Labels"},
		rows:    rows,
	})
}
