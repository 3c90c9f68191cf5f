package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsuites/internal/connectors/google/calendar"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/services"
)

var (
	calendarLimit int
	eventInput    domain.Event
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Work with Google Calendar calendars and events",
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the calendars of the user",
	Args:  cobra.NoArgs,
	RunE:  runCalendarList,
}

var calendarFindCmd = &cobra.Command{
	Use:   "find SUMMARY",
	Short: "Find a calendar by its exact summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarFind,
}

var calendarEventsCmd = &cobra.Command{
	Use:   "events CALENDAR_ID [QUERY]",
	Short: "List events of a calendar, optionally filtered by free text",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCalendarEvents,
}

var calendarAddCmd = &cobra.Command{
	Use:   "add CALENDAR_ID",
	Short: "Add an event to a calendar",
	Long: `Add an event to a calendar. --start and --end take RFC 3339 date-times,
or yyyy-mm-dd dates together with --all-day.

Example:
  gsuites calendar add primary --summary "Review" \
    --start 2026-10-20T10:00:00Z --end 2026-10-20T11:00:00Z`,
	Args: cobra.ExactArgs(1),
	RunE: runCalendarAdd,
}

var calendarDeleteCmd = &cobra.Command{
	Use:   "delete CALENDAR_ID EVENT_ID",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalendarDelete,
}

func init() {
	calendarEventsCmd.Flags().IntVarP(&calendarLimit, "limit", "n", 0, "maximum number of events (0 = all)")

	f := calendarAddCmd.Flags()
	f.StringVar(&eventInput.Summary, "summary", "", "event title")
	f.StringVar(&eventInput.Description, "description", "", "event description")
	f.StringVar(&eventInput.Location, "location", "", "event location")
	f.StringVar(&eventInput.Start, "start", "", "start date-time or date")
	f.StringVar(&eventInput.End, "end", "", "end date-time or date")
	f.BoolVar(&eventInput.AllDay, "all-day", false, "treat --start and --end as dates")
	f.StringVar(&eventInput.TimeZone, "time-zone", "", "IANA time zone of start and end")
	f.StringSliceVar(&eventInput.Attendees, "attendee", nil, "attendee email (repeatable)")
	_ = calendarAddCmd.MarkFlagRequired("start")
	_ = calendarAddCmd.MarkFlagRequired("end")

	calendarCmd.AddCommand(calendarListCmd, calendarFindCmd, calendarEventsCmd, calendarAddCmd, calendarDeleteCmd)
	rootCmd.AddCommand(calendarCmd)
}

func runCalendarList(cmd *cobra.Command, _ []string) error {
	svc, err := requireCalendar(cmd)
	if err != nil {
		return err
	}
	cals, err := services.Collect(svc.Calendars(cmd.Context()))
	if err != nil {
		return err
	}
	return renderCalendars(cmd, cals)
}

func runCalendarFind(cmd *cobra.Command, args []string) error {
	svc, err := requireCalendar(cmd)
	if err != nil {
		return err
	}
	cal, err := svc.FindCalendar(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return renderCalendars(cmd, []domain.Calendar{*cal})
}

func runCalendarEvents(cmd *cobra.Command, args []string) error {
	svc, err := requireCalendar(cmd)
	if err != nil {
		return err
	}
	query := ""
	if len(args) > 1 {
		query = args[1]
	}
	events, err := services.Collect(services.Take(svc.FindEvents(cmd.Context(), args[0], query), calendarLimit))
	if err != nil {
		return err
	}
	return renderEvents(cmd, args[0], events)
}

func runCalendarAdd(cmd *cobra.Command, args []string) error {
	svc, err := requireCalendar(cmd)
	if err != nil {
		return err
	}
	event, err := svc.AddEvent(cmd.Context(), args[0], eventInput)
	if err != nil {
		return err
	}
	return renderEvents(cmd, args[0], []domain.Event{*event})
}

func runCalendarDelete(cmd *cobra.Command, args []string) error {
	svc, err := requireCalendar(cmd)
	if err != nil {
		return err
	}
	if err := svc.DeleteEvent(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	cmd.Println(success("Deleted event " + args[1]))
	return nil
}

func renderCalendars(cmd *cobra.Command, cals []domain.Calendar) error {
	rows := make([][]string, 0, len(cals))
	for _, c := range cals {
		rows = append(rows, []string{c.ID, c.Summary, c.TimeZone, strconv.FormatBool(c.Primary)})
	}
	if cals == nil {
		cals = []domain.Calendar{}
	}
	return render(cmd, cals, table{headers: []string{"ID", "Summary", "Time Zone", "Primary"}, rows: rows})
}

func renderEvents(cmd *cobra.Command, calendarID string, events []domain.Event) error {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{e.ID, e.Summary, e.Start, e.End, e.Location, calendar.ResolveWebURL(calendarID, e)})
	}
	if events == nil {
		events = []domain.Event{}
	}
	return render(cmd, events, table{headers: []string{"ID", "Summary", "Start", "End", "Location", "Link"}, rows: rows})
}
