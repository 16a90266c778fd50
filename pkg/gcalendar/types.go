package gcalendar

// EventDefaults carries per-deployment calendar settings applied to every
// mirrored event.
type EventDefaults struct {
	CalendarID string
	Timezone   string // e.g. "Asia/Kolkata"
}

// MilestoneEventRequest is the input for mirroring a planning milestone
// into Google Calendar as an all-day event.
type MilestoneEventRequest struct {
	CalendarID  string
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	Timezone    string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Date        string
}
