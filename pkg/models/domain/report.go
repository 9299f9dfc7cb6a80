package domain

import "time"

// Report represents one run of the alert URL generator
type Report struct {
	GeneratedAt time.Time
	Days        int
	Entries     []ReportEntry
}

// ReportEntry is a single rendered URL for one category on one day
type ReportEntry struct {
	Category Category
	Window   DateWindow
	URL      string
}

// DateWindow represents the time range covered by one report iteration
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow returns the window starting offset days before ref and ending one day later.
// Calendar arithmetic keeps the wall clock time across DST changes.
func NewDateWindow(ref time.Time, offset int) DateWindow {
	start := ref.AddDate(0, 0, -offset)
	return DateWindow{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}

// Date returns the start day formatted as YYYY-MM-DD
func (w DateWindow) Date() string {
	return w.Start.Format("2006-01-02")
}
