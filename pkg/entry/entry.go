package entry

// DayEntry is the hours logged against one project on one calendar date.
// At most one entry exists per (project, date); hours may be zero or negative.
type DayEntry struct {
	ProjectID int
	// Date is the calendar date, formatted YYYY-MM-DD.
	Date  string
	Hours float64
}
