package allotment

// MonthAllotment is a month-specific override of a project's default
// allotted hours. At most one exists per (project, month) pair.
type MonthAllotment struct {
	ProjectID int
	// Month is the month key, formatted YYYY-MM.
	Month         string
	AllottedHours float64
}
