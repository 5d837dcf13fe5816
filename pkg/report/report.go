package report

import "time"

// WeekWindow is one Sunday-to-Saturday display window of a month view.
// Windows are derived per request and never persisted.
type WeekWindow struct {
	// Index is 1-based and sequential within a month view.
	Index     int
	StartDate time.Time
	EndDate   time.Time
}

// WeekRow is one project's balance line within a week window.
type WeekRow struct {
	ProjectID   int
	ProjectCode string
	// Allotted is the starting balance for this week: the month's resolved
	// allotment minus everything consumed in prior weeks of the view. It is
	// not the raw allotment.
	Allotted float64
	// Days maps date strings to logged hours, holding only dates of this
	// window that fall within the target month.
	Days map[string]float64
	// Total is the sum of in-month hours logged this week.
	Total float64
	// Remaining is Allotted minus Total.
	Remaining float64
}

// WeekSlice is one week window together with a row per project.
type WeekSlice struct {
	WeekIndex int
	StartDate time.Time
	EndDate   time.Time
	Rows      []WeekRow
}
