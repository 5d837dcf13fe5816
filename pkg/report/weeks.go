package report

import (
	"fmt"
	"time"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// MonthWindows partitions a month into the ordered sequence of Sunday-aligned
// 7-day windows covering every day of it. The first window starts on the
// Sunday on or before the 1st; windows are emitted every 7 days until one
// starts past the month's last day, so boundary windows spill into the
// adjacent months rather than being truncated.
func MonthWindows(month string) ([]WeekWindow, error) {
	first, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}
	// Last day via the first of the following month, which also handles the
	// December to January rollover.
	monthEnd := first.AddDate(0, 1, 0).AddDate(0, 0, -1)

	baseStart := first.AddDate(0, 0, -int(first.Weekday()))

	windows := make([]WeekWindow, 0, 6)
	for start, index := baseStart, 1; !start.After(monthEnd); start, index = start.AddDate(0, 0, 7), index+1 {
		windows = append(windows, WeekWindow{
			Index:     index,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 6),
		})
	}
	return windows, nil
}
