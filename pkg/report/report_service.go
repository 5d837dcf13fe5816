package report

import (
	"context"
	"strings"

	"github.com/timekeeper/timekeeper/pkg/entry"
	"github.com/timekeeper/timekeeper/pkg/project"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// GetWeeks computes the weekly balance report for a YYYY-MM month.
	GetWeeks(ctx context.Context, month string) ([]WeekSlice, error)
}

type ServiceImpl struct {
	projects project.Repo
	entries  entry.Repo
}

func NewService(projects project.Repo, entries entry.Repo) *ServiceImpl {
	return &ServiceImpl{projects: projects, entries: entries}
}

type entryKey struct {
	projectId int
	date      string
}

// GetWeeks walks the month's week windows in order and, per project, carries
// the remaining balance forward: the allotment is resolved once per month,
// and hours consumed in one week lower the starting balance of the next.
// Everything is recomputed from storage on each call; nothing is cached.
func (s *ServiceImpl) GetWeeks(ctx context.Context, month string) ([]WeekSlice, error) {
	windows, err := MonthWindows(month)
	if err != nil {
		return nil, err
	}

	var projects []project.MonthlyAllotment
	var entries []entry.DayEntry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.projects.ListWithMonthAllotment(gctx, month)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.entries.ListForMonth(gctx, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debugf("computing weekly report for %s: %d windows, %d projects, %d entries",
		month, len(windows), len(projects), len(entries))

	hoursByKey := make(map[entryKey]float64, len(entries))
	for _, e := range entries {
		hoursByKey[entryKey{e.ProjectID, e.Date}] = e.Hours
	}

	monthPrefix := month + "-"
	// Consumption so far per project, scoped to this single computation.
	cumulative := make(map[int]float64, len(projects))

	slices := make([]WeekSlice, 0, len(windows))
	for _, window := range windows {
		rows := make([]WeekRow, 0, len(projects))
		for _, p := range projects {
			days := make(map[string]float64)
			totalInMonth := 0.0
			for offset := 0; offset < 7; offset++ {
				date := window.StartDate.AddDate(0, 0, offset).Format(dateLayout)
				// Days outside the target month stay out of both the map and
				// the total, even though the window covers them.
				if !strings.HasPrefix(date, monthPrefix) {
					continue
				}
				hours := hoursByKey[entryKey{p.ProjectID, date}]
				days[date] = hours
				totalInMonth += hours
			}

			startingBalance := p.AllottedHours - cumulative[p.ProjectID]
			remaining := startingBalance - totalInMonth
			cumulative[p.ProjectID] += totalInMonth

			rows = append(rows, WeekRow{
				ProjectID:   p.ProjectID,
				ProjectCode: p.Code,
				Allotted:    startingBalance,
				Days:        days,
				Total:       totalInMonth,
				Remaining:   remaining,
			})
		}
		slices = append(slices, WeekSlice{
			WeekIndex: window.Index,
			StartDate: window.StartDate,
			EndDate:   window.EndDate,
			Rows:      rows,
		})
	}

	return slices, nil
}
