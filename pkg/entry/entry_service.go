package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/timekeeper/timekeeper/internal/event_bus"
	"github.com/timekeeper/timekeeper/pkg/project"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidDate is returned when a date does not parse as YYYY-MM-DD.
var ErrInvalidDate = fmt.Errorf("date must be formatted YYYY-MM-DD")

type Service interface {
	// SetDayHours upserts the hours logged for a project on a date.
	SetDayHours(ctx context.Context, entry DayEntry) (DayEntry, error)
}

type ServiceImpl struct {
	repo     Repo
	projects project.Repo
	bus      *event_bus.EventBus
}

func NewService(repo Repo, projects project.Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, projects: projects, bus: bus}
}

func (s *ServiceImpl) SetDayHours(ctx context.Context, entry DayEntry) (DayEntry, error) {
	if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return DayEntry{}, ErrInvalidDate
	}
	if _, err := s.projects.Get(ctx, entry.ProjectID); err != nil {
		return DayEntry{}, err
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return DayEntry{}, fmt.Errorf("failed to store day entry: %w", err)
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.EntryUpserted, event_bus.EntryUpsertedData{
		ProjectId: entry.ProjectID,
		Date:      entry.Date,
		Hours:     entry.Hours,
	})); err != nil {
		log.Warnf("failed to publish entry upserted event: %v", err)
	}

	return entry, nil
}
