package allotment

import (
	"context"
	"fmt"
	"time"

	"github.com/timekeeper/timekeeper/internal/event_bus"
	"github.com/timekeeper/timekeeper/pkg/project"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidMonth is returned when a month key does not parse as YYYY-MM.
var ErrInvalidMonth = fmt.Errorf("month must be formatted YYYY-MM")

type Service interface {
	Set(ctx context.Context, override MonthAllotment) (MonthAllotment, error)
	ListForProject(ctx context.Context, projectId int) ([]MonthAllotment, error)
	Delete(ctx context.Context, projectId int, month string) error
}

type ServiceImpl struct {
	repo     Repo
	projects project.Repo
	bus      *event_bus.EventBus
}

func NewService(repo Repo, projects project.Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, projects: projects, bus: bus}
}

func (s *ServiceImpl) Set(ctx context.Context, override MonthAllotment) (MonthAllotment, error) {
	if _, err := time.Parse("2006-01", override.Month); err != nil {
		return MonthAllotment{}, ErrInvalidMonth
	}
	if _, err := s.projects.Get(ctx, override.ProjectID); err != nil {
		return MonthAllotment{}, err
	}

	if err := s.repo.Upsert(ctx, override); err != nil {
		return MonthAllotment{}, fmt.Errorf("failed to store month allotment: %w", err)
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.AllotmentOverridden, event_bus.AllotmentOverriddenData{
		ProjectId: override.ProjectID,
		Month:     override.Month,
		Hours:     override.AllottedHours,
	})); err != nil {
		log.Warnf("failed to publish allotment overridden event: %v", err)
	}

	return override, nil
}

func (s *ServiceImpl) ListForProject(ctx context.Context, projectId int) ([]MonthAllotment, error) {
	if _, err := s.projects.Get(ctx, projectId); err != nil {
		return nil, err
	}
	return s.repo.ListForProject(ctx, projectId)
}

func (s *ServiceImpl) Delete(ctx context.Context, projectId int, month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return ErrInvalidMonth
	}
	deleted, err := s.repo.Delete(ctx, projectId, month)
	if err != nil {
		return fmt.Errorf("failed to delete month allotment: %w", err)
	}
	if !deleted {
		log.Debugf("no allotment override to delete for project %d month %s", projectId, month)
	}
	return nil
}
