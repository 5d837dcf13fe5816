package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/timekeeper/timekeeper/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetAll(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, project Project) (Project, error)
	Rename(ctx context.Context, id int, code string) (Project, error)
	Delete(ctx context.Context, id int) error
	EnsureSeed(ctx context.Context) error
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Create(ctx context.Context, project Project) (Project, error) {
	code, err := s.checkCodeAvailable(ctx, project.Code, 0)
	if err != nil {
		return Project{}, err
	}
	project.Code = code

	id, err := s.repo.Store(ctx, project)
	if err != nil {
		return Project{}, fmt.Errorf("failed to store project: %w", err)
	}
	project.ID = id

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ProjectCreated, event_bus.ProjectCreatedData{
		Id:   project.ID,
		Code: project.Code,
	})); err != nil {
		log.Warnf("failed to publish project created event: %v", err)
	}

	return project, nil
}

func (s *ServiceImpl) Rename(ctx context.Context, id int, code string) (Project, error) {
	project, err := s.repo.Get(ctx, id)
	if err != nil {
		return Project{}, err
	}

	trimmed, err := s.checkCodeAvailable(ctx, code, id)
	if err != nil {
		return Project{}, err
	}

	updated, err := s.repo.UpdateCode(ctx, id, trimmed)
	if err != nil {
		return Project{}, fmt.Errorf("failed to rename project: %w", err)
	}
	if !updated {
		return Project{}, ErrProjectNotFound
	}
	project.Code = trimmed
	return project, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if !deleted {
		log.Warnf("project not deleted, probably because it does not exist (%d)", id)
		return ErrProjectNotFound
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ProjectDeleted, event_bus.ProjectDeletedData{Id: id})); err != nil {
		log.Warnf("failed to publish project deleted event: %v", err)
	}
	return nil
}

// EnsureSeed inserts a couple of sample project codes on first start with an
// empty table, so the weekly report is not blank out of the box.
func (s *ServiceImpl) EnsureSeed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []Project{
		{Code: "PRJ-1001", AllottedHours: 40},
		{Code: "PRJ-2002", AllottedHours: 20},
	}
	for _, seed := range seeds {
		if _, err := s.repo.Store(ctx, seed); err != nil {
			return fmt.Errorf("failed to seed project %s: %w", seed.Code, err)
		}
	}
	log.Infof("Seeded %d sample projects", len(seeds))
	return nil
}

// checkCodeAvailable trims the code and verifies it does not collide with an
// existing project other than excludeId, so a rename to the current code is a
// no-op. The UNIQUE constraint backs this check at the store level.
func (s *ServiceImpl) checkCodeAvailable(ctx context.Context, code string, excludeId int) (string, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", fmt.Errorf("project code must not be empty")
	}

	existing, err := s.repo.FindByCode(ctx, trimmed)
	if err == nil {
		if existing.ID == excludeId {
			return trimmed, nil
		}
		return "", ErrCodeTaken
	}
	if !errors.Is(err, ErrProjectNotFound) {
		return "", fmt.Errorf("failed to check code availability: %w", err)
	}
	return trimmed, nil
}
