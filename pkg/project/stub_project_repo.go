package project

import (
	"context"
	"sort"
	"strings"
)

type StubRepo struct {
	nextId int
	data   map[int]Project
	// MonthOverrides maps projectId -> month -> override hours, consulted by
	// ListWithMonthAllotment the way the SQL LEFT JOIN is.
	MonthOverrides map[int]map[string]float64
}

func NewStubRepo() *StubRepo {
	return &StubRepo{
		data:           map[int]Project{},
		MonthOverrides: map[int]map[string]float64{},
	}
}

func (s *StubRepo) Store(ctx context.Context, project Project) (int, error) {
	s.nextId++
	project.ID = s.nextId
	s.data[project.ID] = project
	return project.ID, nil
}

func (s *StubRepo) Get(ctx context.Context, id int) (Project, error) {
	project, ok := s.data[id]
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return project, nil
}

func (s *StubRepo) GetAll(ctx context.Context) ([]Project, error) {
	projects := make([]Project, 0, len(s.data))
	for _, project := range s.data {
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (s *StubRepo) FindByCode(ctx context.Context, code string) (Project, error) {
	for _, project := range s.data {
		if project.Code == code {
			return project, nil
		}
	}
	return Project{}, ErrProjectNotFound
}

func (s *StubRepo) UpdateCode(ctx context.Context, id int, code string) (bool, error) {
	project, ok := s.data[id]
	if !ok {
		return false, nil
	}
	project.Code = code
	s.data[id] = project
	return true, nil
}

func (s *StubRepo) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	delete(s.MonthOverrides, id)
	return true, nil
}

func (s *StubRepo) Count(ctx context.Context) (int, error) {
	return len(s.data), nil
}

func (s *StubRepo) ListWithMonthAllotment(ctx context.Context, month string) ([]MonthlyAllotment, error) {
	allotments := make([]MonthlyAllotment, 0, len(s.data))
	for _, project := range s.data {
		hours := project.AllottedHours
		if override, ok := s.MonthOverrides[project.ID][month]; ok {
			hours = override
		}
		allotments = append(allotments, MonthlyAllotment{
			ProjectID:     project.ID,
			Code:          project.Code,
			AllottedHours: hours,
		})
	}
	sort.Slice(allotments, func(i, j int) bool {
		return strings.Compare(allotments[i].Code, allotments[j].Code) < 0
	})
	return allotments, nil
}
