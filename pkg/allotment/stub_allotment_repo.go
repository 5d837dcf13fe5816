package allotment

import (
	"context"
	"sort"
)

type StubRepo struct {
	data map[int]map[string]float64
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[int]map[string]float64{}}
}

func (s *StubRepo) Upsert(ctx context.Context, override MonthAllotment) error {
	if s.data[override.ProjectID] == nil {
		s.data[override.ProjectID] = map[string]float64{}
	}
	s.data[override.ProjectID][override.Month] = override.AllottedHours
	return nil
}

func (s *StubRepo) ListForProject(ctx context.Context, projectId int) ([]MonthAllotment, error) {
	overrides := make([]MonthAllotment, 0, len(s.data[projectId]))
	for month, hours := range s.data[projectId] {
		overrides = append(overrides, MonthAllotment{ProjectID: projectId, Month: month, AllottedHours: hours})
	}
	sort.Slice(overrides, func(i, j int) bool { return overrides[i].Month > overrides[j].Month })
	return overrides, nil
}

func (s *StubRepo) Delete(ctx context.Context, projectId int, month string) (bool, error) {
	if _, ok := s.data[projectId][month]; !ok {
		return false, nil
	}
	delete(s.data[projectId], month)
	return true, nil
}
