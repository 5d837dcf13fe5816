package entry

import (
	"context"
	"sort"
	"strings"
)

type entryKey struct {
	projectId int
	date      string
}

type StubRepo struct {
	data map[entryKey]float64
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[entryKey]float64{}}
}

func (s *StubRepo) Upsert(ctx context.Context, entry DayEntry) error {
	s.data[entryKey{entry.ProjectID, entry.Date}] = entry.Hours
	return nil
}

func (s *StubRepo) ListForMonth(ctx context.Context, month string) ([]DayEntry, error) {
	entries := make([]DayEntry, 0, len(s.data))
	for key, hours := range s.data {
		if strings.HasPrefix(key.date, month+"-") {
			entries = append(entries, DayEntry{ProjectID: key.projectId, Date: key.date, Hours: hours})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ProjectID != entries[j].ProjectID {
			return entries[i].ProjectID < entries[j].ProjectID
		}
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}
