package entry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timekeeper/timekeeper/internal/test_utils"
	"github.com/timekeeper/timekeeper/pkg/project"
)

var ctx = context.Background()

func setupRepoTest(t *testing.T) (*RepoImpl, int) {
	db := test_utils.SetupTestDB(t)
	projectId, err := project.NewRepo(db).Store(ctx, project.Project{Code: "PRJ-1001", AllottedHours: 40})
	require.NoError(t, err)
	return NewRepo(db), projectId
}

func TestRepoImpl_Upsert(t *testing.T) {
	t.Run("should store a new entry", func(t *testing.T) {
		// given
		repo, projectId := setupRepoTest(t)

		// when
		err := repo.Upsert(ctx, DayEntry{ProjectID: projectId, Date: "2024-03-01", Hours: 8})

		// then
		require.NoError(t, err)
		entries, err := repo.ListForMonth(ctx, "2024-03")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 8.0, entries[0].Hours)
	})

	t.Run("should replace the hours for the same date instead of duplicating", func(t *testing.T) {
		// given
		repo, projectId := setupRepoTest(t)
		require.NoError(t, repo.Upsert(ctx, DayEntry{ProjectID: projectId, Date: "2024-03-01", Hours: 8}))

		// when
		err := repo.Upsert(ctx, DayEntry{ProjectID: projectId, Date: "2024-03-01", Hours: 2.5})

		// then
		require.NoError(t, err)
		entries, err := repo.ListForMonth(ctx, "2024-03")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 2.5, entries[0].Hours)
	})

	t.Run("should fail for an unknown project", func(t *testing.T) {
		// given
		repo, _ := setupRepoTest(t)

		// when
		err := repo.Upsert(ctx, DayEntry{ProjectID: 12345, Date: "2024-03-01", Hours: 8})

		// then
		assert.Error(t, err)
	})
}

func TestRepoImpl_ListForMonth(t *testing.T) {
	t.Run("should only return entries of the requested month", func(t *testing.T) {
		// given
		repo, projectId := setupRepoTest(t)
		require.NoError(t, repo.Upsert(ctx, DayEntry{ProjectID: projectId, Date: "2024-02-29", Hours: 3}))
		require.NoError(t, repo.Upsert(ctx, DayEntry{ProjectID: projectId, Date: "2024-03-01", Hours: 8}))
		require.NoError(t, repo.Upsert(ctx, DayEntry{ProjectID: projectId, Date: "2024-04-01", Hours: 5}))

		// when
		entries, err := repo.ListForMonth(ctx, "2024-03")

		// then
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "2024-03-01", entries[0].Date)
	})

	t.Run("should return an empty slice for a month without entries", func(t *testing.T) {
		// given
		repo, _ := setupRepoTest(t)

		// when
		entries, err := repo.ListForMonth(ctx, "2024-03")

		// then
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
