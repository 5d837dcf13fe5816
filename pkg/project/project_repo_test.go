package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timekeeper/timekeeper/internal/test_utils"
)

var ctx = context.Background()

func TestRepoImpl_Store(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)

	// when
	id, err := repo.Store(ctx, Project{Code: "PRJ-1001", AllottedHours: 40})

	// then
	require.NoError(t, err)
	assert.NotZero(t, id)

	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "PRJ-1001", stored.Code)
	assert.Equal(t, 40.0, stored.AllottedHours)
}

func TestRepoImpl_Store_ShouldRejectDuplicateCode(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)
	_, err := repo.Store(ctx, Project{Code: "PRJ-1001", AllottedHours: 40})
	require.NoError(t, err)

	// when
	_, err = repo.Store(ctx, Project{Code: "PRJ-1001", AllottedHours: 20})

	// then
	assert.Error(t, err)
}

func TestRepoImpl_Get_ShouldReturnNotFoundForUnknownId(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)

	// when
	_, err := repo.Get(ctx, 12345)

	// then
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestRepoImpl_FindByCode(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)
	id, err := repo.Store(ctx, Project{Code: "PRJ-1001", AllottedHours: 40})
	require.NoError(t, err)

	// when
	found, err := repo.FindByCode(ctx, "PRJ-1001")

	// then
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)

	_, err = repo.FindByCode(ctx, "PRJ-9999")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestRepoImpl_UpdateCode(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)
	id, err := repo.Store(ctx, Project{Code: "PRJ-1001", AllottedHours: 40})
	require.NoError(t, err)

	// when
	updated, err := repo.UpdateCode(ctx, id, "PRJ-1002")

	// then
	require.NoError(t, err)
	assert.True(t, updated)

	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "PRJ-1002", stored.Code)
}

func TestRepoImpl_Delete_ShouldCascadeToOverridesAndEntries(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)
	id, err := repo.Store(ctx, Project{Code: "PRJ-1001", AllottedHours: 40})
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO project_month_allotments (project_code_id, month, allotted_hours) VALUES (?, ?, ?)", id, "2024-03", 10)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO time_entries (project_code_id, entry_date, hours) VALUES (?, ?, ?)", id, "2024-03-01", 8)
	require.NoError(t, err)

	// when
	deleted, err := repo.Delete(ctx, id)

	// then
	require.NoError(t, err)
	assert.True(t, deleted)

	var overrides, entries int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM project_month_allotments").Scan(&overrides))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM time_entries").Scan(&entries))
	assert.Zero(t, overrides)
	assert.Zero(t, entries)
}

func TestRepoImpl_ListWithMonthAllotment(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)
	id1, err := repo.Store(ctx, Project{Code: "PRJ-2002", AllottedHours: 20})
	require.NoError(t, err)
	id2, err := repo.Store(ctx, Project{Code: "PRJ-1001", AllottedHours: 40})
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO project_month_allotments (project_code_id, month, allotted_hours) VALUES (?, ?, ?)", id1, "2024-03", 10)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO project_month_allotments (project_code_id, month, allotted_hours) VALUES (?, ?, ?)", id1, "2024-04", 15)
	require.NoError(t, err)

	// when
	allotments, err := repo.ListWithMonthAllotment(ctx, "2024-03")

	// then
	require.NoError(t, err)
	require.Len(t, allotments, 2)

	// ordered by code; only the matching month's override applies
	assert.Equal(t, "PRJ-1001", allotments[0].Code)
	assert.Equal(t, id2, allotments[0].ProjectID)
	assert.Equal(t, 40.0, allotments[0].AllottedHours)
	assert.Equal(t, "PRJ-2002", allotments[1].Code)
	assert.Equal(t, 10.0, allotments[1].AllottedHours)
}

func TestRepoImpl_Count(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := NewRepo(db)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// when
	_, err = repo.Store(ctx, Project{Code: "PRJ-1001", AllottedHours: 40})
	require.NoError(t, err)

	// then
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
