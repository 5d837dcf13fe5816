package allotment

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	// Upsert stores the override for (project, month), replacing any prior
	// value for that exact month.
	Upsert(ctx context.Context, override MonthAllotment) error
	ListForProject(ctx context.Context, projectId int) ([]MonthAllotment, error)
	Delete(ctx context.Context, projectId int, month string) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Upsert(ctx context.Context, override MonthAllotment) error {
	query := `INSERT INTO project_month_allotments (project_code_id, month, allotted_hours) VALUES (?, ?, ?)
			  ON CONFLICT(project_code_id, month) DO UPDATE SET allotted_hours = excluded.allotted_hours`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, override.ProjectID, override.Month, override.AllottedHours)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

// ListForProject returns the project's overrides, most recent month first.
func (r *RepoImpl) ListForProject(ctx context.Context, projectId int) ([]MonthAllotment, error) {
	query := `SELECT project_code_id, month, allotted_hours FROM project_month_allotments
			  WHERE project_code_id = ? ORDER BY month DESC`
	rows, err := r.db.QueryContext(ctx, query, projectId)
	if err != nil {
		err := fmt.Errorf("could not query month allotments: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	overrides := make([]MonthAllotment, 0, 10)
	for rows.Next() {
		var override MonthAllotment
		if err := rows.Scan(&override.ProjectID, &override.Month, &override.AllottedHours); err != nil {
			err := fmt.Errorf("could not scan month allotment: %w", err)
			log.Error(err)
			return nil, err
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return overrides, nil
}

func (r *RepoImpl) Delete(ctx context.Context, projectId int, month string) (bool, error) {
	query := "DELETE FROM project_month_allotments WHERE project_code_id = ? AND month = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, projectId, month)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
