package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	// Store stores a new Project to the database
	Store(ctx context.Context, project Project) (int, error)
	Get(ctx context.Context, id int) (Project, error)
	GetAll(ctx context.Context) ([]Project, error)
	FindByCode(ctx context.Context, code string) (Project, error)
	UpdateCode(ctx context.Context, id int, code string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int, error)
	// ListWithMonthAllotment returns all projects ordered by code, each with
	// its effective allotment for the given month.
	ListWithMonthAllotment(ctx context.Context, month string) ([]MonthlyAllotment, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, project Project) (int, error) {
	query := "INSERT INTO project_codes (code, allotted_hours) VALUES (?, ?)"

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, project.Code, project.AllottedHours)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}

	return int(lastInsertID), nil
}

func (r *RepoImpl) Get(ctx context.Context, id int) (Project, error) {
	query := "SELECT id, code, allotted_hours FROM project_codes WHERE id = ?"
	var project Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(&project.ID, &project.Code, &project.AllottedHours)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrProjectNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query project: %w", err)
		log.Error(err)
		return Project{}, err
	}
	return project, nil
}

func (r *RepoImpl) GetAll(ctx context.Context) ([]Project, error) {
	query := "SELECT id, code, allotted_hours FROM project_codes ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query projects: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	projects := make([]Project, 0, 10)
	for rows.Next() {
		var project Project
		if err := rows.Scan(&project.ID, &project.Code, &project.AllottedHours); err != nil {
			err := fmt.Errorf("could not scan project: %w", err)
			log.Error(err)
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return projects, nil
}

func (r *RepoImpl) FindByCode(ctx context.Context, code string) (Project, error) {
	query := "SELECT id, code, allotted_hours FROM project_codes WHERE code = ?"
	var project Project
	err := r.db.QueryRowContext(ctx, query, code).Scan(&project.ID, &project.Code, &project.AllottedHours)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrProjectNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query project by code: %w", err)
		log.Error(err)
		return Project{}, err
	}
	return project, nil
}

func (r *RepoImpl) UpdateCode(ctx context.Context, id int, code string) (bool, error) {
	query := "UPDATE project_codes SET code = ? WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, code, id)
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

// Delete removes the project; month allotments and time entries follow via
// ON DELETE CASCADE.
func (r *RepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	query := "DELETE FROM project_codes WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, id)
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

func (r *RepoImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM project_codes").Scan(&count)
	if err != nil {
		err := fmt.Errorf("could not count projects: %w", err)
		log.Error(err)
		return 0, err
	}
	return count, nil
}

func (r *RepoImpl) ListWithMonthAllotment(ctx context.Context, month string) ([]MonthlyAllotment, error) {
	query := `SELECT p.id, p.code, COALESCE(a.allotted_hours, p.allotted_hours)
			  FROM project_codes p
			  LEFT JOIN project_month_allotments a ON a.project_code_id = p.id AND a.month = ?
			  ORDER BY p.code`
	rows, err := r.db.QueryContext(ctx, query, month)
	if err != nil {
		err := fmt.Errorf("could not query monthly allotments: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	allotments := make([]MonthlyAllotment, 0, 10)
	for rows.Next() {
		var a MonthlyAllotment
		if err := rows.Scan(&a.ProjectID, &a.Code, &a.AllottedHours); err != nil {
			err := fmt.Errorf("could not scan monthly allotment: %w", err)
			log.Error(err)
			return nil, err
		}
		allotments = append(allotments, a)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return allotments, nil
}
