package entry

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repo interface {
	// Upsert stores the hours for (project, date), replacing any prior value
	// for that exact date.
	Upsert(ctx context.Context, entry DayEntry) error
	// ListForMonth returns all entries whose date falls within the given
	// YYYY-MM month, across all projects.
	ListForMonth(ctx context.Context, month string) ([]DayEntry, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Upsert(ctx context.Context, entry DayEntry) error {
	query := `INSERT INTO time_entries (project_code_id, entry_date, hours) VALUES (?, ?, ?)
			  ON CONFLICT(project_code_id, entry_date) DO UPDATE SET hours = excluded.hours`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, entry.ProjectID, entry.Date, entry.Hours)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) ListForMonth(ctx context.Context, month string) ([]DayEntry, error) {
	query := "SELECT project_code_id, entry_date, hours FROM time_entries WHERE entry_date LIKE ?"
	rows, err := r.db.QueryContext(ctx, query, month+"-%")
	if err != nil {
		err := fmt.Errorf("could not query time entries: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	entries := make([]DayEntry, 0, 64)
	for rows.Next() {
		var entry DayEntry
		if err := rows.Scan(&entry.ProjectID, &entry.Date, &entry.Hours); err != nil {
			err := fmt.Errorf("could not scan time entry: %w", err)
			log.Error(err)
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return entries, nil
}
