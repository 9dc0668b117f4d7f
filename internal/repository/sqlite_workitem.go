package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/gantt/internal/db"
	"github.com/alexanderramin/gantt/internal/domain"
)

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, title, start_date, end_date, row_index, status, status_color,
		progress, created_at, updated_at`

// SQLiteWorkItemRepo implements WorkItemRepo using a SQLite database.
type SQLiteWorkItemRepo struct {
	db db.DBTX
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo. Pass the *sql.Tx
// handed out by a UnitOfWork to run inside that transaction.
func NewSQLiteWorkItemRepo(conn db.DBTX) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: conn}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (id, title, start_date, end_date, row_index, status, status_color,
		progress, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Title,
		w.Start.String(),
		w.End.String(),
		w.RowIndex,
		string(w.Status),
		w.StatusColor,
		w.Progress,
		timeToString(w.CreatedAt),
		timeToString(w.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE id = ?`
	w, err := scanWorkItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("work item %s: %w", id, ErrNotFound)
	}
	return w, err
}

func (r *SQLiteWorkItemRepo) List(ctx context.Context) ([]*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items ORDER BY row_index, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}
	defer rows.Close()

	var items []*domain.WorkItem
	for rows.Next() {
		w, err := scanWorkItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work items: %w", err)
	}
	return items, nil
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items SET title = ?, start_date = ?, end_date = ?, row_index = ?,
		status = ?, status_color = ?, progress = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Title,
		w.Start.String(),
		w.End.String(),
		w.RowIndex,
		string(w.Status),
		w.StatusColor,
		w.Progress,
		timeToString(w.UpdatedAt),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	return expectOneRow(res, w.ID)
}

func (r *SQLiteWorkItemRepo) UpdateDates(ctx context.Context, id string, start, end domain.Date) error {
	query := `UPDATE work_items SET start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, start.String(), end.String(), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating work item dates: %w", err)
	}
	return expectOneRow(res, id)
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work item: %w", err)
	}
	return expectOneRow(res, id)
}

func (r *SQLiteWorkItemRepo) NextRowIndex(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(row_index) + 1, 0) FROM work_items`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("reading next row index: %w", err)
	}
	return next, nil
}

func expectOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("work item %s: %w", id, ErrNotFound)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkItem(s rowScanner) (*domain.WorkItem, error) {
	var w domain.WorkItem
	var startStr, endStr, statusStr, createdAtStr, updatedAtStr string

	err := s.Scan(
		&w.ID, &w.Title,
		&startStr, &endStr,
		&w.RowIndex, &statusStr, &w.StatusColor, &w.Progress,
		&createdAtStr, &updatedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning work item: %w", err)
	}

	w.Status = domain.WorkItemStatus(statusStr)

	if w.Start, err = parseDate("start_date", startStr); err != nil {
		return nil, err
	}
	if w.End, err = parseDate("end_date", endStr); err != nil {
		return nil, err
	}
	if w.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if w.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &w, nil
}
