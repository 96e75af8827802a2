package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

func (r *SQLiteRepo) CreateConnection(ctx context.Context, employerID, helperID int64) (int64, error) {
	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO connections (employer_id, helper_id, status, created_at, updated_at) VALUES (?, ?, 'pending', ?, ?)`,
		employerID, helperID, ts, ts)
	if err != nil {
		return 0, mapConstraintErr(err)
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetConnection(ctx context.Context, id int64) (*models.Connection, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, employer_id, helper_id, status, started_at, ended_at, created_at, updated_at FROM connections WHERE id = ?`, id)
	var c models.Connection
	if err := row.Scan(&c.ID, &c.EmployerID, &c.HelperID, &c.Status, &c.StartedAt, &c.EndedAt, &c.Created, &c.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &c, nil
}

const connectionDetailQuery = `
	SELECT c.id, c.employer_id, c.helper_id, c.status, c.started_at, c.ended_at, c.created_at, c.updated_at,
	       emp.full_name, emp.email, emp.city,
	       hlp.full_name, hlp.email, hlp.city, hlp.rating
	FROM connections c
	JOIN users emp ON c.employer_id = emp.id
	JOIN users hlp ON c.helper_id = hlp.id`

func scanConnectionDetails(rows *sql.Rows) ([]models.ConnectionDetail, error) {
	var out []models.ConnectionDetail
	for rows.Next() {
		var d models.ConnectionDetail
		if err := rows.Scan(&d.ID, &d.EmployerID, &d.HelperID, &d.Status, &d.StartedAt, &d.EndedAt, &d.Created, &d.Updated,
			&d.EmployerName, &d.EmployerEmail, &d.EmployerCity,
			&d.HelperName, &d.HelperEmail, &d.HelperCity, &d.HelperRating); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) ListConnectionsByUser(ctx context.Context, userID int64) ([]models.ConnectionDetail, error) {
	rows, err := r.conn.QueryRows(ctx, connectionDetailQuery+` WHERE c.employer_id = ? OR c.helper_id = ? ORDER BY c.created_at DESC`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConnectionDetails(rows)
}

// UpdateConnectionStatus stamps started_at on activation and ended_at on
// terminal states. COALESCE keeps an existing stamp, so each is set at most
// once over the connection's lifetime.
func (r *SQLiteRepo) UpdateConnectionStatus(ctx context.Context, id int64, status string) error {
	ts := now()

	query := `UPDATE connections SET status = ?, updated_at = ?`
	args := []any{status, ts}

	switch status {
	case models.ConnectionActive:
		query += `, started_at = COALESCE(started_at, ?)`
		args = append(args, ts)
	case models.ConnectionCompleted, models.ConnectionCancelled:
		query += `, ended_at = COALESCE(ended_at, ?)`
		args = append(args, ts)
	}

	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("connection %d not found", id)
	}

	return nil
}

func (r *SQLiteRepo) DeleteConnection(ctx context.Context, id int64) (int64, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM connections WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
