package sqlite

import (
	"context"
	"strings"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

func (r *SQLiteRepo) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats

	row := r.conn.QueryRow(ctx, `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN user_type = 'employer' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN user_type = 'helper' THEN 1 ELSE 0 END), 0)
		FROM users`)
	if err := row.Scan(&stats.Users.Total, &stats.Users.Employers, &stats.Users.Helpers); err != nil {
		return nil, err
	}

	row = r.conn.QueryRow(ctx, `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0)
		FROM connections`)
	if err := row.Scan(&stats.Connections.Total, &stats.Connections.Active, &stats.Connections.Pending); err != nil {
		return nil, err
	}

	row = r.conn.QueryRow(ctx, `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0)
		FROM jobs`)
	if err := row.Scan(&stats.Jobs.Total, &stats.Jobs.Active); err != nil {
		return nil, err
	}

	row = r.conn.QueryRow(ctx, `SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0)
		FROM reports`)
	if err := row.Scan(&stats.Reports.Total, &stats.Reports.Pending); err != nil {
		return nil, err
	}

	row = r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM (SELECT id FROM users ORDER BY created_at DESC LIMIT 10)`)
	if err := row.Scan(&stats.RecentSignups); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *SQLiteRepo) ListUsers(ctx context.Context, userType, status string, limit, offset int) ([]models.User, int64, error) {
	conds := []string{"1=1"}
	var args []any

	if userType != "" {
		conds = append(conds, "user_type = ?")
		args = append(args, userType)
	}
	if status != "" {
		conds = append(conds, "status = ?")
		args = append(args, status)
	}

	where := " WHERE " + strings.Join(conds, " AND ")

	var total int64
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users` + where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *u)
	}

	return out, total, rows.Err()
}

func (r *SQLiteRepo) UpdateUserStatus(ctx context.Context, id int64, status string) (int64, error) {
	res, err := r.conn.Exec(ctx, `UPDATE users SET status = ?, updated_at = ? WHERE id = ?`, status, now(), id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *SQLiteRepo) DeleteUser(ctx context.Context, id int64) (int64, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *SQLiteRepo) ListAllConnections(ctx context.Context, status string, limit, offset int) ([]models.ConnectionDetail, error) {
	query := connectionDetailQuery
	var args []any

	if status != "" {
		query += ` WHERE c.status = ?`
		args = append(args, status)
	}

	query += ` ORDER BY c.created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConnectionDetails(rows)
}

func (r *SQLiteRepo) ListAllJobs(ctx context.Context, status string, limit, offset int) ([]models.JobSummary, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location, j.work_type, j.salary_range, j.requirements, j.status, j.created_at, j.updated_at,
		       u.full_name, u.city,
		       (SELECT COUNT(*) FROM job_applications WHERE job_id = j.id)
		FROM jobs j
		JOIN users u ON j.employer_id = u.id`
	var args []any

	if status != "" {
		query += ` WHERE j.status = ?`
		args = append(args, status)
	}

	query += ` ORDER BY j.created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobSummaries(rows)
}
