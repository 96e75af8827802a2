package sqlite

import (
	"context"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

func (r *SQLiteRepo) CreateReport(ctx context.Context, reporterID, reportedUserID int64, reason, description string) (int64, error) {
	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO reports (reporter_id, reported_user_id, reason, description, status, created_at, updated_at) VALUES (?, ?, ?, ?, 'pending', ?, ?)`,
		reporterID, reportedUserID, reason, description, ts, ts)
	if err != nil {
		return 0, mapConstraintErr(err)
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListReports(ctx context.Context, status string, limit, offset int) ([]models.ReportDetail, error) {
	query := `
		SELECT r.id, r.reporter_id, r.reported_user_id, r.reason, r.description, r.status, r.admin_notes,
		       r.created_at, r.updated_at, r.resolved_at,
		       reporter.full_name, reporter.email, reported.full_name, reported.email
		FROM reports r
		JOIN users reporter ON r.reporter_id = reporter.id
		JOIN users reported ON r.reported_user_id = reported.id`
	var args []any

	if status != "" {
		query += ` WHERE r.status = ?`
		args = append(args, status)
	}

	query += ` ORDER BY r.created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ReportDetail
	for rows.Next() {
		var d models.ReportDetail
		if err := rows.Scan(&d.ID, &d.ReporterID, &d.ReportedUserID, &d.Reason, &d.Description, &d.Status, &d.AdminNotes,
			&d.Created, &d.Updated, &d.ResolvedAt,
			&d.ReporterName, &d.ReporterEmail, &d.ReportedName, &d.ReportedEmail); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

// UpdateReportStatus stamps resolved_at the first time the report leaves
// pending. Returns the number of rows updated.
func (r *SQLiteRepo) UpdateReportStatus(ctx context.Context, id int64, status, adminNotes string) (int64, error) {
	ts := now()

	query := `UPDATE reports SET status = ?, updated_at = ?`
	args := []any{status, ts}

	if adminNotes != "" {
		query += `, admin_notes = ?`
		args = append(args, adminNotes)
	}
	if status != models.ReportPending {
		query += `, resolved_at = COALESCE(resolved_at, ?)`
		args = append(args, ts)
	}

	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
