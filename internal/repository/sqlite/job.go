package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

func (r *SQLiteRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if j == nil {
		return 0, fmt.Errorf("job is nil")
	}

	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO jobs (employer_id, title, description, location, work_type, salary_range, requirements, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 'active', ?, ?)`,
		j.EmployerID, j.Title, j.Description, j.Location, j.WorkType, j.SalaryRange, j.Requirements, ts, ts)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetJob(ctx context.Context, id int64) (*models.JobDetail, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT j.id, j.employer_id, j.title, j.description, j.location, j.work_type, j.salary_range, j.requirements, j.status, j.created_at, j.updated_at,
		       u.full_name, u.city, u.email, u.phone, u.profile_image,
		       (SELECT COUNT(*) FROM job_applications WHERE job_id = j.id),
		       (SELECT COUNT(*) FROM job_applications WHERE job_id = j.id AND status = 'pending')
		FROM jobs j
		JOIN users u ON j.employer_id = u.id
		WHERE j.id = ?`, id)

	var d models.JobDetail
	if err := row.Scan(&d.ID, &d.EmployerID, &d.Title, &d.Description, &d.Location, &d.WorkType, &d.SalaryRange, &d.Requirements, &d.Status, &d.Created, &d.Updated,
		&d.EmployerName, &d.EmployerCity, &d.EmployerEmail, &d.EmployerPhone, &d.EmployerImage,
		&d.ApplicationCount, &d.PendingCount); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &d, nil
}

func (r *SQLiteRepo) ListJobs(ctx context.Context, f models.JobFilter) ([]models.JobSummary, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location, j.work_type, j.salary_range, j.requirements, j.status, j.created_at, j.updated_at,
		       u.full_name, u.city,
		       (SELECT COUNT(*) FROM job_applications WHERE job_id = j.id)
		FROM jobs j
		JOIN users u ON j.employer_id = u.id
		WHERE j.status = 'active'`
	var args []any

	if f.City != "" {
		query += ` AND u.city LIKE ?`
		args = append(args, "%"+f.City+"%")
	}
	if f.WorkType != "" {
		query += ` AND j.work_type = ?`
		args = append(args, f.WorkType)
	}
	if f.PostedBy > 0 {
		query += ` AND j.employer_id = ?`
		args = append(args, f.PostedBy)
	}

	query += ` ORDER BY j.created_at DESC`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobSummaries(rows)
}

func scanJobSummaries(rows *sql.Rows) ([]models.JobSummary, error) {
	var out []models.JobSummary
	for rows.Next() {
		var s models.JobSummary
		if err := rows.Scan(&s.ID, &s.EmployerID, &s.Title, &s.Description, &s.Location, &s.WorkType, &s.SalaryRange, &s.Requirements, &s.Status, &s.Created, &s.Updated,
			&s.EmployerName, &s.EmployerCity, &s.ApplicationCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateJob(ctx context.Context, id int64, u models.JobUpdate) error {
	sets := []string{}
	args := []any{}

	appendSet := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *v)
		}
	}
	appendSet("title", u.Title)
	appendSet("description", u.Description)
	appendSet("location", u.Location)
	appendSet("work_type", u.WorkType)
	appendSet("salary_range", u.SalaryRange)
	appendSet("requirements", u.Requirements)
	appendSet("status", u.Status)

	sets = append(sets, "updated_at = ?")
	args = append(args, now(), id)

	query := "UPDATE jobs SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	_, err := r.conn.Exec(ctx, query, args...)
	return err
}

func (r *SQLiteRepo) DeleteJob(ctx context.Context, id int64) (int64, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
