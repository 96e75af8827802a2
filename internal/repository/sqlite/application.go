package sqlite

import (
	"context"
	"database/sql"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

func (r *SQLiteRepo) CreateApplication(ctx context.Context, jobID, helperID int64, coverLetter string) (int64, error) {
	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO job_applications (job_id, helper_id, cover_letter, status, created_at, updated_at) VALUES (?, ?, ?, 'pending', ?, ?)`,
		jobID, helperID, coverLetter, ts, ts)
	if err != nil {
		return 0, mapConstraintErr(err)
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetApplicationOwnership(ctx context.Context, id int64) (*models.ApplicationOwnership, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT ja.id, ja.job_id, j.employer_id, ja.helper_id
		FROM job_applications ja
		JOIN jobs j ON ja.job_id = j.id
		WHERE ja.id = ?`, id)

	var o models.ApplicationOwnership
	if err := row.Scan(&o.ApplicationID, &o.JobID, &o.EmployerID, &o.HelperID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &o, nil
}

func (r *SQLiteRepo) ListApplicationsForJob(ctx context.Context, jobID int64) ([]models.ApplicationDetail, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT ja.id, ja.job_id, ja.helper_id, ja.cover_letter, ja.status, ja.created_at, ja.updated_at,
		       u.full_name, u.email, u.phone, u.city, u.profile_image,
		       hp.experience, hp.skills, hp.languages, hp.hourly_rate
		FROM job_applications ja
		JOIN users u ON ja.helper_id = u.id
		LEFT JOIN helper_profiles hp ON u.id = hp.user_id
		WHERE ja.job_id = ?
		ORDER BY ja.created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ApplicationDetail
	for rows.Next() {
		var d models.ApplicationDetail
		if err := rows.Scan(&d.ID, &d.JobID, &d.HelperID, &d.CoverLetter, &d.Status, &d.Created, &d.Updated,
			&d.FullName, &d.Email, &d.Phone, &d.City, &d.ProfileImage,
			&d.Experience, &d.Skills, &d.Languages, &d.HourlyRate); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) ListApplicationsByHelper(ctx context.Context, helperID int64) ([]models.HelperApplication, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT ja.id, ja.job_id, ja.helper_id, ja.cover_letter, ja.status, ja.created_at, ja.updated_at,
		       j.title, j.description, j.work_type, j.location, j.salary_range,
		       u.full_name, u.email, u.city
		FROM job_applications ja
		JOIN jobs j ON ja.job_id = j.id
		JOIN users u ON j.employer_id = u.id
		WHERE ja.helper_id = ?
		ORDER BY ja.created_at DESC`, helperID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.HelperApplication
	for rows.Next() {
		var d models.HelperApplication
		if err := rows.Scan(&d.ID, &d.JobID, &d.HelperID, &d.CoverLetter, &d.Status, &d.Created, &d.Updated,
			&d.Title, &d.Description, &d.WorkType, &d.Location, &d.SalaryRange,
			&d.EmployerName, &d.EmployerEmail, &d.EmployerCity); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateApplicationStatus(ctx context.Context, id int64, status string) error {
	_, err := r.conn.Exec(ctx, `UPDATE job_applications SET status = ?, updated_at = ? WHERE id = ?`, status, now(), id)
	return err
}
