package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

func (r *SQLiteRepo) CreateHelperProfile(ctx context.Context, userID int64) error {
	ts := now()
	_, err := r.conn.Exec(ctx, `INSERT INTO helper_profiles (user_id, created_at, updated_at) VALUES (?, ?, ?)`, userID, ts, ts)
	return mapConstraintErr(err)
}

func (r *SQLiteRepo) CreateEmployerPreferences(ctx context.Context, userID int64) error {
	ts := now()
	_, err := r.conn.Exec(ctx, `INSERT INTO employer_preferences (user_id, created_at, updated_at) VALUES (?, ?, ?)`, userID, ts, ts)
	return mapConstraintErr(err)
}

func (r *SQLiteRepo) GetHelperProfile(ctx context.Context, userID int64) (*models.HelperProfile, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, user_id, skills, experience, hourly_rate, availability, languages, certifications, updated_at FROM helper_profiles WHERE user_id = ?`, userID)
	var p models.HelperProfile
	if err := row.Scan(&p.ID, &p.UserID, &p.Skills, &p.Experience, &p.HourlyRate, &p.Availability, &p.Languages, &p.Certifications, &p.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &p, nil
}

func (r *SQLiteRepo) GetEmployerPreferences(ctx context.Context, userID int64) (*models.EmployerPreferences, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, user_id, services_needed, budget_range, preferred_experience, preferred_skills, work_schedule, updated_at FROM employer_preferences WHERE user_id = ?`, userID)
	var p models.EmployerPreferences
	if err := row.Scan(&p.ID, &p.UserID, &p.ServicesNeeded, &p.BudgetRange, &p.PreferredExperience, &p.PreferredSkills, &p.WorkSchedule, &p.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &p, nil
}

func (r *SQLiteRepo) UpsertHelperProfile(ctx context.Context, p *models.HelperProfile) error {
	if p == nil {
		return fmt.Errorf("helper profile is nil")
	}

	ts := now()
	_, err := r.conn.Exec(ctx, `INSERT INTO helper_profiles (user_id, skills, experience, hourly_rate, availability, languages, certifications, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET skills=excluded.skills, experience=excluded.experience, hourly_rate=excluded.hourly_rate,
			availability=excluded.availability, languages=excluded.languages, certifications=excluded.certifications, updated_at=excluded.updated_at`,
		p.UserID, p.Skills, p.Experience, p.HourlyRate, p.Availability, p.Languages, p.Certifications, ts, ts)
	return err
}
