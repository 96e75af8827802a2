package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

const userColumns = `id, full_name, email, phone, password_hash, user_type, city, about, profile_image, verified, status, rating, total_reviews, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.UserType, &u.City, &u.About, &u.ProfileImage, &u.Verified, &u.Status, &u.Rating, &u.TotalReviews, &u.Created, &u.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &u, nil
}

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user is nil")
	}

	ts := now()
	res, err := r.conn.Exec(ctx, `INSERT INTO users (full_name, email, phone, password_hash, user_type, city, about, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.FullName, u.Email, u.Phone, u.PasswordHash, u.UserType, u.City, u.About, ts, ts)
	if err != nil {
		return 0, mapConstraintErr(err)
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *SQLiteRepo) UpdateUserProfile(ctx context.Context, id int64, fullName, phone, city, about, profileImage string) error {
	_, err := r.conn.Exec(ctx, `UPDATE users SET full_name = ?, phone = ?, city = ?, about = ?, profile_image = ?, updated_at = ? WHERE id = ?`,
		fullName, phone, city, about, profileImage, now(), id)
	return err
}

func (r *SQLiteRepo) SearchUsers(ctx context.Context, excludeID int64, f models.SearchFilter) ([]models.SearchResult, error) {
	withHelperJoin := f.UserType == models.TypeHelper && f.Skills != ""

	var (
		query string
		args  []any
	)

	if withHelperJoin {
		query = `SELECT u.id, u.full_name, u.email, u.phone, u.user_type, u.city, u.about,
		                u.profile_image, u.verified, u.rating, u.total_reviews, u.created_at,
		                h.skills, h.experience, h.hourly_rate, h.availability
		         FROM users u
		         LEFT JOIN helper_profiles h ON u.id = h.user_id
		         WHERE u.status = 'active' AND u.id != ? AND u.user_type = 'helper'`
		args = append(args, excludeID)

		if f.City != "" {
			query += ` AND u.city LIKE ?`
			args = append(args, "%"+f.City+"%")
		}
		query += ` AND h.skills LIKE ?`
		args = append(args, "%"+f.Skills+"%")
	} else {
		query = `SELECT u.id, u.full_name, u.email, u.phone, u.user_type, u.city, u.about,
		                u.profile_image, u.verified, u.rating, u.total_reviews, u.created_at
		         FROM users u
		         WHERE u.status = 'active' AND u.id != ?`
		args = append(args, excludeID)

		if f.UserType != "" {
			query += ` AND u.user_type = ?`
			args = append(args, f.UserType)
		}
		if f.City != "" {
			query += ` AND u.city LIKE ?`
			args = append(args, "%"+f.City+"%")
		}
		if f.MinRating > 0 {
			query += ` AND u.rating >= ?`
			args = append(args, f.MinRating)
		}
		if f.Keywords != "" {
			query += ` AND (u.full_name LIKE ? OR u.about LIKE ?)`
			args = append(args, "%"+f.Keywords+"%", "%"+f.Keywords+"%")
		}
	}

	query += ` ORDER BY u.rating DESC, u.created_at DESC LIMIT 50`

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SearchResult
	for rows.Next() {
		var s models.SearchResult
		if withHelperJoin {
			if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &s.Phone, &s.UserType, &s.City, &s.About,
				&s.ProfileImage, &s.Verified, &s.Rating, &s.TotalReviews, &s.Created,
				&s.Skills, &s.Experience, &s.HourlyRate, &s.Availability); err != nil {
				return nil, err
			}
		} else {
			if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &s.Phone, &s.UserType, &s.City, &s.About,
				&s.ProfileImage, &s.Verified, &s.Rating, &s.TotalReviews, &s.Created); err != nil {
				return nil, err
			}
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	var stats models.UserStats

	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM connections WHERE (employer_id = ? OR helper_id = ?) AND status = 'active'`, userID, userID)
	if err := row.Scan(&stats.ActiveConnections); err != nil {
		return nil, err
	}

	row = r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE reviewee_id = ?`, userID)
	if err := row.Scan(&stats.TotalReviews); err != nil {
		return nil, err
	}

	row = r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM saved_profiles WHERE user_id = ?`, userID)
	if err := row.Scan(&stats.SavedProfiles); err != nil {
		return nil, err
	}

	return &stats, nil
}
