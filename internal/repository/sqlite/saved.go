package sqlite

import (
	"context"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

// ToggleSavedProfile deletes the pair when it exists, otherwise inserts it.
// Delete-first makes the toggle race-free under the unique index: a concurrent
// duplicate insert surfaces as a constraint error, not a silent double row.
// Returns true when the profile is saved after the call.
func (r *SQLiteRepo) ToggleSavedProfile(ctx context.Context, userID, savedUserID int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM saved_profiles WHERE user_id = ? AND saved_user_id = ?`, userID, savedUserID)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		// existed: unsaved
		return false, nil
	}

	if _, err := r.conn.Exec(ctx, `INSERT INTO saved_profiles (user_id, saved_user_id, created_at) VALUES (?, ?, ?)`, userID, savedUserID, now()); err != nil {
		return false, mapConstraintErr(err)
	}

	return true, nil
}

func (r *SQLiteRepo) ListSavedProfiles(ctx context.Context, userID int64) ([]models.SavedProfileDetail, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT u.id, u.full_name, u.email, u.phone, u.user_type, u.city, u.about,
		       u.profile_image, u.verified, u.rating, u.total_reviews, sp.created_at
		FROM saved_profiles sp
		JOIN users u ON sp.saved_user_id = u.id
		WHERE sp.user_id = ?
		ORDER BY sp.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.SavedProfileDetail
	for rows.Next() {
		var d models.SavedProfileDetail
		if err := rows.Scan(&d.ID, &d.FullName, &d.Email, &d.Phone, &d.UserType, &d.City, &d.About,
			&d.ProfileImage, &d.Verified, &d.Rating, &d.TotalReviews, &d.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
