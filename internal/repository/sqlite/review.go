package sqlite

import (
	"context"
	"fmt"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

func (r *SQLiteRepo) CreateReview(ctx context.Context, rv *models.Review) (int64, error) {
	if rv == nil {
		return 0, fmt.Errorf("review is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO reviews (reviewer_id, reviewee_id, connection_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rv.ReviewerID, rv.RevieweeID, rv.ConnectionID, rv.Rating, rv.Comment, now())
	if err != nil {
		return 0, mapConstraintErr(err)
	}

	return res.LastInsertId()
}

// RefreshUserRating recomputes the aggregate from all reviews for the user.
// Full recomputation is immune to drift, unlike incremental updates.
func (r *SQLiteRepo) RefreshUserRating(ctx context.Context, revieweeID int64) error {
	_, err := r.conn.Exec(ctx, `UPDATE users SET
		rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE reviewee_id = ?), 0),
		total_reviews = (SELECT COUNT(*) FROM reviews WHERE reviewee_id = ?),
		updated_at = ?
		WHERE id = ?`,
		revieweeID, revieweeID, now(), revieweeID)
	return err
}

func (r *SQLiteRepo) ListReviewsForUser(ctx context.Context, revieweeID int64) ([]models.ReviewDetail, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT r.id, r.reviewer_id, r.reviewee_id, r.connection_id, r.rating, r.comment, r.created_at,
		       u.full_name, u.profile_image
		FROM reviews r
		JOIN users u ON r.reviewer_id = u.id
		WHERE r.reviewee_id = ?
		ORDER BY r.created_at DESC`, revieweeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ReviewDetail
	for rows.Next() {
		var d models.ReviewDetail
		if err := rows.Scan(&d.ID, &d.ReviewerID, &d.RevieweeID, &d.ConnectionID, &d.Rating, &d.Comment, &d.Created,
			&d.ReviewerName, &d.ReviewerImage); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
