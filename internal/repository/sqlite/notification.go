package sqlite

import (
	"context"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

func (r *SQLiteRepo) CreateNotification(ctx context.Context, userID int64, title, message, typ string) error {
	_, err := r.conn.Exec(ctx, `INSERT INTO notifications (user_id, title, message, type, read, created_at) VALUES (?, ?, ?, ?, 0, ?)`,
		userID, title, message, typ, now())
	return err
}

func (r *SQLiteRepo) ListNotifications(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, title, message, type, read, created_at FROM notifications WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.Created); err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UnreadNotificationCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = ? AND read = 0`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// MarkNotificationRead only touches rows owned by userID; the ownership check
// is the WHERE clause itself.
func (r *SQLiteRepo) MarkNotificationRead(ctx context.Context, id, userID int64) (int64, error) {
	res, err := r.conn.Exec(ctx, `UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
