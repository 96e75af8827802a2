package sqlite

import (
	"context"
	"sort"

	"github.com/maneomkar369/saheli-connect-2.0/internal/models"
)

func (r *SQLiteRepo) CreateMessage(ctx context.Context, senderID, receiverID int64, body string) (int64, error) {
	res, err := r.conn.Exec(ctx, `INSERT INTO messages (sender_id, receiver_id, message, read, created_at) VALUES (?, ?, ?, 0, ?)`,
		senderID, receiverID, body, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListConversation(ctx context.Context, userID, otherID int64) ([]models.MessageDetail, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT m.id, m.sender_id, m.receiver_id, m.message, m.read, m.created_at,
		       s.full_name, s.profile_image, r.full_name, r.profile_image
		FROM messages m
		JOIN users s ON m.sender_id = s.id
		JOIN users r ON m.receiver_id = r.id
		WHERE (m.sender_id = ? AND m.receiver_id = ?) OR (m.sender_id = ? AND m.receiver_id = ?)
		ORDER BY m.created_at ASC`,
		userID, otherID, otherID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.MessageDetail
	for rows.Next() {
		var m models.MessageDetail
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Message.Message, &m.Read, &m.Created,
			&m.SenderName, &m.SenderImage, &m.ReceiverName, &m.ReceiverImage); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

// ListConversations derives the distinct counterparts from the messages table,
// then fetches the last message and unread count per counterpart. The fan-out
// of secondary lookups is linear in the number of conversations, which is fine
// at this scale.
func (r *SQLiteRepo) ListConversations(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT DISTINCT
			CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END AS user_id,
			u.full_name, u.profile_image, u.user_type
		FROM messages m
		JOIN users u ON (CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END) = u.id
		WHERE m.sender_id = ? OR m.receiver_id = ?`,
		userID, userID, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ConversationSummary
	for rows.Next() {
		var c models.ConversationSummary
		if err := rows.Scan(&c.UserID, &c.FullName, &c.ProfileImage, &c.UserType); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		c := &out[i]

		row := r.conn.QueryRow(ctx, `
			SELECT message, created_at FROM messages
			WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
			ORDER BY created_at DESC LIMIT 1`,
			userID, c.UserID, c.UserID, userID)
		var (
			body    string
			created int64
		)
		if err := row.Scan(&body, &created); err == nil {
			c.LastMessage = &body
			c.LastMessageTime = &created
		}

		row = r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM messages WHERE sender_id = ? AND receiver_id = ? AND read = 0`, c.UserID, userID)
		if err := row.Scan(&c.UnreadCount); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastMessageTime, out[j].LastMessageTime
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})

	return out, nil
}

func (r *SQLiteRepo) MarkMessagesRead(ctx context.Context, senderID, receiverID int64) (int64, error) {
	res, err := r.conn.Exec(ctx, `UPDATE messages SET read = 1 WHERE sender_id = ? AND receiver_id = ? AND read = 0`, senderID, receiverID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *SQLiteRepo) UnreadMessageCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM messages WHERE receiver_id = ? AND read = 0`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
