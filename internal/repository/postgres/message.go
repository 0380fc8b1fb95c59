package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (sender_id, sender_role, receiver_id, receiver_role, content, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	return r.db.QueryRowContext(ctx, query, m.SenderID, m.SenderRole, m.ReceiverID, m.ReceiverRole, m.Content, m.IsRead, m.CreatedAt).Scan(&m.ID)
}

func (r *messageRepository) Conversation(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	query := `SELECT id, sender_id, sender_role, receiver_id, receiver_role, content, is_read, created_at
	          FROM messages
	          WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
	          ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, userID, otherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.SenderRole, &m.ReceiverID, &m.ReceiverRole, &m.Content, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *messageRepository) MarkRead(ctx context.Context, receiverID, senderID string) error {
	query := `UPDATE messages SET is_read=true WHERE receiver_id=$1 AND NOT is_read`
	args := []interface{}{receiverID}
	if senderID != "" {
		query += ` AND sender_id=$2`
		args = append(args, senderID)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *messageRepository) CountUnread(ctx context.Context, receiverID, senderID string) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM messages WHERE receiver_id=$1 AND sender_id=$2 AND NOT is_read`
	err := r.db.QueryRowContext(ctx, query, receiverID, senderID).Scan(&count)
	return count, err
}

func (r *messageRepository) UnreadBySender(ctx context.Context, receiverID string) ([]domain.UnreadSummary, error) {
	query := `SELECT sender_id, min(sender_role), count(*) FROM messages
	          WHERE receiver_id=$1 AND NOT is_read GROUP BY sender_id`
	rows, err := r.db.QueryContext(ctx, query, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UnreadSummary
	for rows.Next() {
		var s domain.UnreadSummary
		if err := rows.Scan(&s.SenderID, &s.SenderRole, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
