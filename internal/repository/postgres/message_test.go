package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
)

func TestMessageRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMessageRepository(db)
	ctx := context.Background()

	msg := &domain.Message{
		SenderID:     "TENANT_9123456789",
		SenderRole:   domain.RoleTenant,
		ReceiverID:   "ADMIN_1",
		ReceiverRole: domain.RoleAdmin,
		Content:      "hello",
	}

	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(msg.SenderID, msg.SenderRole, msg.ReceiverID, msg.ReceiverRole, msg.Content, false, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	err = repo.Create(ctx, msg)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), msg.ID)
}

func TestMessageRepository_Conversation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMessageRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "sender_id", "sender_role", "receiver_id", "receiver_role", "content", "is_read", "created_at"}).
		AddRow(1, "TENANT_9123456789", "tenant", "ADMIN_1", "admin", "hi", true, time.Now().Add(-time.Hour)).
		AddRow(2, "ADMIN_1", "admin", "TENANT_9123456789", "tenant", "hello", false, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM messages").
		WithArgs("TENANT_9123456789", "ADMIN_1").
		WillReturnRows(rows)

	msgs, err := repo.Conversation(ctx, "TENANT_9123456789", "ADMIN_1")
	assert.NoError(t, err)
	if assert.Len(t, msgs, 2) {
		// Oldest first, both directions included.
		assert.Equal(t, "TENANT_9123456789", msgs[0].SenderID)
		assert.Equal(t, "ADMIN_1", msgs[1].SenderID)
	}
}

func TestMessageRepository_MarkRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMessageRepository(db)
	ctx := context.Background()

	t.Run("ScopedToSender", func(t *testing.T) {
		mock.ExpectExec("UPDATE messages SET is_read=true").
			WithArgs("TENANT_9123456789", "ADMIN_1").
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.MarkRead(ctx, "TENANT_9123456789", "ADMIN_1")
		assert.NoError(t, err)
	})

	t.Run("AllSenders", func(t *testing.T) {
		mock.ExpectExec("UPDATE messages SET is_read=true").
			WithArgs("ADMIN_1").
			WillReturnResult(sqlmock.NewResult(0, 5))

		err := repo.MarkRead(ctx, "ADMIN_1", "")
		assert.NoError(t, err)
	})
}

func TestMessageRepository_UnreadBySender(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewMessageRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"sender_id", "sender_role", "count"}).
		AddRow("TENANT_9123456789", "tenant", 3).
		AddRow("OWNER_9876543210", "owner", 1)

	mock.ExpectQuery("SELECT sender_id, min\\(sender_role\\), count\\(\\*\\) FROM messages").
		WithArgs("ADMIN_1").
		WillReturnRows(rows)

	out, err := repo.UnreadBySender(ctx, "ADMIN_1")
	assert.NoError(t, err)
	if assert.Len(t, out, 2) {
		assert.Equal(t, int32(3), out[0].Count)
		assert.Equal(t, domain.RoleOwner, out[1].SenderRole)
	}
}
