package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
)

func TestRentRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := &domain.RentRequest{
			ID:        "REQ_1700000000000_abc123def",
			OwnerID:   "OWNER_9876543210",
			TenantID:  "TENANT_9123456789",
			Status:    domain.RequestStatusPending,
			CreatedAt: time.Now(),
		}

		mock.ExpectExec("INSERT INTO rent_requests").
			WithArgs(req.ID, req.OwnerID, req.TenantID, req.Status, req.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		req := &domain.RentRequest{
			ID:       "REQ_1700000000000_abc123def",
			OwnerID:  "OWNER_9876543210",
			TenantID: "TENANT_9123456789",
			Status:   domain.RequestStatusPending,
		}

		mock.ExpectExec("INSERT INTO rent_requests").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, req)
		assert.ErrorIs(t, err, domain.ErrDuplicateID)
	})
}

func TestRentRequestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "owner_id", "tenant_id", "status", "created_at"}).
			AddRow("REQ_1_aaaaaaaaa", "OWNER_9876543210", "TENANT_9123456789", "Pending", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rent_requests WHERE id = \\$1").
			WithArgs("REQ_1_aaaaaaaaa").
			WillReturnRows(rows)

		req, err := repo.GetByID(ctx, "REQ_1_aaaaaaaaa")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusPending, req.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rent_requests WHERE id = \\$1").
			WithArgs("REQ_missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "tenant_id", "status", "created_at"}))

		_, err := repo.GetByID(ctx, "REQ_missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentRequestRepository_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentRequestRepository(db)
	ctx := context.Background()

	t.Run("ExcludesExpired", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "owner_id", "tenant_id", "status", "created_at"}).
			AddRow("REQ_2_bbbbbbbbb", "OWNER_1", "TENANT_2", "Pending", time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM rent_requests WHERE owner_id = \$1 AND status <> 'Expired' ORDER BY created_at DESC`).
			WithArgs("OWNER_1").
			WillReturnRows(rows)

		reqs, err := repo.ListByOwner(ctx, "OWNER_1", false)
		assert.NoError(t, err)
		assert.Len(t, reqs, 1)
	})

	t.Run("IncludesExpired", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "owner_id", "tenant_id", "status", "created_at"}).
			AddRow("REQ_2_bbbbbbbbb", "OWNER_1", "TENANT_2", "Pending", time.Now()).
			AddRow("REQ_1_aaaaaaaaa", "OWNER_1", "TENANT_3", "Expired", time.Now().Add(-6*24*time.Hour))

		mock.ExpectQuery(`SELECT (.+) FROM rent_requests WHERE owner_id = \$1 ORDER BY created_at DESC`).
			WithArgs("OWNER_1").
			WillReturnRows(rows)

		reqs, err := repo.ListByOwner(ctx, "OWNER_1", true)
		assert.NoError(t, err)
		assert.Len(t, reqs, 2)
	})
}

func TestRentRequestRepository_ListPendingByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentRequestRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "owner_id", "tenant_id", "status", "created_at"}).
		AddRow("REQ_1_aaaaaaaaa", "OWNER_1", "TENANT_2", "Pending", time.Now().Add(-2*time.Hour)).
		AddRow("REQ_2_bbbbbbbbb", "OWNER_1", "TENANT_3", "Pending", time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM rent_requests(.+)status = 'Pending' ORDER BY created_at ASC`).
		WithArgs("OWNER_1").
		WillReturnRows(rows)

	reqs, err := repo.ListPendingByOwner(ctx, "OWNER_1")
	assert.NoError(t, err)
	if assert.Len(t, reqs, 2) {
		// Oldest first.
		assert.True(t, reqs[0].CreatedAt.Before(reqs[1].CreatedAt))
	}
}

func TestRentRequestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rent_requests SET status").
			WithArgs(domain.RequestStatusAccepted, "REQ_1_aaaaaaaaa").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, "REQ_1_aaaaaaaaa", domain.RequestStatusAccepted)
		assert.NoError(t, err)
	})

	t.Run("MissingRow", func(t *testing.T) {
		mock.ExpectExec("UPDATE rent_requests SET status").
			WithArgs(domain.RequestStatusAccepted, "REQ_missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "REQ_missing", domain.RequestStatusAccepted)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentRequestRepository_BulkUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentRequestRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE rent_requests SET status=\$1 WHERE tenant_id=\$2 AND status = ANY\(\$3\)`).
		WithArgs(domain.RequestStatusRejected, "TENANT_2", pq.Array([]string{"Pending", "Accepted"})).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.BulkUpdateStatus(ctx, "TENANT_2",
		[]domain.RequestStatus{domain.RequestStatusPending, domain.RequestStatusAccepted},
		domain.RequestStatusRejected)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRentRequestRepository_ExpireOlderThan(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentRequestRepository(db)
	ctx := context.Background()
	cutoff := time.Now().Add(-5 * 24 * time.Hour)

	t.Run("ForOwner", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rent_requests SET status='Expired'`).
			WithArgs("OWNER_1", cutoff).
			WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := repo.ExpireOlderThanForOwner(ctx, "OWNER_1", cutoff)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("StoreWide", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rent_requests SET status='Expired'`).
			WithArgs(cutoff).
			WillReturnResult(sqlmock.NewResult(0, 7))

		n, err := repo.ExpireAllOlderThan(ctx, cutoff)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})

	t.Run("NothingToExpire", func(t *testing.T) {
		mock.ExpectExec(`UPDATE rent_requests SET status='Expired'`).
			WithArgs(cutoff).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.ExpireAllOlderThan(ctx, cutoff)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}
