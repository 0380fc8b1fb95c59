package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

type rentRequestRepository struct {
	db *sql.DB
}

func NewRentRequestRepository(db *sql.DB) repository.RentRequestRepository {
	return &rentRequestRepository{db: db}
}

const requestColumns = `id, owner_id, tenant_id, status, created_at`

func (r *rentRequestRepository) Create(ctx context.Context, req *domain.RentRequest) error {
	query := `INSERT INTO rent_requests (id, owner_id, tenant_id, status, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, req.ID, req.OwnerID, req.TenantID, req.Status, req.CreatedAt)
	return mapError(err)
}

func (r *rentRequestRepository) GetByID(ctx context.Context, id string) (*domain.RentRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rent_requests WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *rentRequestRepository) scanOne(row *sql.Row) (*domain.RentRequest, error) {
	req := &domain.RentRequest{}
	err := row.Scan(&req.ID, &req.OwnerID, &req.TenantID, &req.Status, &req.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return req, nil
}

func (r *rentRequestRepository) scanAll(rows *sql.Rows) ([]domain.RentRequest, error) {
	defer rows.Close()
	var reqs []domain.RentRequest
	for rows.Next() {
		var req domain.RentRequest
		if err := rows.Scan(&req.ID, &req.OwnerID, &req.TenantID, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *rentRequestRepository) ListByOwner(ctx context.Context, ownerID string, includeExpired bool) ([]domain.RentRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rent_requests WHERE owner_id = $1`
	if !includeExpired {
		query += ` AND status <> 'Expired'`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows)
}

func (r *rentRequestRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.RentRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rent_requests WHERE tenant_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows)
}

func (r *rentRequestRepository) LatestForPair(ctx context.Context, ownerID, tenantID string) (*domain.RentRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rent_requests
	          WHERE owner_id = $1 AND tenant_id = $2 ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID, tenantID))
}

func (r *rentRequestRepository) PendingForPair(ctx context.Context, ownerID, tenantID string) (*domain.RentRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rent_requests
	          WHERE owner_id = $1 AND tenant_id = $2 AND status = 'Pending' ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, ownerID, tenantID))
}

func (r *rentRequestRepository) ListPendingByOwner(ctx context.Context, ownerID string) ([]domain.RentRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rent_requests
	          WHERE owner_id = $1 AND status = 'Pending' ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows)
}

func (r *rentRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rent_requests SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return mapError(err)
	}
	return requireRows(res)
}

func (r *rentRequestRepository) BulkUpdateStatus(ctx context.Context, tenantID string, from []domain.RequestStatus, to domain.RequestStatus) (int64, error) {
	query := `UPDATE rent_requests SET status=$1 WHERE tenant_id=$2 AND status = ANY($3)`
	res, err := r.db.ExecContext(ctx, query, to, tenantID, pq.Array(statusStrings(from)))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const expireForOwnerQuery = `UPDATE rent_requests SET status='Expired'
	WHERE owner_id=$1 AND status IN ('Pending', 'Accepted') AND created_at < $2`

func (r *rentRequestRepository) ExpireOlderThanForOwner(ctx context.Context, ownerID string, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, expireForOwnerQuery, ownerID, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const expireForTenantQuery = `UPDATE rent_requests SET status='Expired'
	WHERE tenant_id=$1 AND status IN ('Pending', 'Accepted') AND created_at < $2`

func (r *rentRequestRepository) ExpireOlderThanForTenant(ctx context.Context, tenantID string, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, expireForTenantQuery, tenantID, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *rentRequestRepository) ExpireAllOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE rent_requests SET status='Expired'
	          WHERE status IN ('Pending', 'Accepted') AND created_at < $1`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *rentRequestRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rent_requests`).Scan(&count)
	return count, err
}

func (r *rentRequestRepository) CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rent_requests WHERE status=$1`, status).Scan(&count)
	return count, err
}

func (r *rentRequestRepository) ListRecent(ctx context.Context, limit int32) ([]domain.RentRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rent_requests ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return r.scanAll(rows)
}

func (r *rentRequestRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rent_requests WHERE owner_id=$1`, ownerID)
	return err
}

func (r *rentRequestRepository) DeleteByTenant(ctx context.Context, tenantID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rent_requests WHERE tenant_id=$1`, tenantID)
	return err
}

func statusStrings(statuses []domain.RequestStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
