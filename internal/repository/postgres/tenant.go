package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

const tenantColumns = `id, name, mobile, area, caste, family_members, status, is_active, created_at`

func (r *tenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	query := `INSERT INTO tenants (id, name, mobile, area, caste, family_members, status, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Mobile, t.Area, t.Caste, t.FamilyMembers, t.Status, t.IsActive, t.CreatedAt)
	return mapError(err)
}

func (r *tenantRepository) scanOne(row *sql.Row) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	err := row.Scan(&t.ID, &t.Name, &t.Mobile, &t.Area, &t.Caste, &t.FamilyMembers, &t.Status, &t.IsActive, &t.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *tenantRepository) GetByMobile(ctx context.Context, mobile string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE mobile = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, mobile))
}

func (r *tenantRepository) SearchByNumber(ctx context.Context, digits string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants
	          WHERE regexp_replace(mobile, '\D', '', 'g') LIKE '%' || $1 || '%' LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, digits))
}

func (r *tenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	query := `UPDATE tenants SET name=$1, mobile=$2, area=$3, caste=$4, family_members=$5, status=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Mobile, t.Area, t.Caste, t.FamilyMembers, t.Status, t.ID)
	if err != nil {
		return mapError(err)
	}
	return requireRows(res)
}

func (r *tenantRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tenants SET is_active=$1 WHERE id=$2`, active, id)
	if err != nil {
		return mapError(err)
	}
	return requireRows(res)
}

func (r *tenantRepository) List(ctx context.Context, activeOnly bool) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []domain.Tenant
	for rows.Next() {
		var t domain.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Mobile, &t.Area, &t.Caste, &t.FamilyMembers, &t.Status, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (r *tenantRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM tenants`).Scan(&count)
	return count, err
}

func (r *tenantRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tenants WHERE id=$1`, id)
	return err
}
