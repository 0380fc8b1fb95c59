package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

type ownerRepository struct {
	db *sql.DB
}

func NewOwnerRepository(db *sql.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) Create(ctx context.Context, o *domain.Owner) error {
	query := `INSERT INTO owners (id, name, whatsapp, address, created_at) VALUES ($1, $2, $3, $4, $5)`
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, query, o.ID, o.Name, o.WhatsApp, o.Address, o.CreatedAt)
	return mapError(err)
}

func (r *ownerRepository) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	o := &domain.Owner{}
	query := `SELECT id, name, whatsapp, address, created_at FROM owners WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.WhatsApp, &o.Address, &o.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return o, nil
}

func (r *ownerRepository) GetByWhatsApp(ctx context.Context, whatsapp string) (*domain.Owner, error) {
	o := &domain.Owner{}
	query := `SELECT id, name, whatsapp, address, created_at FROM owners WHERE whatsapp = $1`
	err := r.db.QueryRowContext(ctx, query, whatsapp).Scan(&o.ID, &o.Name, &o.WhatsApp, &o.Address, &o.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return o, nil
}

func (r *ownerRepository) SearchByNumber(ctx context.Context, digits string) (*domain.Owner, error) {
	o := &domain.Owner{}
	query := `SELECT id, name, whatsapp, address, created_at FROM owners
	          WHERE regexp_replace(whatsapp, '\D', '', 'g') LIKE '%' || $1 || '%' LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, digits).Scan(&o.ID, &o.Name, &o.WhatsApp, &o.Address, &o.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return o, nil
}

func (r *ownerRepository) Update(ctx context.Context, o *domain.Owner) error {
	query := `UPDATE owners SET name=$1, whatsapp=$2, address=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, o.Name, o.WhatsApp, o.Address, o.ID)
	if err != nil {
		return mapError(err)
	}
	return requireRows(res)
}

func (r *ownerRepository) UpdateAddress(ctx context.Context, id, address string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE owners SET address=$1 WHERE id=$2`, address, id)
	if err != nil {
		return mapError(err)
	}
	return requireRows(res)
}

func (r *ownerRepository) List(ctx context.Context) ([]domain.Owner, error) {
	query := `SELECT id, name, whatsapp, address, created_at FROM owners ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []domain.Owner
	for rows.Next() {
		var o domain.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.WhatsApp, &o.Address, &o.CreatedAt); err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

func (r *ownerRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM owners`).Scan(&count)
	return count, err
}

func (r *ownerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id=$1`, id)
	return err
}

// requireRows converts a zero-row update into domain.ErrNotFound.
func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
