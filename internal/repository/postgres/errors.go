package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
)

const uniqueViolation = "23505"

// mapError translates driver-level failures into the domain taxonomy.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateID
	}
	return err
}
