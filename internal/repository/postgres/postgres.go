package postgres

import (
	"database/sql"

	"github.com/RupeshP0713/roomrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.OwnerRepository
	repository.TenantRepository
	repository.RentRequestRepository
	repository.MessageRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		OwnerRepository:       NewOwnerRepository(db),
		TenantRepository:      NewTenantRepository(db),
		RentRequestRepository: NewRentRequestRepository(db),
		MessageRepository:     NewMessageRepository(db),
	}
}
