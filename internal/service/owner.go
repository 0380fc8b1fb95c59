package service

import (
	"context"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

type ownerService struct {
	ownerRepo  repository.OwnerRepository
	tenantRepo repository.TenantRepository
}

func NewOwnerService(ownerRepo repository.OwnerRepository, tenantRepo repository.TenantRepository) OwnerService {
	return &ownerService{ownerRepo: ownerRepo, tenantRepo: tenantRepo}
}

func (s *ownerService) GetOwner(ctx context.Context, id string) (*domain.Owner, error) {
	return s.ownerRepo.GetByID(ctx, id)
}

func (s *ownerService) UpdateOwner(ctx context.Context, id, name, whatsapp, address string) (*domain.Owner, error) {
	owner, err := s.ownerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner.Name = name
	owner.WhatsApp = whatsapp
	owner.Address = address
	if err := s.ownerRepo.Update(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *ownerService) UpdateAddress(ctx context.Context, id, address string) (*domain.Owner, error) {
	if err := s.ownerRepo.UpdateAddress(ctx, id, address); err != nil {
		return nil, err
	}
	return s.ownerRepo.GetByID(ctx, id)
}

func (s *ownerService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	// Deactivated tenants are hidden from the browse view.
	return s.tenantRepo.List(ctx, true)
}
