package service

import (
	"context"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

type tenantService struct {
	tenantRepo repository.TenantRepository
	ownerRepo  repository.OwnerRepository
	requests   RequestService
}

func NewTenantService(
	tenantRepo repository.TenantRepository,
	ownerRepo repository.OwnerRepository,
	requests RequestService,
) TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		ownerRepo:  ownerRepo,
		requests:   requests,
	}
}

func (s *tenantService) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	return s.tenantRepo.GetByID(ctx, id)
}

func (s *tenantService) UpdateTenant(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	current, err := s.tenantRepo.GetByID(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}
	if tenant.Name != "" {
		current.Name = tenant.Name
	}
	if tenant.Mobile != "" {
		current.Mobile = tenant.Mobile
	}
	if tenant.Status != "" {
		current.Status = tenant.Status
	}
	if tenant.Area != "" {
		current.Area = tenant.Area
	}
	if tenant.Caste != "" {
		current.Caste = tenant.Caste
	}
	if tenant.FamilyMembers != 0 {
		current.FamilyMembers = tenant.FamilyMembers
	}
	if err := s.tenantRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *tenantService) SetActive(ctx context.Context, id string, active bool) (*domain.Tenant, error) {
	if err := s.tenantRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	// Leaving the market withdraws all live interest: every Pending or
	// Accepted request for the tenant is rejected. Reactivation does not
	// restore them.
	if !active {
		if _, err := s.requests.CascadeDeactivate(ctx, id); err != nil {
			return nil, err
		}
	}
	return s.tenantRepo.GetByID(ctx, id)
}

func (s *tenantService) AvailableRooms(ctx context.Context) (int32, error) {
	return s.ownerRepo.Count(ctx)
}
