package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/identity"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

type searchService struct {
	ownerRepo  repository.OwnerRepository
	tenantRepo repository.TenantRepository
}

func NewSearchService(ownerRepo repository.OwnerRepository, tenantRepo repository.TenantRepository) SearchService {
	return &searchService{ownerRepo: ownerRepo, tenantRepo: tenantRepo}
}

// SearchByNumber looks up a user by phone number, owners first. The input is
// normalized to digits and must be a full 10-digit number.
func (s *searchService) SearchByNumber(ctx context.Context, number string) (*SearchResult, error) {
	digits := identity.NormalizeNumber(number)
	if len(digits) != 10 {
		return nil, fmt.Errorf("search requires a 10 digit number: %w", domain.ErrNotFound)
	}

	owner, err := s.ownerRepo.SearchByNumber(ctx, digits)
	if err == nil {
		return &SearchResult{Found: true, Role: domain.RoleOwner, Owner: owner}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("search owners: %w", err)
	}

	tenant, err := s.tenantRepo.SearchByNumber(ctx, digits)
	if err == nil {
		return &SearchResult{Found: true, Role: domain.RoleTenant, Tenant: tenant}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("search tenants: %w", err)
	}

	return &SearchResult{Found: false}, nil
}
