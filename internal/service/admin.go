package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/logger"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

const transactionLogLimit = 100

type adminService struct {
	ownerRepo   repository.OwnerRepository
	tenantRepo  repository.TenantRepository
	requestRepo repository.RentRequestRepository
}

func NewAdminService(
	ownerRepo repository.OwnerRepository,
	tenantRepo repository.TenantRepository,
	requestRepo repository.RentRequestRepository,
) AdminService {
	return &adminService{
		ownerRepo:   ownerRepo,
		tenantRepo:  tenantRepo,
		requestRepo: requestRepo,
	}
}

func (s *adminService) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error
	if stats.TotalOwners, err = s.ownerRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalTenants, err = s.tenantRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRequests, err = s.requestRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.requestRepo.CountByStatus(ctx, domain.RequestStatusPending); err != nil {
		return nil, err
	}
	if stats.AcceptedRequests, err = s.requestRepo.CountByStatus(ctx, domain.RequestStatusAccepted); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.Owner, []domain.Tenant, error) {
	owners, err := s.ownerRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	tenants, err := s.tenantRepo.List(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	return owners, tenants, nil
}

func (s *adminService) DeleteUser(ctx context.Context, role domain.Role, id string) error {
	switch role {
	case domain.RoleOwner:
		if err := s.ownerRepo.Delete(ctx, id); err != nil {
			return err
		}
		if err := s.requestRepo.DeleteByOwner(ctx, id); err != nil {
			return err
		}
	case domain.RoleTenant:
		if err := s.tenantRepo.Delete(ctx, id); err != nil {
			return err
		}
		if err := s.requestRepo.DeleteByTenant(ctx, id); err != nil {
			return err
		}
	default:
		return fmt.Errorf("role %q: %w", role, domain.ErrInvalidStatus)
	}

	logger.Info("user deleted", "role", role, "user_id", id)
	return nil
}

func (s *adminService) GetTransactions(ctx context.Context) ([]Transaction, error) {
	reqs, err := s.requestRepo.ListRecent(ctx, transactionLogLimit)
	if err != nil {
		return nil, err
	}

	txs := make([]Transaction, 0, len(reqs))
	for _, req := range reqs {
		tx := Transaction{
			ID:         req.ID,
			OwnerName:  unknownName,
			TenantName: unknownName,
			Status:     req.Status,
			CreatedAt:  req.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		owner, err := s.ownerRepo.GetByID(ctx, req.OwnerID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if owner != nil {
			tx.OwnerName = owner.Name
		}
		tenant, err := s.tenantRepo.GetByID(ctx, req.TenantID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if tenant != nil {
			tx.TenantName = tenant.Name
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
