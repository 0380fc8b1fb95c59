package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/RupeshP0713/roomrent-backend/internal/config"
	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/identity"
	"github.com/RupeshP0713/roomrent-backend/internal/logger"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
	"github.com/RupeshP0713/roomrent-backend/internal/security"
)

type authService struct {
	ownerRepo  repository.OwnerRepository
	tenantRepo repository.TenantRepository
	tokens     security.TokenManager
	admin      config.AdminConfig
}

func NewAuthService(
	ownerRepo repository.OwnerRepository,
	tenantRepo repository.TenantRepository,
	tokens security.TokenManager,
	admin config.AdminConfig,
) AuthService {
	return &authService{
		ownerRepo:  ownerRepo,
		tenantRepo: tenantRepo,
		tokens:     tokens,
		admin:      admin,
	}
}

func (s *authService) RegisterOwner(ctx context.Context, name, whatsapp, address string) (*domain.Owner, string, error) {
	existing, err := s.ownerRepo.GetByWhatsApp(ctx, whatsapp)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("owner with this whatsapp number: %w", domain.ErrAlreadyExists)
	}

	owner := &domain.Owner{
		ID:       identity.OwnerID(whatsapp),
		Name:     name,
		WhatsApp: whatsapp,
		Address:  address,
	}
	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return nil, "", fmt.Errorf("owner with this whatsapp number: %w", domain.ErrAlreadyExists)
		}
		return nil, "", err
	}

	token, err := s.tokens.GenerateUserToken(owner.ID, domain.RoleOwner)
	if err != nil {
		return nil, "", err
	}
	logger.Info("owner registered", "owner_id", owner.ID)
	return owner, token, nil
}

func (s *authService) LoginOwner(ctx context.Context, whatsapp string) (*domain.Owner, string, error) {
	owner, err := s.ownerRepo.GetByWhatsApp(ctx, whatsapp)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.GenerateUserToken(owner.ID, domain.RoleOwner)
	if err != nil {
		return nil, "", err
	}
	return owner, token, nil
}

func (s *authService) RegisterTenant(ctx context.Context, name, mobile, caste string, familyMembers int32) (*domain.Tenant, string, error) {
	if caste == "" || familyMembers < 1 {
		return nil, "", fmt.Errorf("caste and family members are required: %w", domain.ErrInvalidStatus)
	}

	existing, err := s.tenantRepo.GetByMobile(ctx, mobile)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("tenant with this mobile number: %w", domain.ErrAlreadyExists)
	}

	tenant := &domain.Tenant{
		ID:            identity.TenantID(mobile),
		Name:          name,
		Mobile:        mobile,
		Caste:         caste,
		FamilyMembers: familyMembers,
		Status:        domain.TenantStatusWaiting,
		IsActive:      true,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return nil, "", fmt.Errorf("tenant with this mobile number: %w", domain.ErrAlreadyExists)
		}
		return nil, "", err
	}

	token, err := s.tokens.GenerateUserToken(tenant.ID, domain.RoleTenant)
	if err != nil {
		return nil, "", err
	}
	logger.Info("tenant registered", "tenant_id", tenant.ID)
	return tenant, token, nil
}

func (s *authService) LoginTenant(ctx context.Context, mobile string) (*domain.Tenant, string, error) {
	tenant, err := s.tenantRepo.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.GenerateUserToken(tenant.ID, domain.RoleTenant)
	if err != nil {
		return nil, "", err
	}
	return tenant, token, nil
}

func (s *authService) LoginAdmin(ctx context.Context, id, password string) (string, error) {
	if id != s.admin.ID {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := s.tokens.GenerateAdminToken(id)
	if err != nil {
		return "", err
	}
	logger.Info("admin authenticated", "admin_id", id)
	return token, nil
}
