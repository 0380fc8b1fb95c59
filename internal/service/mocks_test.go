package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
)

// MockOwnerRepo
type MockOwnerRepo struct {
	mock.Mock
}

func (m *MockOwnerRepo) Create(ctx context.Context, owner *domain.Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}
func (m *MockOwnerRepo) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}
func (m *MockOwnerRepo) GetByWhatsApp(ctx context.Context, whatsapp string) (*domain.Owner, error) {
	args := m.Called(ctx, whatsapp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}
func (m *MockOwnerRepo) SearchByNumber(ctx context.Context, digits string) (*domain.Owner, error) {
	args := m.Called(ctx, digits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}
func (m *MockOwnerRepo) Update(ctx context.Context, owner *domain.Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}
func (m *MockOwnerRepo) UpdateAddress(ctx context.Context, id, address string) error {
	args := m.Called(ctx, id, address)
	return args.Error(0)
}
func (m *MockOwnerRepo) List(ctx context.Context) ([]domain.Owner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Owner), args.Error(1)
}
func (m *MockOwnerRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockOwnerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTenantRepo
type MockTenantRepo struct {
	mock.Mock
}

func (m *MockTenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}
func (m *MockTenantRepo) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) GetByMobile(ctx context.Context, mobile string) (*domain.Tenant, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) SearchByNumber(ctx context.Context, digits string) (*domain.Tenant, error) {
	args := m.Called(ctx, digits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) Update(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}
func (m *MockTenantRepo) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}
func (m *MockTenantRepo) List(ctx context.Context, activeOnly bool) ([]domain.Tenant, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockTenantRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.RentRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id string) (*domain.RentRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByOwner(ctx context.Context, ownerID string, includeExpired bool) ([]domain.RentRequest, error) {
	args := m.Called(ctx, ownerID, includeExpired)
	return args.Get(0).([]domain.RentRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.RentRequest, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.RentRequest), args.Error(1)
}
func (m *MockRequestRepo) LatestForPair(ctx context.Context, ownerID, tenantID string) (*domain.RentRequest, error) {
	args := m.Called(ctx, ownerID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRequest), args.Error(1)
}
func (m *MockRequestRepo) PendingForPair(ctx context.Context, ownerID, tenantID string) (*domain.RentRequest, error) {
	args := m.Called(ctx, ownerID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRequest), args.Error(1)
}
func (m *MockRequestRepo) ListPendingByOwner(ctx context.Context, ownerID string) ([]domain.RentRequest, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.RentRequest), args.Error(1)
}
func (m *MockRequestRepo) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockRequestRepo) BulkUpdateStatus(ctx context.Context, tenantID string, from []domain.RequestStatus, to domain.RequestStatus) (int64, error) {
	args := m.Called(ctx, tenantID, from, to)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRequestRepo) ExpireOlderThanForOwner(ctx context.Context, ownerID string, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, ownerID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRequestRepo) ExpireOlderThanForTenant(ctx context.Context, tenantID string, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, tenantID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRequestRepo) ExpireAllOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRequestRepo) Count(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRequestRepo) CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRequestRepo) ListRecent(ctx context.Context, limit int32) ([]domain.RentRequest, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.RentRequest), args.Error(1)
}
func (m *MockRequestRepo) DeleteByOwner(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}
func (m *MockRequestRepo) DeleteByTenant(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

// MockMessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageRepo) Conversation(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	args := m.Called(ctx, userID, otherID)
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockMessageRepo) MarkRead(ctx context.Context, receiverID, senderID string) error {
	args := m.Called(ctx, receiverID, senderID)
	return args.Error(0)
}
func (m *MockMessageRepo) CountUnread(ctx context.Context, receiverID, senderID string) (int32, error) {
	args := m.Called(ctx, receiverID, senderID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockMessageRepo) UnreadBySender(ctx context.Context, receiverID string) ([]domain.UnreadSummary, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).([]domain.UnreadSummary), args.Error(1)
}
