package repository

import (
	"context"
	"time"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
)

type OwnerRepository interface {
	Create(ctx context.Context, owner *domain.Owner) error
	GetByID(ctx context.Context, id string) (*domain.Owner, error)
	GetByWhatsApp(ctx context.Context, whatsapp string) (*domain.Owner, error)
	// SearchByNumber matches owners whose whatsapp contains the normalized digits.
	SearchByNumber(ctx context.Context, digits string) (*domain.Owner, error)
	Update(ctx context.Context, owner *domain.Owner) error
	UpdateAddress(ctx context.Context, id, address string) error
	List(ctx context.Context) ([]domain.Owner, error)
	Count(ctx context.Context) (int32, error)
	Delete(ctx context.Context, id string) error
}

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.Tenant, error)
	SearchByNumber(ctx context.Context, digits string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	SetActive(ctx context.Context, id string, active bool) error
	// List returns tenants newest-first; activeOnly hides deactivated tenants.
	List(ctx context.Context, activeOnly bool) ([]domain.Tenant, error)
	Count(ctx context.Context) (int32, error)
	Delete(ctx context.Context, id string) error
}

type RentRequestRepository interface {
	Create(ctx context.Context, req *domain.RentRequest) error
	GetByID(ctx context.Context, id string) (*domain.RentRequest, error)
	// ListByOwner returns the owner's requests newest-first.
	ListByOwner(ctx context.Context, ownerID string, includeExpired bool) ([]domain.RentRequest, error)
	// ListByTenant returns the tenant's requests newest-first, Expired included.
	ListByTenant(ctx context.Context, tenantID string) ([]domain.RentRequest, error)
	// LatestForPair returns the most recent request for the exact pair, any
	// status, or domain.ErrNotFound when none exists.
	LatestForPair(ctx context.Context, ownerID, tenantID string) (*domain.RentRequest, error)
	// PendingForPair returns the most recent Pending request for the pair, or
	// domain.ErrNotFound when none exists.
	PendingForPair(ctx context.Context, ownerID, tenantID string) (*domain.RentRequest, error)
	// ListPendingByOwner returns the owner's Pending requests oldest-first.
	ListPendingByOwner(ctx context.Context, ownerID string) ([]domain.RentRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
	// BulkUpdateStatus transitions all of a tenant's requests currently in one
	// of the from statuses. The update is a single statement, so readers never
	// observe a partial application.
	BulkUpdateStatus(ctx context.Context, tenantID string, from []domain.RequestStatus, to domain.RequestStatus) (int64, error)
	// ExpireOlderThanForOwner / ForTenant mark the subject's Pending and
	// Accepted requests created before the cutoff as Expired. Idempotent.
	ExpireOlderThanForOwner(ctx context.Context, ownerID string, cutoff time.Time) (int64, error)
	ExpireOlderThanForTenant(ctx context.Context, tenantID string, cutoff time.Time) (int64, error)
	// ExpireAllOlderThan is the store-wide variant used by the scheduled sweep.
	ExpireAllOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Count(ctx context.Context) (int32, error)
	CountByStatus(ctx context.Context, status domain.RequestStatus) (int32, error)
	ListRecent(ctx context.Context, limit int32) ([]domain.RentRequest, error)
	DeleteByOwner(ctx context.Context, ownerID string) error
	DeleteByTenant(ctx context.Context, tenantID string) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// Conversation returns all messages exchanged between the two ids,
	// oldest-first.
	Conversation(ctx context.Context, userID, otherID string) ([]domain.Message, error)
	// MarkRead marks unread messages addressed to receiverID as read; senderID
	// narrows the update to one conversation when non-empty.
	MarkRead(ctx context.Context, receiverID, senderID string) error
	CountUnread(ctx context.Context, receiverID, senderID string) (int32, error)
	// UnreadBySender groups the receiver's unread messages per sender.
	UnreadBySender(ctx context.Context, receiverID string) ([]domain.UnreadSummary, error)
}
