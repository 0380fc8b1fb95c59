package service

import (
	"context"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
)

type AuthService interface {
	RegisterOwner(ctx context.Context, name, whatsapp, address string) (*domain.Owner, string, error)
	LoginOwner(ctx context.Context, whatsapp string) (*domain.Owner, string, error)
	RegisterTenant(ctx context.Context, name, mobile, caste string, familyMembers int32) (*domain.Tenant, string, error)
	LoginTenant(ctx context.Context, mobile string) (*domain.Tenant, string, error)
	LoginAdmin(ctx context.Context, id, password string) (string, error)
}

type OwnerService interface {
	GetOwner(ctx context.Context, id string) (*domain.Owner, error)
	UpdateOwner(ctx context.Context, id, name, whatsapp, address string) (*domain.Owner, error)
	UpdateAddress(ctx context.Context, id, address string) (*domain.Owner, error)
	// ListTenants returns active tenants, newest first, for an owner's browse view.
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

type TenantService interface {
	GetTenant(ctx context.Context, id string) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	// SetActive toggles a tenant's market presence. Deactivation cascades: all
	// of the tenant's live requests are rejected.
	SetActive(ctx context.Context, id string, active bool) (*domain.Tenant, error)
	// AvailableRooms counts registered owners.
	AvailableRooms(ctx context.Context) (int32, error)
}

// RequestService is the rent-request lifecycle engine: admission control,
// expiry sweeping, and status transitions.
type RequestService interface {
	// CreateRequest admits and stores a new rent request from an owner to a
	// tenant. A denial is returned as *domain.AdmissionError.
	CreateRequest(ctx context.Context, ownerID, tenantID string) (*domain.RentRequest, error)
	// ListForOwner sweeps the owner's stale requests, then returns the
	// remaining ones (Expired excluded) enriched with tenant display fields.
	ListForOwner(ctx context.Context, ownerID string) ([]domain.OwnerRequestView, error)
	// ListForTenant sweeps the tenant's stale requests, then returns all of
	// them (Expired included) enriched with owner display fields.
	ListForTenant(ctx context.Context, tenantID string) ([]domain.TenantRequestView, error)
	// Respond applies the tenant's accept/reject decision to a pending request.
	Respond(ctx context.Context, callerID, requestID string, status domain.RequestStatus) (*domain.RentRequest, error)
	// CascadeDeactivate rejects every live (Pending or Accepted) request held
	// by the tenant. Idempotent; safe to retry.
	CascadeDeactivate(ctx context.Context, tenantID string) (int64, error)
	// ExpireStale runs the store-wide expiry sweep and returns the number of
	// requests transitioned.
	ExpireStale(ctx context.Context) (int64, error)
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalOwners      int32 `json:"totalOwners"`
	TotalTenants     int32 `json:"totalTenants"`
	TotalRequests    int32 `json:"totalRequests"`
	PendingRequests  int32 `json:"pendingRequests"`
	AcceptedRequests int32 `json:"acceptedRequests"`
}

// Transaction is one row of the admin transaction log.
type Transaction struct {
	ID         string               `json:"id"`
	OwnerName  string               `json:"ownerName"`
	TenantName string               `json:"tenantName"`
	Status     domain.RequestStatus `json:"status"`
	CreatedAt  string               `json:"timestamp"`
}

type AdminService interface {
	GetStats(ctx context.Context) (*Stats, error)
	ListUsers(ctx context.Context) ([]domain.Owner, []domain.Tenant, error)
	// DeleteUser removes the user and, as a cascade, every rent request they
	// participate in. Role must be "owner" or "tenant".
	DeleteUser(ctx context.Context, role domain.Role, id string) error
	GetTransactions(ctx context.Context) ([]Transaction, error)
}

type MessageService interface {
	Send(ctx context.Context, senderID string, senderRole domain.Role, receiverID string, receiverRole domain.Role, content string) (*domain.Message, error)
	// Conversation returns the message thread between a user and the admin.
	// Admin callers pass the counterparty id; users always converse with admin.
	Conversation(ctx context.Context, callerID string, callerRole domain.Role, otherID string) ([]domain.Message, error)
	MarkRead(ctx context.Context, receiverID, senderID string) error
	UnreadCount(ctx context.Context, userID string) (int32, error)
	UnreadBySender(ctx context.Context) ([]domain.UnreadSummary, error)
}

// SearchResult is the outcome of a lookup by phone number.
type SearchResult struct {
	Found  bool           `json:"found"`
	Role   domain.Role    `json:"role,omitempty"`
	Owner  *domain.Owner  `json:"owner,omitempty"`
	Tenant *domain.Tenant `json:"tenant,omitempty"`
}

type SearchService interface {
	SearchByNumber(ctx context.Context, number string) (*SearchResult, error)
}
