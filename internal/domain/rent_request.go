package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusAccepted RequestStatus = "Accepted"
	RequestStatusRejected RequestStatus = "Rejected"
	RequestStatusExpired  RequestStatus = "Expired"
)

// IsTerminal reports whether no further transition may leave the status.
// Every status except Pending is terminal.
func (s RequestStatus) IsTerminal() bool {
	return s != RequestStatusPending
}

// ValidResponse reports whether a tenant may set this status on a pending
// request. Expired is reserved for the sweeper, Pending is the initial state.
func (s RequestStatus) ValidResponse() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

type RentRequest struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"ownerId"`
	TenantID  string        `json:"tenantId"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"timestamp"`
}

// OwnerRequestView is an owner's view of one of their requests, enriched with
// the tenant's display fields. Dangling tenant references resolve to "Unknown".
type OwnerRequestView struct {
	ID                  string        `json:"id"`
	TenantID            string        `json:"tenantId"`
	TenantName          string        `json:"tenantName"`
	TenantMobile        string        `json:"tenantMobile"`
	TenantArea          string        `json:"tenantArea"`
	TenantCaste         string        `json:"tenantCaste"`
	TenantFamilyMembers int32         `json:"tenantFamilyMembers"`
	Status              RequestStatus `json:"status"`
	CreatedAt           time.Time     `json:"timestamp"`
}

// TenantRequestView is a tenant's view of a request. The owner's contact
// fields are only populated while the request is Accepted.
type TenantRequestView struct {
	ID            string        `json:"id"`
	OwnerID       string        `json:"ownerId"`
	OwnerName     string        `json:"ownerName"`
	OwnerWhatsApp *string       `json:"ownerWhatsapp"`
	OwnerAddress  *string       `json:"ownerAddress"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"timestamp"`
}
