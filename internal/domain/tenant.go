package domain

import "time"

type TenantStatus string

const (
	TenantStatusWaiting  TenantStatus = "Waiting"
	TenantStatusApproved TenantStatus = "Approved"
)

// Tenant is a renter looking for a room.
type Tenant struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Mobile        string       `json:"mobile"`
	Area          string       `json:"area"`
	Caste         string       `json:"caste"`
	FamilyMembers int32        `json:"totalFamilyMembers"`
	Status        TenantStatus `json:"status"`
	IsActive      bool         `json:"isActive"`
	CreatedAt     time.Time    `json:"createdAt"`
}
