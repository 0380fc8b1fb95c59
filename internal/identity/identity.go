// Package identity derives stable entity ids from contact numbers. The rest of
// the system treats the resulting ids as opaque strings.
package identity

import "strings"

const (
	ownerPrefix  = "OWNER_"
	tenantPrefix = "TENANT_"
)

// NormalizeNumber strips every non-digit character from a phone number.
func NormalizeNumber(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// OwnerID derives an owner id from a WhatsApp number.
func OwnerID(whatsapp string) string {
	return ownerPrefix + NormalizeNumber(whatsapp)
}

// TenantID derives a tenant id from a mobile number.
func TenantID(mobile string) string {
	return tenantPrefix + NormalizeNumber(mobile)
}

// IsOwnerID reports whether the id carries the owner prefix.
func IsOwnerID(id string) bool {
	return strings.HasPrefix(id, ownerPrefix)
}
