package domain

import "time"

// Owner is a landlord offering a room for rent.
type Owner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WhatsApp  string    `json:"whatsapp"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
