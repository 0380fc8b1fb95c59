package domain

import "time"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleTenant Role = "tenant"
	RoleAdmin  Role = "admin"
)

// Message is a single chat message between a user and the admin.
type Message struct {
	ID           int64     `json:"id"`
	SenderID     string    `json:"senderId"`
	SenderRole   Role      `json:"senderRole"`
	ReceiverID   string    `json:"receiverId"`
	ReceiverRole Role      `json:"receiverRole"`
	Content      string    `json:"content"`
	IsRead       bool      `json:"isRead"`
	CreatedAt    time.Time `json:"timestamp"`
}

// UnreadSummary is an admin-side aggregate of unread messages from one sender.
type UnreadSummary struct {
	SenderID   string `json:"senderId"`
	SenderRole Role   `json:"senderRole"`
	Count      int32  `json:"count"`
}
