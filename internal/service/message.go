package service

import (
	"context"
	"fmt"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

type messageService struct {
	messageRepo repository.MessageRepository
	adminID     string
}

func NewMessageService(messageRepo repository.MessageRepository, adminID string) MessageService {
	return &messageService{messageRepo: messageRepo, adminID: adminID}
}

func (s *messageService) Send(ctx context.Context, senderID string, senderRole domain.Role, receiverID string, receiverRole domain.Role, content string) (*domain.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("empty message content: %w", domain.ErrInvalidStatus)
	}
	msg := &domain.Message{
		SenderID:     senderID,
		SenderRole:   senderRole,
		ReceiverID:   receiverID,
		ReceiverRole: receiverRole,
		Content:      content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *messageService) Conversation(ctx context.Context, callerID string, callerRole domain.Role, otherID string) ([]domain.Message, error) {
	// Users only converse with the admin; the admin picks the counterparty.
	if callerRole == domain.RoleAdmin {
		if otherID == "" {
			return nil, fmt.Errorf("missing counterparty id: %w", domain.ErrNotFound)
		}
		return s.messageRepo.Conversation(ctx, s.adminID, otherID)
	}
	return s.messageRepo.Conversation(ctx, callerID, s.adminID)
}

func (s *messageService) MarkRead(ctx context.Context, receiverID, senderID string) error {
	return s.messageRepo.MarkRead(ctx, receiverID, senderID)
}

func (s *messageService) UnreadCount(ctx context.Context, userID string) (int32, error) {
	return s.messageRepo.CountUnread(ctx, userID, s.adminID)
}

func (s *messageService) UnreadBySender(ctx context.Context) ([]domain.UnreadSummary, error) {
	return s.messageRepo.UnreadBySender(ctx, s.adminID)
}
