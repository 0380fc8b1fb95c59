package http

import (
	"net/http"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/identity"
	"github.com/RupeshP0713/roomrent-backend/internal/service"
)

type MessageHandler struct {
	messageService service.MessageService
	adminID        string
}

func NewMessageHandler(messageService service.MessageService, adminID string) *MessageHandler {
	return &MessageHandler{messageService: messageService, adminID: adminID}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	var req sendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Owners and tenants can only message the admin; the admin names the
	// recipient explicitly.
	receiverID := h.adminID
	receiverRole := domain.RoleAdmin
	if caller.Role == domain.RoleAdmin {
		receiverID = req.ReceiverID
		receiverRole = roleForUserID(req.ReceiverID)
	}

	msg, err := h.messageService.Send(r.Context(), caller.ID, caller.Role, receiverID, receiverRole, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	otherID := r.URL.Query().Get("with")

	messages, err := h.messageService.Conversation(r.Context(), caller.ID, caller.Role, otherID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

type markReadRequest struct {
	SenderID string `json:"senderId"`
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	var req markReadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	senderID := req.SenderID
	if caller.Role != domain.RoleAdmin {
		senderID = h.adminID
	}

	if err := h.messageService.MarkRead(r.Context(), caller.ID, senderID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "marked as read"})
}

func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	count, err := h.messageService.UnreadCount(r.Context(), caller.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"unreadCount": count})
}

func (h *MessageHandler) UnreadBySender(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.messageService.UnreadBySender(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func roleForUserID(id string) domain.Role {
	if identity.IsOwnerID(id) {
		return domain.RoleOwner
	}
	return domain.RoleTenant
}
