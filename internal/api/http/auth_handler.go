package http

import (
	"net/http"

	"github.com/RupeshP0713/roomrent-backend/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerOwnerRequest struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`
}

func (h *AuthHandler) RegisterOwner(w http.ResponseWriter, r *http.Request) {
	var req registerOwnerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	owner, token, err := h.authService.RegisterOwner(r.Context(), req.Name, req.WhatsApp, req.Address)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"owner": owner,
		"token": token,
	})
}

type loginOwnerRequest struct {
	WhatsApp string `json:"whatsapp"`
}

func (h *AuthHandler) LoginOwner(w http.ResponseWriter, r *http.Request) {
	var req loginOwnerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	owner, token, err := h.authService.LoginOwner(r.Context(), req.WhatsApp)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"owner": owner,
		"token": token,
	})
}

type registerTenantRequest struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Caste         string `json:"caste"`
	FamilyMembers int32  `json:"familyMembers"`
}

func (h *AuthHandler) RegisterTenant(w http.ResponseWriter, r *http.Request) {
	var req registerTenantRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tenant, token, err := h.authService.RegisterTenant(r.Context(), req.Name, req.Mobile, req.Caste, req.FamilyMembers)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"tenant": tenant,
		"token":  token,
	})
}

type loginTenantRequest struct {
	Mobile string `json:"mobile"`
}

func (h *AuthHandler) LoginTenant(w http.ResponseWriter, r *http.Request) {
	var req loginTenantRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tenant, token, err := h.authService.LoginTenant(r.Context(), req.Mobile)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tenant": tenant,
		"token":  token,
	})
}

type adminLoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.authService.LoginAdmin(r.Context(), req.ID, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
	})
}
