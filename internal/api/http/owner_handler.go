package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/service"
)

type OwnerHandler struct {
	ownerService   service.OwnerService
	requestService service.RequestService
}

func NewOwnerHandler(ownerService service.OwnerService, requestService service.RequestService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService, requestService: requestService}
}

// mustMatchCaller rejects requests where the path id belongs to another user.
// Admin tokens pass.
func mustMatchCaller(w http.ResponseWriter, r *http.Request, id string) bool {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return false
	}
	if caller.Role != domain.RoleAdmin && caller.ID != id {
		writeJSON(w, http.StatusForbidden, errorBody{Error: "insufficient permissions"})
		return false
	}
	return true
}

func (h *OwnerHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !mustMatchCaller(w, r, id) {
		return
	}

	owner, err := h.ownerService.GetOwner(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, owner)
}

type updateOwnerRequest struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`
}

func (h *OwnerHandler) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !mustMatchCaller(w, r, id) {
		return
	}

	var req updateOwnerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	owner, err := h.ownerService.UpdateOwner(r.Context(), id, req.Name, req.WhatsApp, req.Address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, owner)
}

type updateAddressRequest struct {
	Address string `json:"address"`
}

func (h *OwnerHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !mustMatchCaller(w, r, id) {
		return
	}

	var req updateAddressRequest
	if !decodeBody(w, r, &req) {
		return
	}

	owner, err := h.ownerService.UpdateAddress(r.Context(), id, req.Address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, owner)
}

func (h *OwnerHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.ownerService.ListTenants(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

type createRequestRequest struct {
	TenantID string `json:"tenantId"`
}

func (h *OwnerHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	var req createRequestRequest
	if !decodeBody(w, r, &req) {
		return
	}

	request, err := h.requestService.CreateRequest(r.Context(), caller.ID, req.TenantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *OwnerHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !mustMatchCaller(w, r, id) {
		return
	}

	requests, err := h.requestService.ListForOwner(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
