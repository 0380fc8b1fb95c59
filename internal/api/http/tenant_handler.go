package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/service"
)

type TenantHandler struct {
	tenantService  service.TenantService
	requestService service.RequestService
}

func NewTenantHandler(tenantService service.TenantService, requestService service.RequestService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService, requestService: requestService}
}

func (h *TenantHandler) GetTenant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !mustMatchCaller(w, r, id) {
		return
	}

	tenant, err := h.tenantService.GetTenant(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

type updateTenantRequest struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Area          string `json:"area"`
	Caste         string `json:"caste"`
	FamilyMembers int32  `json:"familyMembers"`
}

func (h *TenantHandler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !mustMatchCaller(w, r, id) {
		return
	}

	var req updateTenantRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tenant, err := h.tenantService.UpdateTenant(r.Context(), &domain.Tenant{
		ID:            id,
		Name:          req.Name,
		Mobile:        req.Mobile,
		Area:          req.Area,
		Caste:         req.Caste,
		FamilyMembers: req.FamilyMembers,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

type setActiveRequest struct {
	IsActive bool `json:"isActive"`
}

func (h *TenantHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !mustMatchCaller(w, r, id) {
		return
	}

	var req setActiveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tenant, err := h.tenantService.SetActive(r.Context(), id, req.IsActive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	count, err := h.tenantService.AvailableRooms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"availableRooms": count})
}

func (h *TenantHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !mustMatchCaller(w, r, id) {
		return
	}

	requests, err := h.requestService.ListForTenant(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

type respondRequest struct {
	Status domain.RequestStatus `json:"status"`
}

func (h *TenantHandler) RespondToRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
		return
	}

	requestID := mux.Vars(r)["requestId"]

	var req respondRequest
	if !decodeBody(w, r, &req) {
		return
	}

	request, err := h.requestService.Respond(r.Context(), caller.ID, requestID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}
