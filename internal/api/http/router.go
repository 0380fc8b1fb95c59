// Package http exposes the service layer over an HTTP/JSON API.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/security"
	"github.com/RupeshP0713/roomrent-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth    service.AuthService
	Owner   service.OwnerService
	Tenant  service.TenantService
	Request service.RequestService
	Admin   service.AdminService
	Message service.MessageService
	Search  service.SearchService
}

// NewRouter builds the full route table. Public routes are registration,
// login, health and search; everything else requires a bearer token.
func NewRouter(svcs Services, tm security.TokenManager, adminID string) *mux.Router {
	auth := NewAuthMiddleware(tm)

	authHandler := NewAuthHandler(svcs.Auth)
	ownerHandler := NewOwnerHandler(svcs.Owner, svcs.Request)
	tenantHandler := NewTenantHandler(svcs.Tenant, svcs.Request)
	adminHandler := NewAdminHandler(svcs.Admin)
	messageHandler := NewMessageHandler(svcs.Message, adminID)
	searchHandler := NewSearchHandler(svcs.Search)

	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", handleHealth).Methods("GET")
	api.HandleFunc("/search/{number}", searchHandler.SearchByNumber).Methods("GET")

	// Auth
	api.HandleFunc("/owner/register", authHandler.RegisterOwner).Methods("POST")
	api.HandleFunc("/owner/login", authHandler.LoginOwner).Methods("POST")
	api.HandleFunc("/tenant/register", authHandler.RegisterTenant).Methods("POST")
	api.HandleFunc("/tenant/login", authHandler.LoginTenant).Methods("POST")
	api.HandleFunc("/admin/login", authHandler.LoginAdmin).Methods("POST")

	// Owner
	api.HandleFunc("/owner/request", auth.Require(ownerHandler.CreateRequest, domain.RoleOwner)).Methods("POST")
	api.HandleFunc("/owner/{id}/requests", auth.Require(ownerHandler.ListRequests, domain.RoleOwner, domain.RoleAdmin)).Methods("GET")
	api.HandleFunc("/owner/{id}/tenants", auth.Require(ownerHandler.ListTenants, domain.RoleOwner, domain.RoleAdmin)).Methods("GET")
	api.HandleFunc("/owner/{id}/address", auth.Require(ownerHandler.UpdateAddress, domain.RoleOwner, domain.RoleAdmin)).Methods("PUT")
	api.HandleFunc("/owner/{id}", auth.Require(ownerHandler.GetOwner, domain.RoleOwner, domain.RoleAdmin)).Methods("GET")
	api.HandleFunc("/owner/{id}", auth.Require(ownerHandler.UpdateOwner, domain.RoleOwner, domain.RoleAdmin)).Methods("PUT")

	// Tenant
	api.HandleFunc("/tenant/available-rooms", auth.Require(tenantHandler.AvailableRooms, domain.RoleTenant, domain.RoleAdmin)).Methods("GET")
	api.HandleFunc("/tenant/request/{requestId}", auth.Require(tenantHandler.RespondToRequest, domain.RoleTenant)).Methods("PUT")
	api.HandleFunc("/tenant/{id}/requests", auth.Require(tenantHandler.ListRequests, domain.RoleTenant, domain.RoleAdmin)).Methods("GET")
	api.HandleFunc("/tenant/{id}/active", auth.Require(tenantHandler.SetActive, domain.RoleTenant, domain.RoleAdmin)).Methods("PUT")
	api.HandleFunc("/tenant/{id}", auth.Require(tenantHandler.GetTenant, domain.RoleTenant, domain.RoleAdmin)).Methods("GET")
	api.HandleFunc("/tenant/{id}", auth.Require(tenantHandler.UpdateTenant, domain.RoleTenant, domain.RoleAdmin)).Methods("PUT")

	// Admin
	api.HandleFunc("/admin/stats", auth.Require(adminHandler.GetStats, domain.RoleAdmin)).Methods("GET")
	api.HandleFunc("/admin/users", auth.Require(adminHandler.ListUsers, domain.RoleAdmin)).Methods("GET")
	api.HandleFunc("/admin/users/{role}/{id}", auth.Require(adminHandler.DeleteUser, domain.RoleAdmin)).Methods("DELETE")
	api.HandleFunc("/admin/transactions", auth.Require(adminHandler.GetTransactions, domain.RoleAdmin)).Methods("GET")

	// Messaging
	api.HandleFunc("/message/send", auth.Require(messageHandler.Send)).Methods("POST")
	api.HandleFunc("/message/conversation", auth.Require(messageHandler.Conversation)).Methods("GET")
	api.HandleFunc("/message/read", auth.Require(messageHandler.MarkRead)).Methods("PUT")
	api.HandleFunc("/message/unread-count", auth.Require(messageHandler.UnreadCount)).Methods("GET")
	api.HandleFunc("/message/unread-by-sender", auth.Require(messageHandler.UnreadBySender, domain.RoleAdmin)).Methods("GET")

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
