package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RupeshP0713/roomrent-backend/internal/config"
	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/logger"
	"github.com/RupeshP0713/roomrent-backend/internal/repository"
)

const unknownName = "Unknown"

type requestService struct {
	requestRepo repository.RentRequestRepository
	ownerRepo   repository.OwnerRepository
	tenantRepo  repository.TenantRepository
	policy      admissionPolicy
	expiry      time.Duration
}

func NewRequestService(
	requestRepo repository.RentRequestRepository,
	ownerRepo repository.OwnerRepository,
	tenantRepo repository.TenantRepository,
	cfg config.RateLimitConfig,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		ownerRepo:   ownerRepo,
		tenantRepo:  tenantRepo,
		policy:      newAdmissionPolicy(cfg),
		expiry:      cfg.Expiry(),
	}
}

func (s *requestService) CreateRequest(ctx context.Context, ownerID, tenantID string) (*domain.RentRequest, error) {
	now := time.Now()

	// Snapshot the store, then evaluate admission as a pure function over it.
	// The check-then-insert sequence is not transactional; concurrent
	// admissions for the same owner can transiently overshoot the quota by a
	// slot, which is accepted behavior.
	pairRef, err := s.pairReference(ctx, ownerID, tenantID)
	if err != nil {
		return nil, err
	}
	pending, err := s.requestRepo.ListPendingByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if aerr := evaluateAdmission(s.policy, now, pairRef, pending); aerr != nil {
		logger.Debug("rent request denied",
			"owner_id", ownerID, "tenant_id", tenantID,
			"reason", aerr.Reason, "hours_remaining", aerr.HoursRemaining)
		return nil, aerr
	}

	req := &domain.RentRequest{
		ID:        newRequestID(now),
		OwnerID:   ownerID,
		TenantID:  tenantID,
		Status:    domain.RequestStatusPending,
		CreatedAt: now,
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		// An id collision is practically unreachable, but a single retry with
		// a fresh id covers it.
		if errors.Is(err, domain.ErrDuplicateID) {
			req.ID = newRequestID(now)
			if err := s.requestRepo.Create(ctx, req); err != nil {
				return nil, err
			}
			return req, nil
		}
		return nil, err
	}

	logger.Info("rent request created", "request_id", req.ID, "owner_id", ownerID, "tenant_id", tenantID)
	return req, nil
}

// pairReference fetches the request the pairwise check compares against,
// according to the configured policy. A missing request is not an error.
func (s *requestService) pairReference(ctx context.Context, ownerID, tenantID string) (*domain.RentRequest, error) {
	var (
		ref *domain.RentRequest
		err error
	)
	if s.policy.pairPolicy == config.PairPolicySinglePending {
		ref, err = s.requestRepo.PendingForPair(ctx, ownerID, tenantID)
	} else {
		ref, err = s.requestRepo.LatestForPair(ctx, ownerID, tenantID)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func (s *requestService) ListForOwner(ctx context.Context, ownerID string) ([]domain.OwnerRequestView, error) {
	if err := s.sweep(ctx, func(cutoff time.Time) (int64, error) {
		return s.requestRepo.ExpireOlderThanForOwner(ctx, ownerID, cutoff)
	}); err != nil {
		return nil, err
	}

	reqs, err := s.requestRepo.ListByOwner(ctx, ownerID, false)
	if err != nil {
		return nil, err
	}

	views := make([]domain.OwnerRequestView, 0, len(reqs))
	for _, req := range reqs {
		view := domain.OwnerRequestView{
			ID:         req.ID,
			TenantID:   req.TenantID,
			TenantName: unknownName,
			Status:     req.Status,
			CreatedAt:  req.CreatedAt,
		}
		tenant, err := s.tenantRepo.GetByID(ctx, req.TenantID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if tenant != nil {
			view.TenantName = tenant.Name
			view.TenantMobile = tenant.Mobile
			view.TenantArea = tenant.Area
			view.TenantCaste = tenant.Caste
			view.TenantFamilyMembers = tenant.FamilyMembers
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *requestService) ListForTenant(ctx context.Context, tenantID string) ([]domain.TenantRequestView, error) {
	if err := s.sweep(ctx, func(cutoff time.Time) (int64, error) {
		return s.requestRepo.ExpireOlderThanForTenant(ctx, tenantID, cutoff)
	}); err != nil {
		return nil, err
	}

	reqs, err := s.requestRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.TenantRequestView, 0, len(reqs))
	for _, req := range reqs {
		view := domain.TenantRequestView{
			ID:        req.ID,
			OwnerID:   req.OwnerID,
			OwnerName: unknownName,
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
		}
		owner, err := s.ownerRepo.GetByID(ctx, req.OwnerID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if owner != nil {
			view.OwnerName = owner.Name
			// Contact details are only revealed once the tenant accepted.
			if req.Status == domain.RequestStatusAccepted {
				whatsapp, address := owner.WhatsApp, owner.Address
				view.OwnerWhatsApp = &whatsapp
				view.OwnerAddress = &address
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// sweep expires the subject's stale requests before a listing, so the listing
// that follows observes the transition. Running it twice is a no-op.
func (s *requestService) sweep(ctx context.Context, expire func(cutoff time.Time) (int64, error)) error {
	cutoff := time.Now().Add(-s.expiry)
	n, err := expire(cutoff)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Debug("expired stale rent requests", "count", n)
	}
	return nil
}

func (s *requestService) Respond(ctx context.Context, callerID, requestID string, status domain.RequestStatus) (*domain.RentRequest, error) {
	if !status.ValidResponse() {
		return nil, fmt.Errorf("status %q: %w", status, domain.ErrInvalidStatus)
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.TenantID != callerID {
		return nil, domain.ErrUnauthorized
	}
	// Transitions are monotone: a request that left Pending never changes
	// again.
	if req.Status.IsTerminal() {
		return nil, fmt.Errorf("request already %s: %w", req.Status, domain.ErrInvalidStatus)
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}
	req.Status = status

	logger.Info("rent request resolved", "request_id", requestID, "status", status)
	return req, nil
}

func (s *requestService) CascadeDeactivate(ctx context.Context, tenantID string) (int64, error) {
	n, err := s.requestRepo.BulkUpdateStatus(ctx, tenantID,
		[]domain.RequestStatus{domain.RequestStatusPending, domain.RequestStatusAccepted},
		domain.RequestStatusRejected)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Info("rejected live requests for deactivated tenant", "tenant_id", tenantID, "count", n)
	}
	return n, nil
}

func (s *requestService) ExpireStale(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.expiry)
	return s.requestRepo.ExpireAllOlderThan(ctx, cutoff)
}
