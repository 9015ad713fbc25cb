package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kalyanam/internal/models"
	"kalyanam/internal/observability"
	"kalyanam/internal/repository"
)

// fallbackViewLimit is applied when a user's stored membership_type has no
// matching plan row. Failing closed with a finite limit beats granting
// unlimited views to a stale plan name.
const fallbackViewLimit = 50

// View check denial reasons returned to the client.
const (
	DenyReasonNoMembership = "no_membership"
	DenyReasonLimitReached = "limit_reached"
)

// ViewCheck is the outcome of a quota check for one (viewer, profile) pair.
type ViewCheck struct {
	Allowed   bool   `json:"allowed"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
	ViewsUsed int64  `json:"views_used,omitempty"`
	ViewLimit *int   `json:"view_limit,omitempty"`
}

// MembershipService enforces membership-gated profile viewing.
type MembershipService struct {
	userRepo repository.UserRepository
	planRepo repository.PlanRepository
	viewRepo repository.ProfileViewRepository
	now      func() time.Time
}

// NewMembershipService returns a new MembershipService.
func NewMembershipService(userRepo repository.UserRepository, planRepo repository.PlanRepository, viewRepo repository.ProfileViewRepository) *MembershipService {
	return &MembershipService{
		userRepo: userRepo,
		planRepo: planRepo,
		viewRepo: viewRepo,
		now:      time.Now,
	}
}

// CheckViewLimit decides whether viewerID may open profileID right now.
// Own profiles and already-viewed profiles are always allowed and never
// charged against the quota. The check itself records nothing; RecordView
// is called by the profile-detail path after a successful fetch.
func (s *MembershipService) CheckViewLimit(ctx context.Context, viewerID, profileID uint) (*ViewCheck, error) {
	if viewerID == profileID {
		return &ViewCheck{Allowed: true}, nil
	}

	viewer, err := s.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !viewer.HasActiveMembership(now) {
		observability.ProfileViewsDenied.WithLabelValues(DenyReasonNoMembership).Inc()
		return &ViewCheck{
			Allowed: false,
			Reason:  DenyReasonNoMembership,
			Message: "An active membership is required to view profiles",
		}, nil
	}

	viewed, err := s.viewRepo.HasViewed(ctx, viewerID, profileID)
	if err != nil {
		return nil, err
	}
	if viewed {
		return &ViewCheck{Allowed: true}, nil
	}

	limit, periodStart, err := s.planQuota(ctx, viewer, now)
	if err != nil {
		return nil, err
	}
	if limit == nil {
		return &ViewCheck{Allowed: true}, nil
	}

	used, err := s.viewRepo.CountDistinctSince(ctx, viewerID, periodStart)
	if err != nil {
		return nil, err
	}
	if used >= int64(*limit) {
		observability.ProfileViewsDenied.WithLabelValues(DenyReasonLimitReached).Inc()
		return &ViewCheck{
			Allowed:   false,
			Reason:    DenyReasonLimitReached,
			Message:   fmt.Sprintf("You have reached your plan's limit of %d profile views. Upgrade your membership to view more profiles.", *limit),
			ViewsUsed: used,
			ViewLimit: limit,
		}, nil
	}

	return &ViewCheck{Allowed: true, ViewsUsed: used, ViewLimit: limit}, nil
}

// planQuota resolves the viewer's plan into a view limit and the start of
// the current quota period. A nil limit means unlimited.
func (s *MembershipService) planQuota(ctx context.Context, viewer *models.User, now time.Time) (*int, time.Time, error) {
	plan, err := s.planRepo.GetByName(ctx, *viewer.MembershipType)
	if err != nil {
		return nil, time.Time{}, err
	}
	if plan == nil {
		slog.Warn("membership type has no plan row, applying fallback view limit",
			"membership_type", *viewer.MembershipType,
			"user_id", viewer.ID,
			"fallback_limit", fallbackViewLimit)
		limit := fallbackViewLimit
		return &limit, now.AddDate(0, 0, -30), nil
	}

	periodStart := now.AddDate(0, 0, -30)
	if viewer.MembershipExpiry != nil {
		periodStart = viewer.MembershipExpiry.Add(-plan.Period())
	}
	return plan.ProfileViewsLimit, periodStart, nil
}

// RecordView persists a profile view. Failures are logged and swallowed so
// a broken audit write never fails the profile fetch it rides on.
func (s *MembershipService) RecordView(ctx context.Context, viewerID, profileID uint) {
	if viewerID == profileID {
		return
	}
	if err := s.viewRepo.Record(ctx, viewerID, profileID); err != nil {
		slog.Error("failed to record profile view",
			"viewer_id", viewerID,
			"viewed_id", profileID,
			"error", err)
		return
	}
	observability.ProfileViewsRecorded.Inc()
}
