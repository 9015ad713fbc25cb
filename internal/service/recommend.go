package service

import (
	"context"
	"sort"
	"time"

	"kalyanam/internal/models"
	"kalyanam/internal/observability"
	"kalyanam/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// candidatePoolSize caps how many rows are fetched before scoring. The cap
// keeps the request bounded; newest profiles are considered first.
const candidatePoolSize = 50

// ScoredCandidate is a candidate annotated with its match score.
type ScoredCandidate struct {
	User       models.User `json:"user"`
	MatchScore int         `json:"match_score"`
}

// RecommendationService builds scored, ranked candidate lists on demand.
type RecommendationService struct {
	userRepo      repository.UserRepository
	prefRepo      repository.PreferenceRepository
	candidateRepo repository.CandidateRepository
	now           func() time.Time
}

// NewRecommendationService returns a new RecommendationService.
func NewRecommendationService(userRepo repository.UserRepository, prefRepo repository.PreferenceRepository, candidateRepo repository.CandidateRepository) *RecommendationService {
	return &RecommendationService{
		userRepo:      userRepo,
		prefRepo:      prefRepo,
		candidateRepo: candidateRepo,
		now:           time.Now,
	}
}

// GetDailyRecommendations returns up to limit opposite-gender candidates
// sorted by descending match score. Ties keep the fetch order (newest
// candidate first) via a stable sort. The call has no side effects; views
// are only recorded by the profile-detail path.
func (s *RecommendationService) GetDailyRecommendations(ctx context.Context, viewerID uint, limit int) ([]ScoredCandidate, error) {
	span, ctx := observability.NewSpan(ctx, "recommendations.build")
	defer span.End()
	start := s.now()

	viewer, err := s.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if viewer.Gender != models.GenderMale && viewer.Gender != models.GenderFemale {
		return nil, models.NewValidationError("Please complete your profile before requesting recommendations")
	}

	pref, err := s.prefRepo.GetByUserID(ctx, viewerID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if pref == nil {
		// No stored preferences: score with an empty, fully permissive record.
		pref = &models.Preference{}
	}

	candidates, err := s.candidateRepo.Find(ctx, repository.CandidateFilter{
		Gender:        viewer.Gender.Opposite(),
		ExcludeUserID: viewerID,
		OrderBy:       "users.created_at DESC",
		Limit:         candidatePoolSize,
	})
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	now := s.now()
	scored := make([]ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		c := candidates[i]
		score := CalculateMatchScore(CandidateFromUser(&c, c.Age(now)), pref)
		scored = append(scored, ScoredCandidate{User: c, MatchScore: score})
	}

	// Stable so equal scores keep the created_at DESC fetch order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	span.AddAttributes(
		attribute.Int("recommendations.pool", len(candidates)),
		attribute.Int("recommendations.returned", len(scored)),
	)
	observability.ObserveRecommendation(start)
	return scored, nil
}
