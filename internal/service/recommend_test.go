package service

import (
	"context"
	"testing"
	"time"

	"kalyanam/internal/models"
	"kalyanam/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
}

func dobForAge(age int) *time.Time {
	dob := fixedNow().AddDate(-age, 0, -1)
	return &dob
}

func candidateUser(id uint, gender models.Gender, age int, city string) models.User {
	return models.User{
		ID:          id,
		Gender:      gender,
		DateOfBirth: dobForAge(age),
		Profile:     &models.Profile{UserID: id, City: city},
	}
}

func recommendFixture(viewer *models.User, pref *models.Preference, pool []models.User) (*RecommendationService, *repository.CandidateFilter) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) { return viewer, nil }
	prefs := noopPreferenceRepo()
	prefs.getByUserIDFn = func(context.Context, uint) (*models.Preference, error) { return pref, nil }

	var gotFilter repository.CandidateFilter
	candidates := &candidateRepoStub{
		findFn: func(_ context.Context, f repository.CandidateFilter) ([]models.User, error) {
			gotFilter = f
			return pool, nil
		},
	}

	svc := NewRecommendationService(users, prefs, candidates)
	svc.now = fixedNow
	return svc, &gotFilter
}

func TestRecommendationsRequireGender(t *testing.T) {
	svc, _ := recommendFixture(&models.User{ID: 1}, nil, nil)
	_, err := svc.GetDailyRecommendations(context.Background(), 1, 10)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Message, "complete your profile")
}

func TestRecommendationsFilterShape(t *testing.T) {
	viewer := &models.User{ID: 1, Gender: models.GenderMale, DateOfBirth: dobForAge(30)}
	svc, gotFilter := recommendFixture(viewer, nil, nil)

	_, err := svc.GetDailyRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, models.GenderFemale, gotFilter.Gender)
	assert.Equal(t, uint(1), gotFilter.ExcludeUserID)
	assert.Equal(t, candidatePoolSize, gotFilter.Limit)
	assert.Equal(t, "users.created_at DESC", gotFilter.OrderBy)
}

func TestRecommendationsSortedDescending(t *testing.T) {
	viewer := &models.User{ID: 1, Gender: models.GenderMale, DateOfBirth: dobForAge(30)}
	pref := &models.Preference{Location: "Chennai"}
	pool := []models.User{
		candidateUser(2, models.GenderFemale, 28, "Mumbai"),
		candidateUser(3, models.GenderFemale, 29, "Chennai"),
		candidateUser(4, models.GenderFemale, 30, "Delhi"),
	}
	svc, _ := recommendFixture(viewer, pref, pool)

	out, err := svc.GetDailyRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, uint(3), out[0].User.ID)
	assert.Equal(t, 10, out[0].MatchScore)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].MatchScore, out[i].MatchScore)
	}
}

func TestRecommendationsStableOnTies(t *testing.T) {
	viewer := &models.User{ID: 1, Gender: models.GenderFemale, DateOfBirth: dobForAge(27)}
	pool := []models.User{
		candidateUser(5, models.GenderMale, 30, "Pune"),
		candidateUser(6, models.GenderMale, 31, "Pune"),
		candidateUser(7, models.GenderMale, 32, "Pune"),
	}
	svc, _ := recommendFixture(viewer, &models.Preference{}, pool)

	out, err := svc.GetDailyRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// All score zero, so the fetch order must survive the sort.
	assert.Equal(t, uint(5), out[0].User.ID)
	assert.Equal(t, uint(6), out[1].User.ID)
	assert.Equal(t, uint(7), out[2].User.ID)
}

func TestRecommendationsHonorsLimit(t *testing.T) {
	viewer := &models.User{ID: 1, Gender: models.GenderMale, DateOfBirth: dobForAge(30)}
	pool := make([]models.User, 0, 8)
	for i := uint(2); i < 10; i++ {
		pool = append(pool, candidateUser(i, models.GenderFemale, 28, "Chennai"))
	}
	svc, _ := recommendFixture(viewer, nil, pool)

	out, err := svc.GetDailyRecommendations(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestRecommendationsExcludesNobodyTwice(t *testing.T) {
	viewer := &models.User{ID: 1, Gender: models.GenderMale, DateOfBirth: dobForAge(30)}
	pool := []models.User{candidateUser(2, models.GenderFemale, 28, "Chennai")}
	svc, _ := recommendFixture(viewer, nil, pool)

	out, err := svc.GetDailyRecommendations(context.Background(), 1, 10)
	require.NoError(t, err)
	for _, s := range out {
		assert.NotEqual(t, viewer.ID, s.User.ID)
		assert.NotEqual(t, viewer.Gender, s.User.Gender)
	}
}
