package server

import (
	"net/http"
	"testing"
	"time"

	"kalyanam/internal/models"
	"kalyanam/internal/repository"
	"kalyanam/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dob(age int) *time.Time {
	d := time.Now().AddDate(-age, -6, 0)
	return &d
}

func TestGetRecommendations(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/match/recommendations", asUser(1), s.GetRecommendations)
	allModulesEnabled(m)

	m.users.On("GetByID", mock.Anything, uint(1)).Return(&models.User{
		ID:          1,
		Gender:      models.GenderFemale,
		DateOfBirth: dob(28),
	}, nil)
	m.preferences.On("GetByUserID", mock.Anything, uint(1)).Return(&models.Preference{UserID: 1, Religion: "Hindu"}, nil)
	m.candidates.On("Find", mock.Anything, mock.MatchedBy(func(f repository.CandidateFilter) bool {
		return f.Gender == models.GenderMale && f.ExcludeUserID == 1 && f.Limit == 50
	})).Return([]models.User{
		{ID: 2, Gender: models.GenderMale, DateOfBirth: dob(30), Profile: &models.Profile{Religion: "Hindu"}},
		{ID: 3, Gender: models.GenderMale, DateOfBirth: dob(31), Profile: &models.Profile{Religion: "Jain"}},
	}, nil)

	req := jsonRequest(t, http.MethodGet, "/match/recommendations?limit=5", nil)
	resp, _ := app.Test(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var recs []service.ScoredCandidate
	decodeBody(t, resp, &recs)
	require.Len(t, recs, 2)
	// The religion match scores higher and must come first.
	assert.Equal(t, uint(2), recs[0].User.ID)
	assert.Greater(t, recs[0].MatchScore, recs[1].MatchScore)
}

func TestGetRecommendationsModuleDisabled(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/match/recommendations", asUser(1), s.GetRecommendations)

	m.settings.On("GetModules", mock.Anything).Return(&models.ModuleSettings{
		RecommendationsEnabled: false,
		SearchEnabled:          true,
	}, nil)

	req := jsonRequest(t, http.MethodGet, "/match/recommendations", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	m.candidates.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestGetRecommendationsIncompleteProfile(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/match/recommendations", asUser(1), s.GetRecommendations)
	allModulesEnabled(m)

	m.users.On("GetByID", mock.Anything, uint(1)).Return(&models.User{ID: 1}, nil)

	req := jsonRequest(t, http.MethodGet, "/match/recommendations", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearch(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/match/search", asUser(1), s.Search)
	allModulesEnabled(m)

	m.users.On("GetByID", mock.Anything, uint(1)).Return(&models.User{
		ID:     1,
		Gender: models.GenderMale,
	}, nil)
	m.candidates.On("Find", mock.Anything, mock.MatchedBy(func(f repository.CandidateFilter) bool {
		return f.Gender == models.GenderFemale && f.City == "Pune" && f.ExcludeUserID == 1
	})).Return([]models.User{
		{ID: 4, Gender: models.GenderFemale, Email: "priya@example.com"},
	}, nil)

	req := jsonRequest(t, http.MethodGet, "/match/search?city=Pune", nil)
	resp, _ := app.Test(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	decodeBody(t, resp, &users)
	require.Len(t, users, 1)
	assert.Equal(t, uint(4), users[0].ID)
}

func TestPublicSearchRedactsContactDetails(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/match/public-search", s.PublicSearch)
	allModulesEnabled(m)

	m.candidates.On("Find", mock.Anything, mock.Anything).Return([]models.User{
		{
			ID:          9,
			FirstName:   "Priya",
			LastName:    "Sharma",
			Email:       "priya.sharma@example.com",
			Phone:       "+919812345678",
			Gender:      models.GenderFemale,
			DateOfBirth: dob(27),
			Profile:     &models.Profile{City: "Mumbai", State: "Maharashtra", Religion: "Hindu"},
		},
	}, nil)

	req := jsonRequest(t, http.MethodGet, "/match/public-search?gender=female", nil)
	resp, _ := app.Test(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profiles []models.PublicProfile
	decodeBody(t, resp, &profiles)
	require.Len(t, profiles, 1)

	got := profiles[0]
	assert.Equal(t, "Priya S.", got.Name)
	assert.Equal(t, models.RedactedPhone, got.Phone)
	assert.Equal(t, models.RedactedEmail, got.Email)
	assert.Equal(t, "Mumbai", got.City)
	assert.Equal(t, models.RedactedAddress, got.State)
	assert.NotContains(t, got.Email, "priya")
}

func TestPublicSearchWithoutGenderFilterMatchesBoth(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/match/public-search", s.PublicSearch)
	allModulesEnabled(m)

	var gotFilter repository.CandidateFilter
	m.candidates.On("Find", mock.Anything, mock.MatchedBy(func(f repository.CandidateFilter) bool {
		gotFilter = f
		return true
	})).Return([]models.User{
		{ID: 3, FirstName: "Rahul", LastName: "Verma", Gender: models.GenderMale, DateOfBirth: dob(31), Profile: &models.Profile{}},
		{ID: 4, FirstName: "Asha", LastName: "Patel", Gender: models.GenderFemale, DateOfBirth: dob(26), Profile: &models.Profile{}},
	}, nil)

	req := jsonRequest(t, http.MethodGet, "/match/public-search", nil)
	resp, _ := app.Test(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// No gender constraint reaches the repository.
	assert.Equal(t, models.Gender(""), gotFilter.Gender)

	var profiles []models.PublicProfile
	decodeBody(t, resp, &profiles)
	require.Len(t, profiles, 2)
}

func TestPublicSearchRejectsBadGender(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/match/public-search", s.PublicSearch)
	allModulesEnabled(m)

	req := jsonRequest(t, http.MethodGet, "/match/public-search?gender=robot", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	m.candidates.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestGetTopMatches(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/match/top-matches", asUser(1), s.GetTopMatches)
	allModulesEnabled(m)

	m.curated.On("ListForUser", mock.Anything, uint(1)).Return([]models.CuratedMatch{
		{ID: 1, UserID: 1, MatchedUserID: 7, Score: 92},
	}, nil)

	req := jsonRequest(t, http.MethodGet, "/match/top-matches", nil)
	resp, _ := app.Test(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var matches []models.CuratedMatch
	decodeBody(t, resp, &matches)
	require.Len(t, matches, 1)
	assert.Equal(t, uint(7), matches[0].MatchedUserID)
}
