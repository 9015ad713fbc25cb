package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kalyanam/internal/config"
	"kalyanam/internal/models"
	"kalyanam/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testMocks bundles the repository mocks wired into a test server.
type testMocks struct {
	users       *MockUserRepository
	profiles    *MockProfileRepository
	preferences *MockPreferenceRepository
	candidates  *MockCandidateRepository
	interests   *MockInterestRepository
	curated     *MockCuratedMatchRepository
	views       *MockProfileViewRepository
	plans       *MockPlanRepository
	settings    *MockSettingsRepository
}

// newTestServer builds a Server backed entirely by mocks, with no DB or
// Redis. Handlers under test are registered on the returned app by the
// caller.
func newTestServer() (*Server, *testMocks) {
	m := &testMocks{
		users:       new(MockUserRepository),
		profiles:    new(MockProfileRepository),
		preferences: new(MockPreferenceRepository),
		candidates:  new(MockCandidateRepository),
		interests:   new(MockInterestRepository),
		curated:     new(MockCuratedMatchRepository),
		views:       new(MockProfileViewRepository),
		plans:       new(MockPlanRepository),
		settings:    new(MockSettingsRepository),
	}

	s := &Server{
		config:           &config.Config{JWTSecret: "test_secret", Env: "test"},
		userRepo:         m.users,
		profileRepo:      m.profiles,
		preferenceRepo:   m.preferences,
		candidateRepo:    m.candidates,
		interestRepo:     m.interests,
		curatedMatchRepo: m.curated,
		profileViewRepo:  m.views,
		planRepo:         m.plans,
		settingsRepo:     m.settings,
	}
	s.recommendationService = service.NewRecommendationService(m.users, m.preferences, m.candidates)
	s.searchService = service.NewSearchService(m.users, m.candidates)
	s.membershipService = service.NewMembershipService(m.users, m.plans, m.views)
	s.interestService = service.NewInterestService(m.users, m.interests)
	s.photoService = service.NewPhotoService(m.profiles, s.config)
	s.settingsService = service.NewSettingsService(m.settings)

	return s, m
}

// asUser returns middleware that stamps the request with an authenticated
// user ID, standing in for AuthRequired.
func asUser(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", id)
		return c.Next()
	}
}

// allModulesEnabled primes the settings mock so module-flag gates pass.
func allModulesEnabled(m *testMocks) {
	m.settings.On("GetModules", mock.Anything).Return(&models.ModuleSettings{
		ID:                     1,
		RecommendationsEnabled: true,
		SearchEnabled:          true,
		PublicSearchEnabled:    true,
		InterestsEnabled:       true,
		TopMatchesEnabled:      true,
		PhotoUploadEnabled:     true,
	}, nil)
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
