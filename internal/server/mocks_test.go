package server

import (
	"context"
	"time"

	"kalyanam/internal/models"
	"kalyanam/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDWithProfile(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CreateWithProfile(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCandidateRepository is a mock of the CandidateRepository interface
type MockCandidateRepository struct {
	mock.Mock
}

func (m *MockCandidateRepository) Find(ctx context.Context, f repository.CandidateFilter) ([]models.User, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockPreferenceRepository is a mock of the PreferenceRepository interface
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetByUserID(ctx context.Context, userID uint) (*models.Preference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Preference), args.Error(1)
}

func (m *MockPreferenceRepository) Upsert(ctx context.Context, pref *models.Preference) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

// MockProfileRepository is a mock of the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdatePhotoURL(ctx context.Context, userID uint, url string) error {
	args := m.Called(ctx, userID, url)
	return args.Error(0)
}

// MockInterestRepository is a mock of the InterestRepository interface
type MockInterestRepository struct {
	mock.Mock
}

func (m *MockInterestRepository) Create(ctx context.Context, interest *models.Interest) error {
	args := m.Called(ctx, interest)
	return args.Error(0)
}

func (m *MockInterestRepository) GetByID(ctx context.Context, id uint) (*models.Interest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interest), args.Error(1)
}

func (m *MockInterestRepository) GetBySenderAndReceiver(ctx context.Context, senderID, receiverID uint) (*models.Interest, error) {
	args := m.Called(ctx, senderID, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interest), args.Error(1)
}

func (m *MockInterestRepository) GetReceived(ctx context.Context, receiverID uint) ([]models.Interest, error) {
	args := m.Called(ctx, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interest), args.Error(1)
}

func (m *MockInterestRepository) GetSent(ctx context.Context, senderID uint) ([]models.Interest, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interest), args.Error(1)
}

func (m *MockInterestRepository) UpdateStatus(ctx context.Context, interestID uint, status models.InterestStatus) error {
	args := m.Called(ctx, interestID, status)
	return args.Error(0)
}

// MockCuratedMatchRepository is a mock of the CuratedMatchRepository interface
type MockCuratedMatchRepository struct {
	mock.Mock
}

func (m *MockCuratedMatchRepository) Create(ctx context.Context, match *models.CuratedMatch) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockCuratedMatchRepository) GetByID(ctx context.Context, id uint) (*models.CuratedMatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CuratedMatch), args.Error(1)
}

func (m *MockCuratedMatchRepository) ListForUser(ctx context.Context, userID uint) ([]models.CuratedMatch, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CuratedMatch), args.Error(1)
}

func (m *MockCuratedMatchRepository) List(ctx context.Context, limit, offset int) ([]models.CuratedMatch, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CuratedMatch), args.Error(1)
}

func (m *MockCuratedMatchRepository) Update(ctx context.Context, match *models.CuratedMatch) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockCuratedMatchRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileViewRepository is a mock of the ProfileViewRepository interface
type MockProfileViewRepository struct {
	mock.Mock
}

func (m *MockProfileViewRepository) Record(ctx context.Context, viewerID, viewedID uint) error {
	args := m.Called(ctx, viewerID, viewedID)
	return args.Error(0)
}

func (m *MockProfileViewRepository) HasViewed(ctx context.Context, viewerID, viewedID uint) (bool, error) {
	args := m.Called(ctx, viewerID, viewedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileViewRepository) CountDistinctSince(ctx context.Context, viewerID uint, since time.Time) (int64, error) {
	args := m.Called(ctx, viewerID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileViewRepository) RecentViewers(ctx context.Context, viewedID uint, limit int) ([]models.ProfileView, error) {
	args := m.Called(ctx, viewedID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProfileView), args.Error(1)
}

// MockPlanRepository is a mock of the PlanRepository interface
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) GetByName(ctx context.Context, name string) (*models.MembershipPlan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MembershipPlan), args.Error(1)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id uint) (*models.MembershipPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MembershipPlan), args.Error(1)
}

func (m *MockPlanRepository) ListActive(ctx context.Context) ([]models.MembershipPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MembershipPlan), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context) ([]models.MembershipPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MembershipPlan), args.Error(1)
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *models.MembershipPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Update(ctx context.Context, plan *models.MembershipPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSettingsRepository is a mock of the SettingsRepository interface
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetTheme(ctx context.Context) (*models.ThemeSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ThemeSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveTheme(ctx context.Context, s *models.ThemeSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetModules(ctx context.Context) (*models.ModuleSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ModuleSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveModules(ctx context.Context, s *models.ModuleSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
