package service

import (
	"context"
	"time"

	"kalyanam/internal/models"
	"kalyanam/internal/repository"
)

type userRepoStub struct {
	getByIDFn            func(context.Context, uint) (*models.User, error)
	getByIDWithProfileFn func(context.Context, uint) (*models.User, error)
	getByEmailFn         func(context.Context, string) (*models.User, error)
	createFn             func(context.Context, *models.User) error
	createWithProfileFn  func(context.Context, *models.User) error
	updateFn             func(context.Context, *models.User) error
	deleteFn             func(context.Context, uint) error
	deleteCascadeFn      func(context.Context, uint) error
	listFn               func(context.Context, int, int) ([]models.User, error)
	countFn              func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithProfile(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDWithProfileFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) CreateWithProfile(ctx context.Context, user *models.User) error {
	return s.createWithProfileFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:            func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithProfileFn: func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:         func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:             func(context.Context, *models.User) error { return nil },
		createWithProfileFn:  func(context.Context, *models.User) error { return nil },
		updateFn:             func(context.Context, *models.User) error { return nil },
		deleteFn:             func(context.Context, uint) error { return nil },
		deleteCascadeFn:      func(context.Context, uint) error { return nil },
		listFn:               func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		countFn:              func(context.Context) (int64, error) { return 0, nil },
	}
}

type candidateRepoStub struct {
	findFn func(context.Context, repository.CandidateFilter) ([]models.User, error)
}

func (s *candidateRepoStub) Find(ctx context.Context, f repository.CandidateFilter) ([]models.User, error) {
	return s.findFn(ctx, f)
}

type preferenceRepoStub struct {
	getByUserIDFn func(context.Context, uint) (*models.Preference, error)
	upsertFn      func(context.Context, *models.Preference) error
}

func (s *preferenceRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Preference, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *preferenceRepoStub) Upsert(ctx context.Context, pref *models.Preference) error {
	return s.upsertFn(ctx, pref)
}

func noopPreferenceRepo() *preferenceRepoStub {
	return &preferenceRepoStub{
		getByUserIDFn: func(context.Context, uint) (*models.Preference, error) { return nil, nil },
		upsertFn:      func(context.Context, *models.Preference) error { return nil },
	}
}

type interestRepoStub struct {
	createFn                 func(context.Context, *models.Interest) error
	getByIDFn                func(context.Context, uint) (*models.Interest, error)
	getBySenderAndReceiverFn func(context.Context, uint, uint) (*models.Interest, error)
	getReceivedFn            func(context.Context, uint) ([]models.Interest, error)
	getSentFn                func(context.Context, uint) ([]models.Interest, error)
	updateStatusFn           func(context.Context, uint, models.InterestStatus) error
}

func (s *interestRepoStub) Create(ctx context.Context, interest *models.Interest) error {
	return s.createFn(ctx, interest)
}
func (s *interestRepoStub) GetByID(ctx context.Context, id uint) (*models.Interest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *interestRepoStub) GetBySenderAndReceiver(ctx context.Context, senderID, receiverID uint) (*models.Interest, error) {
	return s.getBySenderAndReceiverFn(ctx, senderID, receiverID)
}
func (s *interestRepoStub) GetReceived(ctx context.Context, receiverID uint) ([]models.Interest, error) {
	return s.getReceivedFn(ctx, receiverID)
}
func (s *interestRepoStub) GetSent(ctx context.Context, senderID uint) ([]models.Interest, error) {
	return s.getSentFn(ctx, senderID)
}
func (s *interestRepoStub) UpdateStatus(ctx context.Context, interestID uint, status models.InterestStatus) error {
	return s.updateStatusFn(ctx, interestID, status)
}

func noopInterestRepo() *interestRepoStub {
	return &interestRepoStub{
		createFn:                 func(context.Context, *models.Interest) error { return nil },
		getByIDFn:                func(context.Context, uint) (*models.Interest, error) { return &models.Interest{}, nil },
		getBySenderAndReceiverFn: func(context.Context, uint, uint) (*models.Interest, error) { return nil, nil },
		getReceivedFn:            func(context.Context, uint) ([]models.Interest, error) { return nil, nil },
		getSentFn:                func(context.Context, uint) ([]models.Interest, error) { return nil, nil },
		updateStatusFn:           func(context.Context, uint, models.InterestStatus) error { return nil },
	}
}

type planRepoStub struct {
	getByNameFn  func(context.Context, string) (*models.MembershipPlan, error)
	getByIDFn    func(context.Context, uint) (*models.MembershipPlan, error)
	listActiveFn func(context.Context) ([]models.MembershipPlan, error)
	listFn       func(context.Context) ([]models.MembershipPlan, error)
	createFn     func(context.Context, *models.MembershipPlan) error
	updateFn     func(context.Context, *models.MembershipPlan) error
	deleteFn     func(context.Context, uint) error
}

func (s *planRepoStub) GetByName(ctx context.Context, name string) (*models.MembershipPlan, error) {
	return s.getByNameFn(ctx, name)
}
func (s *planRepoStub) GetByID(ctx context.Context, id uint) (*models.MembershipPlan, error) {
	return s.getByIDFn(ctx, id)
}
func (s *planRepoStub) ListActive(ctx context.Context) ([]models.MembershipPlan, error) {
	return s.listActiveFn(ctx)
}
func (s *planRepoStub) List(ctx context.Context) ([]models.MembershipPlan, error) {
	return s.listFn(ctx)
}
func (s *planRepoStub) Create(ctx context.Context, plan *models.MembershipPlan) error {
	return s.createFn(ctx, plan)
}
func (s *planRepoStub) Update(ctx context.Context, plan *models.MembershipPlan) error {
	return s.updateFn(ctx, plan)
}
func (s *planRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPlanRepo() *planRepoStub {
	return &planRepoStub{
		getByNameFn:  func(context.Context, string) (*models.MembershipPlan, error) { return nil, nil },
		getByIDFn:    func(context.Context, uint) (*models.MembershipPlan, error) { return nil, nil },
		listActiveFn: func(context.Context) ([]models.MembershipPlan, error) { return nil, nil },
		listFn:       func(context.Context) ([]models.MembershipPlan, error) { return nil, nil },
		createFn:     func(context.Context, *models.MembershipPlan) error { return nil },
		updateFn:     func(context.Context, *models.MembershipPlan) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

type profileViewRepoStub struct {
	recordFn             func(context.Context, uint, uint) error
	hasViewedFn          func(context.Context, uint, uint) (bool, error)
	countDistinctSinceFn func(context.Context, uint, time.Time) (int64, error)
	recentViewersFn      func(context.Context, uint, int) ([]models.ProfileView, error)
}

func (s *profileViewRepoStub) Record(ctx context.Context, viewerID, viewedID uint) error {
	return s.recordFn(ctx, viewerID, viewedID)
}
func (s *profileViewRepoStub) HasViewed(ctx context.Context, viewerID, viewedID uint) (bool, error) {
	return s.hasViewedFn(ctx, viewerID, viewedID)
}
func (s *profileViewRepoStub) CountDistinctSince(ctx context.Context, viewerID uint, since time.Time) (int64, error) {
	return s.countDistinctSinceFn(ctx, viewerID, since)
}
func (s *profileViewRepoStub) RecentViewers(ctx context.Context, viewedID uint, limit int) ([]models.ProfileView, error) {
	return s.recentViewersFn(ctx, viewedID, limit)
}

func noopProfileViewRepo() *profileViewRepoStub {
	return &profileViewRepoStub{
		recordFn:             func(context.Context, uint, uint) error { return nil },
		hasViewedFn:          func(context.Context, uint, uint) (bool, error) { return false, nil },
		countDistinctSinceFn: func(context.Context, uint, time.Time) (int64, error) { return 0, nil },
		recentViewersFn:      func(context.Context, uint, int) ([]models.ProfileView, error) { return nil, nil },
	}
}
