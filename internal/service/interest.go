package service

import (
	"context"
	"errors"
	"log/slog"

	"kalyanam/internal/models"
	"kalyanam/internal/observability"
	"kalyanam/internal/repository"
)

// InterestService manages the sent -> accepted | rejected lifecycle of
// interests between members.
type InterestService struct {
	userRepo     repository.UserRepository
	interestRepo repository.InterestRepository
}

// NewInterestService returns a new InterestService.
func NewInterestService(userRepo repository.UserRepository, interestRepo repository.InterestRepository) *InterestService {
	return &InterestService{userRepo: userRepo, interestRepo: interestRepo}
}

// Send creates an interest from senderID to receiverID. The unique pair
// index turns a concurrent double-submit into a clean duplicate error
// instead of a second row.
func (s *InterestService) Send(ctx context.Context, senderID, receiverID uint, message string) (*models.Interest, error) {
	if senderID == receiverID {
		return nil, models.NewValidationError("You cannot send an interest to yourself")
	}

	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	interest := &models.Interest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.InterestStatusSent,
		Message:    message,
	}
	if err := s.interestRepo.Create(ctx, interest); err != nil {
		if errors.Is(err, repository.ErrDuplicateInterest) {
			return nil, models.NewValidationError("Interest already sent to this user")
		}
		return nil, err
	}

	observability.InterestsCreated.Inc()
	slog.Info("interest sent",
		"sender_id", senderID,
		"receiver_id", receiver.ID,
		"interest_id", interest.ID)
	return interest, nil
}

// Respond records the receiver's accept or reject decision. Interests not
// addressed to the caller are reported as not found rather than forbidden,
// so callers cannot probe for interest ids.
func (s *InterestService) Respond(ctx context.Context, receiverID, interestID uint, status models.InterestStatus) (*models.Interest, error) {
	if status != models.InterestStatusAccepted && status != models.InterestStatusRejected {
		return nil, models.NewValidationError("Status must be 'accepted' or 'rejected'")
	}

	interest, err := s.interestRepo.GetByID(ctx, interestID)
	if err != nil {
		return nil, err
	}
	if interest.ReceiverID != receiverID {
		return nil, models.NewNotFoundError("Interest", interestID)
	}
	if interest.Status != models.InterestStatusSent {
		return nil, models.NewValidationError("This interest has already been responded to")
	}

	if err := s.interestRepo.UpdateStatus(ctx, interestID, status); err != nil {
		return nil, err
	}
	interest.Status = status

	observability.InterestResponses.WithLabelValues(string(status)).Inc()
	return interest, nil
}

// Received lists interests addressed to userID, newest first.
func (s *InterestService) Received(ctx context.Context, userID uint) ([]models.Interest, error) {
	return s.interestRepo.GetReceived(ctx, userID)
}

// Sent lists interests sent by userID, newest first.
func (s *InterestService) Sent(ctx context.Context, userID uint) ([]models.Interest, error) {
	return s.interestRepo.GetSent(ctx, userID)
}
