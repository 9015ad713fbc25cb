package server

import (
	"strings"

	"kalyanam/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendInterest handles POST /api/match/interest/send
// @Summary Send an interest
// @Tags interest
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{receiver_id=uint,message=string} true "Interest request"
// @Success 201 {object} models.Interest
// @Failure 400 {object} object{error=string}
// @Router /match/interest/send [post]
func (s *Server) SendInterest(c *fiber.Ctx) error {
	if err := s.requireModule(c, func(m models.ModuleSettings) bool { return m.InterestsEnabled }, "Interests"); err != nil {
		return nil
	}

	senderID := c.Locals("userID").(uint)

	var req struct {
		ReceiverID uint   `json:"receiver_id"`
		Message    string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ReceiverID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A receiver_id is required"))
	}

	interest, err := s.interestService.Send(c.UserContext(), senderID, req.ReceiverID, req.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(interest)
}

// GetReceivedInterests handles GET /api/match/interest/received
func (s *Server) GetReceivedInterests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	interests, err := s.interestService.Received(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(interests)
}

// GetSentInterests handles GET /api/match/interest/sent
func (s *Server) GetSentInterests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	interests, err := s.interestService.Sent(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(interests)
}

// RespondToInterest handles PUT /api/match/interest/respond
// @Summary Accept or reject a received interest
// @Tags interest
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{interest_id=uint,status=string} true "Response"
// @Success 200 {object} models.Interest
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /match/interest/respond [put]
func (s *Server) RespondToInterest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		InterestID uint   `json:"interest_id"`
		Status     string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.InterestID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("An interest_id is required"))
	}

	status := models.InterestStatus(strings.ToLower(req.Status))
	interest, err := s.interestService.Respond(c.UserContext(), userID, req.InterestID, status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(interest)
}
