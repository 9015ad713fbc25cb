package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetMembershipPlans handles GET /api/membership/plans, the public plan
// catalog shown on the pricing page.
func (s *Server) GetMembershipPlans(c *fiber.Ctx) error {
	plans, err := s.planRepo.ListActive(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(plans)
}

// GetMembershipStatus handles GET /api/membership/status for the logged-in
// user: current plan, expiry, and whether the membership is active.
func (s *Server) GetMembershipStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	now := time.Now()
	resp := fiber.Map{
		"active":            user.HasActiveMembership(now),
		"membership_type":   user.MembershipType,
		"membership_expiry": user.MembershipExpiry,
		"payment_status":    user.PaymentStatus,
	}

	if user.HasActiveMembership(now) {
		plan, planErr := s.planRepo.GetByName(c.UserContext(), *user.MembershipType)
		if planErr == nil && plan != nil {
			resp["plan"] = plan
		}
	}

	return c.JSON(resp)
}
