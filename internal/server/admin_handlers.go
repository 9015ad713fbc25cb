package server

import (
	"strings"
	"time"

	"kalyanam/internal/cache"
	"kalyanam/internal/models"
	"kalyanam/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// adminUserRequest is the payload for admin user create and update.
type adminUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	IsApproved  *bool  `json:"is_approved"`
	IsAdmin     *bool  `json:"is_admin"`
}

func (r *adminUserRequest) toUser() (*models.User, error) {
	if r.Email == "" || r.Password == "" || r.FirstName == "" {
		return nil, models.NewValidationError("Email, password, and first name are required")
	}
	if err := validation.ValidateEmail(r.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(r.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	gender := models.Gender(strings.ToLower(r.Gender))
	if gender != models.GenderMale && gender != models.GenderFemale {
		return nil, models.NewValidationError("Gender must be 'male' or 'female'")
	}

	var dob *time.Time
	if r.DateOfBirth != "" {
		parsed, err := time.Parse(dateLayout, r.DateOfBirth)
		if err != nil {
			return nil, models.NewValidationError("Date of birth must be in YYYY-MM-DD format")
		}
		dob = &parsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:         r.Email,
		Password:      string(hashed),
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Phone:         r.Phone,
		Gender:        gender,
		DateOfBirth:   dob,
		PaymentStatus: models.PaymentStatusPending,
	}
	if r.IsApproved != nil {
		user.IsApproved = *r.IsApproved
	}
	if r.IsAdmin != nil {
		user.IsAdmin = *r.IsAdmin
	}
	return user, nil
}

// AdminListUsers handles GET /api/admin/users
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	users, err := s.userRepo.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	total, err := s.userRepo.Count(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"users":  users,
		"total":  total,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// AdminGetUser handles GET /api/admin/users/:id
func (s *Server) AdminGetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByIDWithProfile(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// AdminCreateUser handles POST /api/admin/users
func (s *Server) AdminCreateUser(c *fiber.Ctx) error {
	var req adminUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := req.toUser()
	if err != nil {
		return respondError(c, err)
	}

	if err := s.userRepo.CreateWithProfile(c.UserContext(), user); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// AdminBulkCreateUsers handles POST /api/admin/users/bulk. The whole batch
// is created in one transaction; any failure rolls back every row.
func (s *Server) AdminBulkCreateUsers(c *fiber.Ctx) error {
	var req struct {
		Users []adminUserRequest `json:"users"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if len(req.Users) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("At least one user is required"))
	}
	if len(req.Users) > 100 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("At most 100 users may be created per request"))
	}

	users := make([]*models.User, 0, len(req.Users))
	for i := range req.Users {
		user, err := req.Users[i].toUser()
		if err != nil {
			return respondError(c, err)
		}
		users = append(users, user)
	}

	txErr := s.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for _, user := range users {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.Profile{UserID: user.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(txErr))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"created": len(users),
		"users":   users,
	})
}

// AdminUpdateUser handles PUT /api/admin/users/:id
func (s *Server) AdminUpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
		IsAdmin   *bool   `json:"is_admin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.FirstName != nil {
		if err := validation.ValidateName(*req.FirstName); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		if *req.Phone != "" {
			if err := validation.ValidatePhone(*req.Phone); err != nil {
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewValidationError(err.Error()))
			}
		}
		user.Phone = *req.Phone
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := s.userRepo.Update(c.UserContext(), user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// AdminApproveUser handles PUT /api/admin/users/:id/approve
func (s *Server) AdminApproveUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Approved *bool `json:"approved"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}
	user.IsApproved = approved

	if err := s.userRepo.Update(c.UserContext(), user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// AdminUpdatePayment handles PUT /api/admin/users/:id/payment
func (s *Server) AdminUpdatePayment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	status := models.PaymentStatus(strings.ToLower(req.PaymentStatus))
	if status != models.PaymentStatusPending && status != models.PaymentStatusPaid {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Payment status must be 'pending' or 'paid'"))
	}
	user.PaymentStatus = status

	if err := s.userRepo.Update(c.UserContext(), user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// AdminAssignMembership handles PUT /api/admin/users/:id/membership. The
// plan must exist; expiry is computed from the plan's duration.
func (s *Server) AdminAssignMembership(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		PlanName string `json:"plan_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.PlanName == "" {
		// Clearing the membership.
		user.MembershipType = nil
		user.MembershipExpiry = nil
	} else {
		plan, planErr := s.planRepo.GetByName(c.UserContext(), req.PlanName)
		if planErr != nil {
			return respondError(c, planErr)
		}
		if plan == nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("No membership plan with this name exists"))
		}
		expiry := time.Now().Add(plan.Period())
		user.MembershipType = &plan.Name
		user.MembershipExpiry = &expiry
		user.PaymentStatus = models.PaymentStatusPaid
	}

	if err := s.userRepo.Update(c.UserContext(), user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// AdminDeleteUser handles DELETE /api/admin/users/:id. Related rows are
// removed in the same transaction as the user.
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	adminID := c.Locals("userID").(uint)
	if id == adminID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("You cannot delete your own account"))
	}

	if err := s.userRepo.DeleteCascade(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}

// AdminListPlans handles GET /api/admin/plans (includes inactive plans).
func (s *Server) AdminListPlans(c *fiber.Ctx) error {
	plans, err := s.planRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plans)
}

type planRequest struct {
	Name              string   `json:"name"`
	Price             *float64 `json:"price"`
	DurationMonths    *int     `json:"duration_months"`
	ProfileViewsLimit *int     `json:"profile_views_limit"`
	Unlimited         bool     `json:"unlimited_views"`
	Features          []string `json:"features"`
	IsActive          *bool    `json:"is_active"`
}

// AdminCreatePlan handles POST /api/admin/plans
func (s *Server) AdminCreatePlan(c *fiber.Ctx) error {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A plan name is required"))
	}
	if req.DurationMonths == nil || *req.DurationMonths <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A positive duration_months is required"))
	}
	if !req.Unlimited && req.ProfileViewsLimit != nil && *req.ProfileViewsLimit < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("profile_views_limit cannot be negative"))
	}

	plan := &models.MembershipPlan{
		Name:           req.Name,
		DurationMonths: *req.DurationMonths,
		Features:       req.Features,
		IsActive:       true,
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if !req.Unlimited {
		plan.ProfileViewsLimit = req.ProfileViewsLimit
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.planRepo.Create(c.UserContext(), plan); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(plan)
}

// AdminUpdatePlan handles PUT /api/admin/plans/:id
func (s *Server) AdminUpdatePlan(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	plan, err := s.planRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	invalidateOldName := plan.Name
	if req.Name != "" {
		plan.Name = req.Name
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.DurationMonths != nil {
		if *req.DurationMonths <= 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("duration_months must be positive"))
		}
		plan.DurationMonths = *req.DurationMonths
	}
	if req.Unlimited {
		plan.ProfileViewsLimit = nil
	} else if req.ProfileViewsLimit != nil {
		if *req.ProfileViewsLimit < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("profile_views_limit cannot be negative"))
		}
		plan.ProfileViewsLimit = req.ProfileViewsLimit
	}
	if req.Features != nil {
		plan.Features = req.Features
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.planRepo.Update(c.UserContext(), plan); err != nil {
		return respondError(c, err)
	}

	cache.InvalidatePlan(c.UserContext(), invalidateOldName)
	return c.JSON(plan)
}

// AdminDeletePlan handles DELETE /api/admin/plans/:id
func (s *Server) AdminDeletePlan(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.planRepo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Plan deleted"})
}

// AdminListCuratedMatches handles GET /api/admin/matches
func (s *Server) AdminListCuratedMatches(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	matches, err := s.curatedMatchRepo.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(matches)
}

// AdminCreateCuratedMatch handles POST /api/admin/matches
func (s *Server) AdminCreateCuratedMatch(c *fiber.Ctx) error {
	var req struct {
		UserID        uint   `json:"user_id"`
		MatchedUserID uint   `json:"matched_user_id"`
		Score         int    `json:"score"`
		Note          string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.UserID == 0 || req.MatchedUserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("user_id and matched_user_id are required"))
	}
	if req.UserID == req.MatchedUserID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A user cannot be matched with themself"))
	}
	if req.Score < 0 || req.Score > 100 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Score must be between 0 and 100"))
	}

	// Both sides must exist.
	if _, err := s.userRepo.GetByID(c.UserContext(), req.UserID); err != nil {
		return respondError(c, err)
	}
	if _, err := s.userRepo.GetByID(c.UserContext(), req.MatchedUserID); err != nil {
		return respondError(c, err)
	}

	match := &models.CuratedMatch{
		UserID:        req.UserID,
		MatchedUserID: req.MatchedUserID,
		Score:         req.Score,
		Status:        models.CuratedMatchStatusSuggested,
		Note:          req.Note,
	}
	if err := s.curatedMatchRepo.Create(c.UserContext(), match); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(match)
}

// AdminUpdateCuratedMatch handles PUT /api/admin/matches/:id
func (s *Server) AdminUpdateCuratedMatch(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	match, err := s.curatedMatchRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Score  *int    `json:"score"`
		Status *string `json:"status"`
		Note   *string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Score != nil {
		if *req.Score < 0 || *req.Score > 100 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Score must be between 0 and 100"))
		}
		match.Score = *req.Score
	}
	if req.Status != nil {
		status := models.CuratedMatchStatus(strings.ToLower(*req.Status))
		if status != models.CuratedMatchStatusSuggested && status != models.CuratedMatchStatusArchived {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Status must be 'suggested' or 'archived'"))
		}
		match.Status = status
	}
	if req.Note != nil {
		match.Note = *req.Note
	}

	if err := s.curatedMatchRepo.Update(c.UserContext(), match); err != nil {
		return respondError(c, err)
	}

	return c.JSON(match)
}

// AdminDeleteCuratedMatch handles DELETE /api/admin/matches/:id
func (s *Server) AdminDeleteCuratedMatch(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.curatedMatchRepo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Match deleted"})
}
