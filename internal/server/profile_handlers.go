package server

import (
	"io"
	"strings"

	"kalyanam/internal/models"
	"kalyanam/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile handles PUT /api/profile/update
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 400 {object} object{error=string}
// @Router /profile/update [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.profileRepo.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		HeightCm      *int    `json:"height_cm"`
		WeightKg      *int    `json:"weight_kg"`
		Religion      *string `json:"religion"`
		Caste         *string `json:"caste"`
		Education     *string `json:"education"`
		Occupation    *string `json:"occupation"`
		AnnualIncome  *string `json:"annual_income"`
		MaritalStatus *string `json:"marital_status"`
		City          *string `json:"city"`
		State         *string `json:"state"`
		Country       *string `json:"country"`
		MotherTongue  *string `json:"mother_tongue"`
		Rashi         *string `json:"rashi"`
		Nakshatra     *string `json:"nakshatra"`
		Gotra         *string `json:"gotra"`
		Manglik       *bool   `json:"manglik"`
		AboutMe       *string `json:"about_me"`
		FamilyDetails *string `json:"family_details"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.HeightCm != nil {
		if *req.HeightCm < 50 || *req.HeightCm > 250 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Height must be between 50 and 250 cm"))
		}
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.Religion != nil {
		profile.Religion = *req.Religion
	}
	if req.Caste != nil {
		profile.Caste = *req.Caste
	}
	if req.Education != nil {
		profile.Education = *req.Education
	}
	if req.Occupation != nil {
		profile.Occupation = *req.Occupation
	}
	if req.AnnualIncome != nil {
		profile.AnnualIncome = *req.AnnualIncome
	}
	if req.MaritalStatus != nil {
		status := models.MaritalStatus(strings.ToLower(*req.MaritalStatus))
		switch status {
		case models.MaritalStatusNeverMarried, models.MaritalStatusDivorced, models.MaritalStatusWidowed:
			profile.MaritalStatus = status
		default:
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Marital status must be 'never_married', 'divorced' or 'widowed'"))
		}
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.State != nil {
		profile.State = *req.State
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.MotherTongue != nil {
		profile.MotherTongue = *req.MotherTongue
	}
	if req.Rashi != nil {
		profile.Rashi = *req.Rashi
	}
	if req.Nakshatra != nil {
		profile.Nakshatra = *req.Nakshatra
	}
	if req.Gotra != nil {
		profile.Gotra = *req.Gotra
	}
	if req.Manglik != nil {
		profile.Manglik = *req.Manglik
	}
	if req.AboutMe != nil {
		profile.AboutMe = *req.AboutMe
	}
	if req.FamilyDetails != nil {
		profile.FamilyDetails = *req.FamilyDetails
	}

	if err := s.profileRepo.Update(c.UserContext(), profile); err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// GetProfile handles GET /api/profile/:id. The view-quota gate runs before
// the fetch; allowed views of someone else's profile are recorded
// best-effort after the response data is loaded.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	viewerID := c.Locals("userID").(uint)
	profileID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	check, err := s.membershipService.CheckViewLimit(c.UserContext(), viewerID, profileID)
	if err != nil {
		return respondError(c, err)
	}
	if !check.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":  check.Message,
			"reason": check.Reason,
		})
	}

	user, err := s.userRepo.GetByIDWithProfile(c.UserContext(), profileID)
	if err != nil {
		return respondError(c, err)
	}

	s.membershipService.RecordView(c.UserContext(), viewerID, profileID)

	return c.JSON(user)
}

// CanViewProfile handles GET /api/profile/can-view/:profileId. It reports
// the quota decision without recording a view, so clients can gate
// navigation before fetching.
func (s *Server) CanViewProfile(c *fiber.Ctx) error {
	viewerID := c.Locals("userID").(uint)
	profileID, err := s.parseID(c, "profileId")
	if err != nil {
		return nil
	}

	check, err := s.membershipService.CheckViewLimit(c.UserContext(), viewerID, profileID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(check)
}

// GetPreferences handles GET /api/profile/preferences
func (s *Server) GetPreferences(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	pref, err := s.preferenceRepo.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	if pref == nil {
		pref = &models.Preference{UserID: userID}
	}

	return c.JSON(pref)
}

// UpdatePreferences handles PUT /api/profile/preferences
func (s *Server) UpdatePreferences(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		AgeMin        *int   `json:"age_min"`
		AgeMax        *int   `json:"age_max"`
		HeightMinCm   *int   `json:"height_min_cm"`
		HeightMaxCm   *int   `json:"height_max_cm"`
		Education     string `json:"education"`
		Religion      string `json:"religion"`
		Location      string `json:"location"`
		MaritalStatus string `json:"marital_status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.AgeMin != nil && req.AgeMax != nil && *req.AgeMin > *req.AgeMax {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Minimum age cannot exceed maximum age"))
	}
	if req.AgeMin != nil && *req.AgeMin < 18 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Minimum age cannot be below 18"))
	}
	if req.HeightMinCm != nil && req.HeightMaxCm != nil && *req.HeightMinCm > *req.HeightMaxCm {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Minimum height cannot exceed maximum height"))
	}

	pref := &models.Preference{
		UserID:        userID,
		AgeMin:        req.AgeMin,
		AgeMax:        req.AgeMax,
		HeightMinCm:   req.HeightMinCm,
		HeightMaxCm:   req.HeightMaxCm,
		Education:     req.Education,
		Religion:      req.Religion,
		Location:      req.Location,
		MaritalStatus: req.MaritalStatus,
	}
	if err := s.preferenceRepo.Upsert(c.UserContext(), pref); err != nil {
		return respondError(c, err)
	}

	return c.JSON(pref)
}

// GetViewedMe handles GET /api/profile/viewed-me, listing recent viewers of
// the caller's profile.
func (s *Server) GetViewedMe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 20)

	views, err := s.profileViewRepo.RecentViewers(c.UserContext(), userID, p.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views)
}

// UploadPhoto handles POST /api/profile/upload-photo (multipart/form-data)
func (s *Server) UploadPhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	modules, err := s.settingsService.Modules(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	if !modules.PhotoUploadEnabled {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Photo uploads are currently disabled"))
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A 'photo' file field is required"))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	photoURL, err := s.photoService.Upload(c.UserContext(), service.UploadPhotoInput{
		UserID:      userID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"photo_url": photoURL})
}
