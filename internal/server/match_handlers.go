package server

import (
	"strings"

	"kalyanam/internal/models"
	"kalyanam/internal/service"

	"github.com/gofiber/fiber/v2"
)

// requireModule checks a module flag and writes a 403 when the surface is
// disabled. It returns errResponseWritten in that case.
func (s *Server) requireModule(c *fiber.Ctx, enabled func(models.ModuleSettings) bool, name string) error {
	modules, err := s.settingsService.Modules(c.UserContext())
	if err != nil {
		_ = respondError(c, err)
		return errResponseWritten
	}
	if !enabled(modules) {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError(name+" is currently disabled"))
		return errResponseWritten
	}
	return nil
}

// GetRecommendations handles GET /api/match/recommendations
// @Summary Daily recommendations
// @Description Scored opposite-gender candidates, best match first
// @Tags match
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum results (default 10)"
// @Success 200 {array} service.ScoredCandidate
// @Failure 400 {object} object{error=string}
// @Router /match/recommendations [get]
func (s *Server) GetRecommendations(c *fiber.Ctx) error {
	if err := s.requireModule(c, func(m models.ModuleSettings) bool { return m.RecommendationsEnabled }, "Recommendations"); err != nil {
		return nil
	}

	userID := c.Locals("userID").(uint)
	limit := c.QueryInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	recs, err := s.recommendationService.GetDailyRecommendations(c.UserContext(), userID, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(recs)
}

// GetTopMatches handles GET /api/match/top-matches, returning the curated
// matches an admin has suggested for the caller, highest score first.
func (s *Server) GetTopMatches(c *fiber.Ctx) error {
	if err := s.requireModule(c, func(m models.ModuleSettings) bool { return m.TopMatchesEnabled }, "Top matches"); err != nil {
		return nil
	}

	userID := c.Locals("userID").(uint)

	matches, err := s.curatedMatchRepo.ListForUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(matches)
}

func searchCriteriaFromQuery(c *fiber.Ctx, p Pagination) service.SearchCriteria {
	return service.SearchCriteria{
		AgeMin:        parseIntQuery(c, "age_min"),
		AgeMax:        parseIntQuery(c, "age_max"),
		HeightMinCm:   parseIntQuery(c, "height_min_cm"),
		HeightMaxCm:   parseIntQuery(c, "height_max_cm"),
		Religion:      c.Query("religion"),
		Caste:         c.Query("caste"),
		City:          c.Query("city"),
		MaritalStatus: strings.ToLower(c.Query("marital_status")),
		Limit:         p.Limit,
		Offset:        p.Offset,
	}
}

// Search handles GET /api/match/search
// @Summary Filtered member search
// @Tags match
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Router /match/search [get]
func (s *Server) Search(c *fiber.Ctx) error {
	if err := s.requireModule(c, func(m models.ModuleSettings) bool { return m.SearchEnabled }, "Search"); err != nil {
		return nil
	}

	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 20)

	users, err := s.searchService.Search(c.UserContext(), userID, searchCriteriaFromQuery(c, p))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

// PublicSearch handles GET /api/match/public-search. No authentication;
// every result is redacted before leaving the server.
func (s *Server) PublicSearch(c *fiber.Ctx) error {
	if err := s.requireModule(c, func(m models.ModuleSettings) bool { return m.PublicSearchEnabled }, "Public search"); err != nil {
		return nil
	}

	gender := models.Gender(strings.ToLower(c.Query("gender")))
	if gender != "" && gender != models.GenderMale && gender != models.GenderFemale {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Gender must be 'male' or 'female'"))
	}

	p := parsePagination(c, 20)
	profiles, err := s.searchService.PublicSearch(c.UserContext(), gender, searchCriteriaFromQuery(c, p))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profiles)
}
