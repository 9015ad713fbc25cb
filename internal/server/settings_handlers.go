package server

import (
	"kalyanam/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetThemeSettings handles GET /api/settings/theme (public).
func (s *Server) GetThemeSettings(c *fiber.Ctx) error {
	theme, err := s.settingsService.Theme(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(theme)
}

// GetModuleSettings handles GET /api/settings/modules (public). Clients use
// the flags to hide disabled surfaces; the server enforces them regardless.
func (s *Server) GetModuleSettings(c *fiber.Ctx) error {
	modules, err := s.settingsService.Modules(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(modules)
}

// AdminUpdateThemeSettings handles PUT /api/admin/settings/theme.
func (s *Server) AdminUpdateThemeSettings(c *fiber.Ctx) error {
	var theme models.ThemeSettings
	if err := c.BodyParser(&theme); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.settingsService.SaveTheme(c.UserContext(), &theme); err != nil {
		return respondError(c, err)
	}
	return c.JSON(theme)
}

// AdminUpdateModuleSettings handles PUT /api/admin/settings/modules.
func (s *Server) AdminUpdateModuleSettings(c *fiber.Ctx) error {
	var modules models.ModuleSettings
	if err := c.BodyParser(&modules); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.settingsService.SaveModules(c.UserContext(), &modules); err != nil {
		return respondError(c, err)
	}
	return c.JSON(modules)
}
