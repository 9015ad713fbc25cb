package service

import (
	"context"
	_ "embed"
	"log/slog"
	"sync"

	"kalyanam/internal/models"
	"kalyanam/internal/repository"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yml
var defaultSettingsYAML []byte

type settingsDefaults struct {
	Theme struct {
		PrimaryColor   string `yaml:"primary_color"`
		SecondaryColor string `yaml:"secondary_color"`
		AccentColor    string `yaml:"accent_color"`
		FontFamily     string `yaml:"font_family"`
		LogoURL        string `yaml:"logo_url"`
		SiteName       string `yaml:"site_name"`
	} `yaml:"theme"`
	Modules struct {
		RecommendationsEnabled bool `yaml:"recommendations_enabled"`
		SearchEnabled          bool `yaml:"search_enabled"`
		PublicSearchEnabled    bool `yaml:"public_search_enabled"`
		InterestsEnabled       bool `yaml:"interests_enabled"`
		TopMatchesEnabled      bool `yaml:"top_matches_enabled"`
		PhotoUploadEnabled     bool `yaml:"photo_upload_enabled"`
	} `yaml:"modules"`
}

var (
	defaultsOnce   sync.Once
	loadedDefaults settingsDefaults
)

func loadDefaults() settingsDefaults {
	defaultsOnce.Do(func() {
		if err := yaml.Unmarshal(defaultSettingsYAML, &loadedDefaults); err != nil {
			slog.Error("failed to parse embedded settings defaults", "error", err)
		}
	})
	return loadedDefaults
}

// SettingsService serves the typed site settings, falling back to embedded
// defaults until an admin has saved a row.
type SettingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService returns a new SettingsService.
func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// DefaultTheme returns the embedded theme defaults.
func DefaultTheme() models.ThemeSettings {
	d := loadDefaults()
	return models.ThemeSettings{
		PrimaryColor:   d.Theme.PrimaryColor,
		SecondaryColor: d.Theme.SecondaryColor,
		AccentColor:    d.Theme.AccentColor,
		FontFamily:     d.Theme.FontFamily,
		LogoURL:        d.Theme.LogoURL,
		SiteName:       d.Theme.SiteName,
	}
}

// DefaultModules returns the embedded module-flag defaults.
func DefaultModules() models.ModuleSettings {
	d := loadDefaults()
	return models.ModuleSettings{
		RecommendationsEnabled: d.Modules.RecommendationsEnabled,
		SearchEnabled:          d.Modules.SearchEnabled,
		PublicSearchEnabled:    d.Modules.PublicSearchEnabled,
		InterestsEnabled:       d.Modules.InterestsEnabled,
		TopMatchesEnabled:      d.Modules.TopMatchesEnabled,
		PhotoUploadEnabled:     d.Modules.PhotoUploadEnabled,
	}
}

// Theme returns the saved theme, or the embedded defaults when no row exists.
func (s *SettingsService) Theme(ctx context.Context) (models.ThemeSettings, error) {
	saved, err := s.repo.GetTheme(ctx)
	if err != nil {
		return models.ThemeSettings{}, err
	}
	if saved == nil {
		return DefaultTheme(), nil
	}
	return *saved, nil
}

// SaveTheme persists an admin's theme update.
func (s *SettingsService) SaveTheme(ctx context.Context, theme *models.ThemeSettings) error {
	return s.repo.SaveTheme(ctx, theme)
}

// Modules returns the saved module flags, or the embedded defaults when no
// row exists.
func (s *SettingsService) Modules(ctx context.Context) (models.ModuleSettings, error) {
	saved, err := s.repo.GetModules(ctx)
	if err != nil {
		return models.ModuleSettings{}, err
	}
	if saved == nil {
		return DefaultModules(), nil
	}
	return *saved, nil
}

// SaveModules persists an admin's module-flag update.
func (s *SettingsService) SaveModules(ctx context.Context, modules *models.ModuleSettings) error {
	return s.repo.SaveModules(ctx, modules)
}
