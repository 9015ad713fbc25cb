package models

import "time"

// ThemeSettings is the typed site-wide theme configuration. A single row
// (ID 1) is stored; absent values fall back to embedded defaults.
type ThemeSettings struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	AccentColor    string    `json:"accent_color"`
	FontFamily     string    `json:"font_family"`
	LogoURL        string    `json:"logo_url"`
	SiteName       string    `json:"site_name"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (ThemeSettings) TableName() string {
	return "theme_settings"
}

// ModuleSettings is the typed module-flag configuration controlling which
// product surfaces are enabled for clients. Single row, ID 1.
type ModuleSettings struct {
	ID                     uint      `gorm:"primaryKey" json:"-"`
	RecommendationsEnabled bool      `json:"recommendations_enabled"`
	SearchEnabled          bool      `json:"search_enabled"`
	PublicSearchEnabled    bool      `json:"public_search_enabled"`
	InterestsEnabled       bool      `json:"interests_enabled"`
	TopMatchesEnabled      bool      `json:"top_matches_enabled"`
	PhotoUploadEnabled     bool      `json:"photo_upload_enabled"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (ModuleSettings) TableName() string {
	return "module_settings"
}
