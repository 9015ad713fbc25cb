package database

import "kalyanam/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Preference{},
		&models.Interest{},
		&models.CuratedMatch{},
		&models.ProfileView{},
		&models.MembershipPlan{},
		&models.ThemeSettings{},
		&models.ModuleSettings{},
	}
}
