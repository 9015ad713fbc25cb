package models

import "time"

// ProfileView is an append-only log entry recording that a viewer opened a
// profile. Rows are not deduplicated at insert time; quota accounting
// deduplicates with COUNT(DISTINCT viewed_id) at read time.
type ProfileView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ViewerID  uint      `gorm:"not null;index:idx_profile_views_viewer" json:"viewer_id"`
	ViewedID  uint      `gorm:"not null;index" json:"viewed_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Viewer User `gorm:"foreignKey:ViewerID" json:"viewer,omitempty"`
	Viewed User `gorm:"foreignKey:ViewedID" json:"viewed,omitempty"`
}

// TableName specifies the table name for GORM
func (ProfileView) TableName() string {
	return "profile_views"
}
