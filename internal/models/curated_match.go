package models

import "time"

// CuratedMatchStatus represents the lifecycle of an admin-curated match.
type CuratedMatchStatus string

const (
	// CuratedMatchStatusSuggested is the initial state of a curated match.
	CuratedMatchStatusSuggested CuratedMatchStatus = "suggested"
	// CuratedMatchStatusArchived hides a curated match from the user.
	CuratedMatchStatusArchived CuratedMatchStatus = "archived"
)

// CuratedMatch is an admin-curated pairing surfaced as "Top Matches".
// It is a directed edge with a manually assigned score, independent of the
// interest graph.
type CuratedMatch struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	UserID        uint               `gorm:"not null;index" json:"user_id"`
	MatchedUserID uint               `gorm:"not null" json:"matched_user_id"`
	Score         int                `json:"score"`
	Status        CuratedMatchStatus `gorm:"type:varchar(20);default:'suggested'" json:"status"`
	Note          string             `json:"note"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	User        User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	MatchedUser User `gorm:"foreignKey:MatchedUserID" json:"matched_user,omitempty"`
}

// TableName specifies the table name for GORM
func (CuratedMatch) TableName() string {
	return "curated_matches"
}
