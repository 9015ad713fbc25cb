package models

import "time"

// Preference is the partner-preference record of a user. All fields are
// optional: a nil range bound or empty string means "no preference" and
// contributes nothing to the match score.
type Preference struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	AgeMin        *int      `json:"age_min"`
	AgeMax        *int      `json:"age_max"`
	HeightMinCm   *int      `json:"height_min_cm"`
	HeightMaxCm   *int      `json:"height_max_cm"`
	Education     string    `json:"education"`
	Religion      string    `json:"religion"`
	Location      string    `json:"location"`
	MaritalStatus string    `json:"marital_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Preference) TableName() string {
	return "preferences"
}
