package models

import "time"

// MembershipPlan is an admin-configured catalog entry describing a paid
// plan. ProfileViewsLimit of nil means unlimited views, not zero.
type MembershipPlan struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Price             float64   `json:"price"`
	DurationMonths    int       `gorm:"not null" json:"duration_months"`
	ProfileViewsLimit *int      `json:"profile_views_limit"`
	Features          []string  `gorm:"serializer:json" json:"features"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (MembershipPlan) TableName() string {
	return "membership_plans"
}

// Period returns the length of the plan's membership period. Duration is
// approximated as 30 days per month for quota accounting.
func (p *MembershipPlan) Period() time.Duration {
	return time.Duration(p.DurationMonths) * 30 * 24 * time.Hour
}
