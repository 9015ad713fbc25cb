// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender is the declared gender of a user.
type Gender string

const (
	// GenderMale is the male gender value.
	GenderMale Gender = "male"
	// GenderFemale is the female gender value.
	GenderFemale Gender = "female"
)

// Opposite returns the opposite gender, used for candidate filtering.
func (g Gender) Opposite() Gender {
	if g == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

// PaymentStatus tracks whether a user has paid for their membership.
type PaymentStatus string

const (
	// PaymentStatusPending indicates an unpaid registration.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid indicates a confirmed payment.
	PaymentStatusPaid PaymentStatus = "paid"
)

// User represents a registered member of the platform.
type User struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Email            string         `gorm:"unique;not null" json:"email"`
	Password         string         `gorm:"not null" json:"-"`
	FirstName        string         `gorm:"not null" json:"first_name"`
	LastName         string         `json:"last_name"`
	Phone            string         `json:"phone"`
	Gender           Gender         `gorm:"type:varchar(10)" json:"gender"`
	DateOfBirth      *time.Time     `json:"date_of_birth"`
	IsApproved       bool           `gorm:"default:false" json:"is_approved"`
	IsAdmin          bool           `gorm:"default:false" json:"is_admin"`
	PaymentStatus    PaymentStatus  `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	MembershipType   *string        `json:"membership_type"`
	MembershipExpiry *time.Time     `json:"membership_expiry"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Profile    *Profile    `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Preference *Preference `gorm:"foreignKey:UserID" json:"preference,omitempty"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// Age returns the user's age in whole years at the given time, or 0 when the
// date of birth is not set.
func (u *User) Age(now time.Time) int {
	if u.DateOfBirth == nil {
		return 0
	}
	age := now.Year() - u.DateOfBirth.Year()
	// Birthday not yet reached this year.
	if now.YearDay() < u.DateOfBirth.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// HasActiveMembership reports whether the user holds a membership that has
// not expired. An expiry in the past always means inactive, regardless of
// membership_type being set.
func (u *User) HasActiveMembership(now time.Time) bool {
	if u.MembershipType == nil || *u.MembershipType == "" {
		return false
	}
	if u.MembershipExpiry == nil {
		return false
	}
	return u.MembershipExpiry.After(now)
}

// FullName returns the display name of the user.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
