package models

import (
	"time"
)

// MaritalStatus enumerates the marital status values used for matching.
type MaritalStatus string

const (
	// MaritalStatusNeverMarried indicates a user who has never been married.
	MaritalStatusNeverMarried MaritalStatus = "never_married"
	// MaritalStatusDivorced indicates a divorced user.
	MaritalStatusDivorced MaritalStatus = "divorced"
	// MaritalStatusWidowed indicates a widowed user.
	MaritalStatusWidowed MaritalStatus = "widowed"
)

// Profile holds the matrimonial attributes of a user. A profile row is
// created empty alongside the user at registration and is only mutated by
// the owning user or an admin.
type Profile struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        uint          `gorm:"uniqueIndex;not null" json:"user_id"`
	HeightCm      int           `json:"height_cm"`
	WeightKg      int           `json:"weight_kg"`
	Religion      string        `json:"religion"`
	Caste         string        `json:"caste"`
	Education     string        `json:"education"`
	Occupation    string        `json:"occupation"`
	AnnualIncome  string        `json:"annual_income"`
	MaritalStatus MaritalStatus `gorm:"type:varchar(20)" json:"marital_status"`
	City          string        `json:"city"`
	State         string        `json:"state"`
	Country       string        `json:"country"`
	MotherTongue  string        `json:"mother_tongue"`
	Rashi         string        `json:"rashi"`
	Nakshatra     string        `json:"nakshatra"`
	Gotra         string        `json:"gotra"`
	Manglik       bool          `json:"manglik"`
	AboutMe       string        `gorm:"type:text" json:"about_me"`
	FamilyDetails string        `gorm:"type:text" json:"family_details"`
	PhotoURL      string        `json:"photo_url"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}

// Placeholders used when profile data is redacted for the public
// (unauthenticated) search surface. These exact strings are part of the
// public API contract.
const (
	RedactedPhone   = "**********"
	RedactedEmail   = "***@***.com"
	RedactedAddress = "Hidden"
)

// PublicProfile is the redacted candidate view returned by public search.
// Contact details are replaced with fixed placeholders, the surname is
// truncated to its initial, and location narrows to the city only.
type PublicProfile struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	HeightCm      int           `json:"height_cm"`
	Religion      string        `json:"religion"`
	Caste         string        `json:"caste"`
	Education     string        `json:"education"`
	Occupation    string        `json:"occupation"`
	MaritalStatus MaritalStatus `json:"marital_status"`
	City          string        `json:"city"`
	State         string        `json:"state"`
	PhotoURL      string        `json:"photo_url"`
}

// Redact builds the public view of a user and profile pair.
func Redact(u *User, p *Profile, now time.Time) PublicProfile {
	name := u.FirstName
	if u.LastName != "" {
		name = u.FirstName + " " + string([]rune(u.LastName)[0]) + "."
	}

	out := PublicProfile{
		ID:     u.ID,
		Name:   name,
		Age:    u.Age(now),
		Gender: u.Gender,
		Phone:  RedactedPhone,
		Email:  RedactedEmail,
	}
	if p != nil {
		out.HeightCm = p.HeightCm
		out.Religion = p.Religion
		out.Caste = p.Caste
		out.Education = p.Education
		out.Occupation = p.Occupation
		out.MaritalStatus = p.MaritalStatus
		// City stays visible as the search dimension; anything narrower
		// than that is hidden.
		out.City = p.City
		out.State = RedactedAddress
		out.PhotoURL = p.PhotoURL
	}
	return out
}
