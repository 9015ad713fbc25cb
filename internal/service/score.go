// Package service contains the domain logic of the matchmaking platform.
package service

import (
	"strings"

	"kalyanam/internal/models"
)

// Score point budget per preference field. The six contributions sum to 100
// for a candidate matching every stated preference.
const (
	agePoints           = 30
	heightPoints        = 20
	educationPoints     = 15
	religionPoints      = 15
	cityPoints          = 10
	maritalStatusPoints = 10

	maxScore = 100
)

// Candidate carries the profile attributes that participate in scoring.
type Candidate struct {
	Age           int
	HeightCm      int
	Education     string
	Religion      string
	City          string
	MaritalStatus string
}

// CandidateFromUser flattens a user and profile into scoring attributes.
func CandidateFromUser(u *models.User, age int) Candidate {
	c := Candidate{Age: age}
	if u.Profile != nil {
		c.HeightCm = u.Profile.HeightCm
		c.Education = u.Profile.Education
		c.Religion = u.Profile.Religion
		c.City = u.Profile.City
		c.MaritalStatus = string(u.Profile.MaritalStatus)
	}
	return c
}

// CalculateMatchScore computes the 0..100 compatibility score of a candidate
// against a viewer's stated preferences. Each field is evaluated
// independently; an absent preference contributes nothing. Age is the only
// field with partial credit: outside the preferred range the contribution
// decays by 2 points per year of distance from the nearest bound.
func CalculateMatchScore(c Candidate, pref *models.Preference) int {
	if pref == nil {
		return 0
	}

	score := 0

	// Age: requires both bounds. A preference with only one bound set is
	// treated as absent rather than evaluated against an open interval.
	if pref.AgeMin != nil && pref.AgeMax != nil {
		if c.Age >= *pref.AgeMin && c.Age <= *pref.AgeMax {
			score += agePoints
		} else {
			distMin := abs(c.Age - *pref.AgeMin)
			distMax := abs(c.Age - *pref.AgeMax)
			dist := distMin
			if distMax < dist {
				dist = distMax
			}
			partial := agePoints - 2*dist
			if partial > 0 {
				score += partial
			}
		}
	}

	// Height: all or nothing, no partial credit.
	if pref.HeightMinCm != nil && pref.HeightMaxCm != nil {
		if c.HeightCm >= *pref.HeightMinCm && c.HeightCm <= *pref.HeightMaxCm {
			score += heightPoints
		}
	}

	// Education: case-insensitive substring match against the candidate's education.
	if pref.Education != "" {
		if strings.Contains(strings.ToLower(c.Education), strings.ToLower(pref.Education)) {
			score += educationPoints
		}
	}

	// Religion: exact match.
	if pref.Religion != "" && c.Religion == pref.Religion {
		score += religionPoints
	}

	// Location: case-insensitive substring match against the candidate's city.
	if pref.Location != "" {
		if strings.Contains(strings.ToLower(c.City), strings.ToLower(pref.Location)) {
			score += cityPoints
		}
	}

	// Marital status: exact match.
	if pref.MaritalStatus != "" && c.MaritalStatus == pref.MaritalStatus {
		score += maritalStatusPoints
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
