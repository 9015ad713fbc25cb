package service

import (
	"testing"

	"kalyanam/internal/models"

	"github.com/stretchr/testify/assert"
)

func intp(n int) *int { return &n }

func fullPreference() *models.Preference {
	return &models.Preference{
		AgeMin:        intp(28),
		AgeMax:        intp(34),
		HeightMinCm:   intp(150),
		HeightMaxCm:   intp(175),
		Education:     "MBA",
		Religion:      "Hindu",
		Location:      "Chennai",
		MaritalStatus: "never_married",
	}
}

func TestCalculateMatchScore_PerfectMatch(t *testing.T) {
	t.Parallel()

	candidate := Candidate{
		Age:           31,
		HeightCm:      160,
		Education:     "MBA Finance",
		Religion:      "Hindu",
		City:          "Chennai",
		MaritalStatus: "never_married",
	}

	assert.Equal(t, 100, CalculateMatchScore(candidate, fullPreference()))
}

func TestCalculateMatchScore_AgePartialCredit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		age  int
		want int // age contribution only; other fields held at full match
	}{
		{"inside range", 30, 30},
		{"at lower bound", 28, 30},
		{"at upper bound", 34, 30},
		{"one year under", 27, 28},
		{"five years over", 39, 20},
		{"fifteen years over", 49, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := Candidate{
				Age:           tt.age,
				HeightCm:      160,
				Education:     "MBA",
				Religion:      "Hindu",
				City:          "Chennai",
				MaritalStatus: "never_married",
			}
			got := CalculateMatchScore(candidate, fullPreference())
			assert.Equal(t, 70+tt.want, got)
		})
	}
}

func TestCalculateMatchScore_HeightNoPartialCredit(t *testing.T) {
	t.Parallel()

	pref := fullPreference()
	candidate := Candidate{
		Age:           31,
		HeightCm:      176, // one cm over: whole 20 points lost
		Education:     "MBA",
		Religion:      "Hindu",
		City:          "Chennai",
		MaritalStatus: "never_married",
	}
	assert.Equal(t, 80, CalculateMatchScore(candidate, pref))
}

func TestCalculateMatchScore_MissingPreferenceFields(t *testing.T) {
	t.Parallel()

	candidate := Candidate{
		Age:           31,
		HeightCm:      160,
		Education:     "MBA",
		Religion:      "Hindu",
		City:          "Chennai",
		MaritalStatus: "never_married",
	}

	t.Run("nil preference scores zero", func(t *testing.T) {
		assert.Equal(t, 0, CalculateMatchScore(candidate, nil))
	})

	t.Run("empty preference scores zero", func(t *testing.T) {
		assert.Equal(t, 0, CalculateMatchScore(candidate, &models.Preference{}))
	})

	t.Run("missing age bounds contribute nothing", func(t *testing.T) {
		pref := fullPreference()
		pref.AgeMin = nil
		pref.AgeMax = nil
		assert.Equal(t, 70, CalculateMatchScore(candidate, pref))
	})

	t.Run("single age bound treated as absent", func(t *testing.T) {
		pref := fullPreference()
		pref.AgeMax = nil
		assert.Equal(t, 70, CalculateMatchScore(candidate, pref))
	})
}

func TestCalculateMatchScore_SubstringSemantics(t *testing.T) {
	t.Parallel()

	pref := fullPreference()

	t.Run("education substring is case-insensitive", func(t *testing.T) {
		candidate := Candidate{Age: 31, HeightCm: 160, Education: "mba finance", Religion: "Hindu", City: "Chennai", MaritalStatus: "never_married"}
		assert.Equal(t, 100, CalculateMatchScore(candidate, pref))
	})

	t.Run("religion requires exact match", func(t *testing.T) {
		candidate := Candidate{Age: 31, HeightCm: 160, Education: "MBA", Religion: "Hinduism", City: "Chennai", MaritalStatus: "never_married"}
		assert.Equal(t, 85, CalculateMatchScore(candidate, pref))
	})

	t.Run("city substring matches within longer name", func(t *testing.T) {
		candidate := Candidate{Age: 31, HeightCm: 160, Education: "MBA", Religion: "Hindu", City: "Greater Chennai", MaritalStatus: "never_married"}
		assert.Equal(t, 100, CalculateMatchScore(candidate, pref))
	})
}

func TestCalculateMatchScore_Bounds(t *testing.T) {
	t.Parallel()

	// Exhaustive-ish sweep: the score must always stay within [0, 100].
	ages := []int{0, 18, 25, 31, 60, 99}
	heights := []int{0, 140, 160, 200}
	for _, age := range ages {
		for _, h := range heights {
			candidate := Candidate{
				Age:           age,
				HeightCm:      h,
				Education:     "MBA",
				Religion:      "Hindu",
				City:          "Chennai",
				MaritalStatus: "never_married",
			}
			got := CalculateMatchScore(candidate, fullPreference())
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}
