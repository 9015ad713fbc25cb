package server

import (
	"net/http"
	"testing"
	"time"

	"kalyanam/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetMembershipPlans(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/membership/plans", s.GetMembershipPlans)

	limit := 25
	m.plans.On("ListActive", mock.Anything).Return([]models.MembershipPlan{
		{ID: 1, Name: "silver", DurationMonths: 1, ProfileViewsLimit: &limit},
		{ID: 2, Name: "platinum", DurationMonths: 6},
	}, nil)

	resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/membership/plans", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plans []models.MembershipPlan
	decodeBody(t, resp, &plans)
	require.Len(t, plans, 2)
	assert.Equal(t, "silver", plans[0].Name)
	assert.Nil(t, plans[1].ProfileViewsLimit)
}

func TestGetMembershipStatus(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/membership/status", asUser(1), s.GetMembershipStatus)

	gold := "gold"
	expiry := time.Now().Add(45 * 24 * time.Hour)
	m.users.On("GetByID", mock.Anything, uint(1)).Return(&models.User{
		ID:               1,
		MembershipType:   &gold,
		MembershipExpiry: &expiry,
		PaymentStatus:    models.PaymentStatusPaid,
	}, nil)
	m.plans.On("GetByName", mock.Anything, "gold").Return(&models.MembershipPlan{
		ID: 3, Name: "gold", DurationMonths: 3,
	}, nil)

	resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/membership/status", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, true, body["active"])
	assert.Equal(t, "gold", body["membership_type"])
	assert.NotNil(t, body["plan"])
}

func TestGetMembershipStatusExpired(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/membership/status", asUser(1), s.GetMembershipStatus)

	gold := "gold"
	expiry := time.Now().Add(-24 * time.Hour)
	m.users.On("GetByID", mock.Anything, uint(1)).Return(&models.User{
		ID:               1,
		MembershipType:   &gold,
		MembershipExpiry: &expiry,
	}, nil)

	resp, _ := app.Test(jsonRequest(t, http.MethodGet, "/membership/status", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, false, body["active"])
	assert.Nil(t, body["plan"])
	m.plans.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}
