package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"hallbook/src/common"
	"hallbook/src/middlewares"
	"hallbook/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type TestSuite struct {
	suite.Suite
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestReservationsRequireAuth() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	apiv1.Use(middlewares.AuthMiddleware)
	reservationHandlers(apiv1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reservations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 401, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/v1/reservations", nil)
	req.Header.Set("Authorization", "Bearer ")
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 401, w.Code)

	// A bare scheme with no token at all must be rejected, not panic.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/v1/reservations", nil)
	req.Header.Set("Authorization", "Bearer")
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 401, w.Code)
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{common.ErrReservationNotFound, 404},
		{common.ErrHallNotFound, 404},
		{common.ErrReservationExpired, 410},
		{common.ErrNotAllowed, 403},
		{common.ErrAlreadyConverted, 409},
		{common.ErrReservationNotActive, 409},
		{common.ErrDepositUnpaid, 409},
		{common.ErrDurationTooShort, 400},
		{common.ErrDailyRateOnly, 400},
		{common.ErrUnsupportedPaymentMethod, 400},
		{&common.ConflictError{Kind: "booking"}, 409},
		{&common.RangeValidationError{Index: 0}, 400},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, statusForError(c.err), "error %v", c.err)
	}
}

func TestParseDateRanges(t *testing.T) {
	ranges, err := parseDateRanges([]types.DateRangeInput{
		{StartTime: "2026-10-01 14:00:00 +00:00", EndTime: "2026-10-01 17:00:00 +00:00"},
	})
	assert.Nil(t, err)
	assert.Len(t, ranges, 1)
	assert.Equal(t, 3*time.Hour, ranges[0].EndTime.Sub(ranges[0].StartTime))

	_, err = parseDateRanges([]types.DateRangeInput{
		{StartTime: "not-a-date", EndTime: "2026-10-01 17:00:00 +00:00"},
	})
	assert.NotNil(t, err)
}

func (s *TestSuite) TestCreateReservationRejectsBadBody() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	reservationHandlers(apiv1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/reservations", strings.NewReader(`{"dates": []}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 400, w.Code)
	body, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	errMsg := gjson.Get(string(body), "error").String()
	assert.NotEmpty(s.T(), errMsg)
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
