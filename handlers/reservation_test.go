package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/models"
	"roombook/services/reservation"
)

// stubService returns canned results so handler tests only exercise the
// HTTP mapping, not the engine.
type stubService struct {
	createErr error
	cancelErr error
	views     []models.BookingView
	viewsErr  error
}

func (s *stubService) Rooms() []models.Room { return models.Rooms }

func (s *stubService) DayBookings(ctx context.Context, roomID, date string) ([]models.BookingView, error) {
	return s.views, s.viewsErr
}

func (s *stubService) SlotGrid(ctx context.Context, roomID, date, start string) (*reservation.SlotGridResult, error) {
	return &reservation.SlotGridResult{}, nil
}

func (s *stubService) Create(ctx context.Context, req reservation.CreateRequest) (*models.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Booking{ID: "bk-1", RoomID: req.RoomID, Date: req.Date}, nil
}

func (s *stubService) Cancel(ctx context.Context, roomID, id, secret string) error {
	return s.cancelErr
}

func newTestRouter(svc reservation.ReservationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReservationHandler(svc, nil)
	api := r.Group("/api/rooms")
	api.GET("/:roomID/bookings", h.DayBookings)
	api.POST("/:roomID/bookings", h.CreateBooking)
	api.DELETE("/:roomID/bookings/:id", h.CancelBooking)
	api.GET("", h.ListRooms)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingCreated(t *testing.T) {
	r := newTestRouter(&stubService{})
	w := doJSON(t, r, http.MethodPost, "/api/rooms/downstairs/bookings",
		`{"date":"2026-09-15","startTime":"09:30","endTime":"10:00","name":"Dana","secret":"opensesame"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestErrorTaxonomyMapsToStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", reservation.NewValidationError("bad input"), http.StatusBadRequest},
		{"conflict", reservation.NewConflictError("slot taken"), http.StatusConflict},
		{"not found", reservation.NewNotFoundError("gone"), http.StatusNotFound},
		{"transport", reservation.NewTransportError("store down"), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubService{createErr: tc.err})
			w := doJSON(t, r, http.MethodPost, "/api/rooms/downstairs/bookings",
				`{"date":"2026-09-15","startTime":"09:30","endTime":"10:00","name":"Dana","secret":"opensesame"}`)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestConflictResponseRequestsResync(t *testing.T) {
	r := newTestRouter(&stubService{createErr: reservation.NewConflictError("slot taken")})
	w := doJSON(t, r, http.MethodPost, "/api/rooms/downstairs/bookings",
		`{"date":"2026-09-15","startTime":"09:30","endTime":"10:00","name":"Dana","secret":"opensesame"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["resync"], "conflict instructs the caller to resynchronize")
}

func TestCancelOutcomes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"wrong secret", reservation.NewWrongSecretError("wrong secret"), http.StatusForbidden},
		{"already cancelled", reservation.NewNotFoundError("gone"), http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubService{cancelErr: tc.err})
			w := doJSON(t, r, http.MethodDelete, "/api/rooms/downstairs/bookings/bk-1", `{"secret":"opensesame"}`)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestListRooms(t *testing.T) {
	r := newTestRouter(&stubService{})
	w := doJSON(t, r, http.MethodGet, "/api/rooms", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Rooms []models.Room `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Rooms, 2)
}
