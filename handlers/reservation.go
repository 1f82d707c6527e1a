package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"roombook/config"
	"roombook/services/reservation"
	"roombook/utils"
)

// ReservationHandler exposes the reservation engine over HTTP. Cache is the
// optional day-listing cache; nil disables caching.
type ReservationHandler struct {
	Service reservation.ReservationService
	Cache   *redis.Client
}

func NewReservationHandler(svc reservation.ReservationService, cache *redis.Client) *ReservationHandler {
	return &ReservationHandler{Service: svc, Cache: cache}
}

// respondError maps the reservation error taxonomy onto HTTP statuses. A
// conflict response carries resync=true: the client must refresh its view of
// the day before offering the grid again.
func respondError(c *gin.Context, err error) {
	switch {
	case reservation.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
	case reservation.IsConflict(err):
		utils.GetLogger().Sugar().Infof("slot conflict: %v", err)
		c.JSON(http.StatusConflict, gin.H{"message": "slot conflict", "details": err.Error(), "resync": true})
	case reservation.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case reservation.IsWrongSecret(err):
		utils.JSONError(c, http.StatusForbidden, "wrong secret", err.Error())
	case reservation.IsTransport(err):
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// ListRooms returns the two static rooms.
func (h *ReservationHandler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.Service.Rooms()})
}

// DayBookings returns a (room, date) day listing with computed statuses.
// Listings are served cache-aside with a short TTL; every mutation and every
// observed change event drops the key.
func (h *ReservationHandler) DayBookings(c *gin.Context) {
	roomID := c.Param("roomID")
	date := c.Query("date")

	if h.Cache != nil {
		key := utils.DayListingKey(roomID, date)
		if data, err := h.Cache.Get(c.Request.Context(), key).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(data))
			return
		}
	}

	views, err := h.Service.DayBookings(c.Request.Context(), roomID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	payload, err := json.Marshal(gin.H{"bookings": views})
	if err != nil {
		respondError(c, err)
		return
	}
	if h.Cache != nil {
		ttl := time.Duration(config.AppConfig.SnapshotCacheTTL) * time.Second
		if err := h.Cache.Set(c.Request.Context(), utils.DayListingKey(roomID, date), payload, ttl).Err(); err != nil {
			utils.GetLogger().Sugar().Warnf("failed to cache day listing: %v", err)
		}
	}
	c.Data(http.StatusOK, "application/json", payload)
}

// SlotGrid returns the start-time options for a (room, date) and, when
// start=HH:MM is given, the end-time options for that start.
func (h *ReservationHandler) SlotGrid(c *gin.Context) {
	result, err := h.Service.SlotGrid(c.Request.Context(), c.Param("roomID"), c.Query("date"), c.Query("start"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateBooking runs the guarded creation protocol.
func (h *ReservationHandler) CreateBooking(c *gin.Context) {
	var req reservation.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.RoomID = c.Param("roomID")

	booking, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidate(c.Request.Context(), req.RoomID, req.Date)
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// CancelBooking runs the secret-verified deletion protocol. A not-found
// outcome is informational — the booking may have just been cancelled by
// someone else — and still maps to 404 so clients can tell it apart.
func (h *ReservationHandler) CancelBooking(c *gin.Context) {
	var req struct {
		Secret string `json:"secret"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	roomID := c.Param("roomID")
	if err := h.Service.Cancel(c.Request.Context(), roomID, c.Param("id"), req.Secret); err != nil {
		respondError(c, err)
		return
	}

	// The cancelled booking's date is unknown here; the cached day listing
	// falls out by TTL or by the change event.
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// Health reports the latest external-service health snapshot.
func (h *ReservationHandler) Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

func (h *ReservationHandler) invalidate(ctx context.Context, roomID, date string) {
	utils.InvalidateDayListing(ctx, h.Cache, roomID, date)
}
