package routes

import (
	"github.com/gin-gonic/gin"

	"roombook/handlers"
)

// RegisterReservationRoutes registers all endpoints for the reservation engine.
func RegisterReservationRoutes(r *gin.Engine, h *handlers.ReservationHandler, ws *handlers.SyncHandler) {
	api := r.Group("/api/rooms")
	{
		api.GET("", h.ListRooms)
		api.GET("/:roomID/bookings", h.DayBookings)
		api.GET("/:roomID/slots", h.SlotGrid)
		api.POST("/:roomID/bookings", h.CreateBooking)
		api.DELETE("/:roomID/bookings/:id", h.CancelBooking)
		api.GET("/:roomID/ws", ws.Subscribe)
	}

	r.GET("/health", h.Health)
}
