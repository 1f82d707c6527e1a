package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"roombook/services/reservation"
	"roombook/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The API is already open cross-origin; the socket follows suit.
		return true
	},
}

// SyncHandler bridges the sync hub to websocket clients. One socket is one
// (room, date) subscription; changing the date means reconnecting, which
// structurally guarantees the old subscription is torn down first.
type SyncHandler struct {
	Hub *reservation.SyncHub
}

// Subscribe upgrades the request and streams full day snapshots until the
// client disconnects or the feed fails.
func (h *SyncHandler) Subscribe(c *gin.Context) {
	sub, err := h.Hub.Subscribe(c.Request.Context(), c.Param("roomID"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		sub.Unsubscribe()
		utils.GetLogger().Sugar().Warnf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	defer sub.Unsubscribe()

	// Drain client frames so the read side reports the disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snap, ok := <-sub.C:
			if !ok {
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
