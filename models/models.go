// File: models/models.go
package models

import "time"

// Room is one of the two bookable meeting rooms. Instances are static;
// Collection names the room's booking collection in the store.
type Room struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Collection string `json:"-"`
}

// Rooms is the fixed set of bookable rooms.
var Rooms = []Room{
	{ID: "downstairs", Name: "Minara", Collection: "bookings_downstairs"},
	{ID: "upstairs", Name: "Qala", Collection: "bookings_upstairs"},
}

// RoomByID resolves a room id against the static room set.
func RoomByID(id string) (Room, bool) {
	for _, r := range Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// Booking is one reservation record. Records are immutable once created:
// there is no update, only create and delete. The secret is stored already
// normalized and never serialized to clients.
type Booking struct {
	ID        string    `json:"id" bson:"id"`
	RoomID    string    `json:"roomId" bson:"roomId"`
	Date      string    `json:"date" bson:"date"`           // YYYY-MM-DD
	StartTime string    `json:"startTime" bson:"startTime"` // HH:MM, grid-aligned
	EndTime   string    `json:"endTime" bson:"endTime"`     // HH:MM, exclusive
	Name      string    `json:"name" bson:"name"`
	Project   string    `json:"project" bson:"project"`
	Secret    string    `json:"-" bson:"secret"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// BookingView decorates a Booking with its status relative to now. The
// status is recomputed on every listing and snapshot, never persisted.
type BookingView struct {
	Booking
	Status string `json:"status"`
}

// SlotOption is one selectable entry in the start- or end-time grid.
type SlotOption struct {
	Label     string `json:"label"`
	Value     string `json:"value"` // HH:MM ("24:00" allowed as an end)
	Available bool   `json:"available"`
}
