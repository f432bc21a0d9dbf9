package models

import "time"

// Booking represents a reservation linking a user to a room.
//
// Clients attach arbitrary detail fields to a booking (dates, guest count,
// denormalized room info for their own UI). Those ride along in Details and
// are stored inline on the document, so a partial update can address them by
// their top-level key.
type Booking struct {
	ID        string                 `bson:"id" json:"id"`               // Unique booking identifier (UUID)
	UserEmail string                 `bson:"userEmail" json:"userEmail"` // User who made the booking
	RoomID    string                 `bson:"roomId" json:"roomId"`       // Room being booked
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
	Details   map[string]interface{} `bson:",inline" json:"details,omitempty"`
}
