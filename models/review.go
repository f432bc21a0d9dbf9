package models

import "time"

// Review is a user-submitted rating and comment tied to a room.
// Reviews are append-only; nothing in the system mutates or deletes them.
type Review struct {
	ID        string    `bson:"id" json:"id"`               // Unique review identifier (UUID)
	RoomID    string    `bson:"roomId" json:"roomId"`       // Room being reviewed
	UserEmail string    `bson:"userEmail" json:"userEmail"` // Reviewer
	Rating    float64   `bson:"rating" json:"rating"`       // Score folded into the room's running mean
	Comment   string    `bson:"comment" json:"comment"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
