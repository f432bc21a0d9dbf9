package models

import "time"

// Room represents a bookable hotel room.
type Room struct {
	ID           string    `bson:"id" json:"id"`                     // Unique room identifier
	Name         string    `bson:"name" json:"name"`                 // Display name, e.g. "Deluxe Suite"
	Description  string    `bson:"description" json:"description"`   // Free-form description shown on the details page
	Image        string    `bson:"image" json:"image"`               // Cover image URL
	Price        float64   `bson:"price" json:"price"`               // Price per night
	Available    bool      `bson:"available" json:"available"`       // False while an active booking references this room
	Rating       float64   `bson:"rating" json:"rating"`             // Running mean of review scores, 0 when unrated
	TotalReviews int64     `bson:"totalReviews" json:"totalReviews"` // Number of reviews contributing to Rating
	CreatedAt    time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
