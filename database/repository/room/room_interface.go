package roomRepo

import "hotelhub/models"

// RoomRepository defines persistence operations on rooms.
type RoomRepository interface {
	// GetByID returns the room with the given id, or (nil, nil) when absent.
	GetByID(id string) (*models.Room, error)
	// List returns one page of rooms. Sort is "asc" or "desc" by price;
	// any other value leaves the collection's natural order.
	List(page, limit int64, sort string) ([]models.Room, error)
	// EstimatedCount returns the approximate total number of room documents.
	EstimatedCount() (int64, error)
	// SetAvailability flips the availability flag and reports how many
	// documents matched the id.
	SetAvailability(id string, available bool) (int64, error)
	// UpdateRating persists a recomputed aggregate rating and review count.
	UpdateRating(id string, rating float64, totalReviews int64) (int64, error)
}
