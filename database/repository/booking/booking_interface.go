package bookingRepo

import "hotelhub/models"

// BookingRepository defines persistence operations on bookings.
type BookingRepository interface {
	// FindByUserAndRoom returns the booking for a (userEmail, roomId) pair,
	// or (nil, nil) when none exists.
	FindByUserAndRoom(userEmail, roomID string) (*models.Booking, error)
	// Insert stores a new booking document.
	Insert(booking *models.Booking) error
	// DeleteByID removes a booking and reports how many documents were deleted.
	DeleteByID(id string) (int64, error)
	// UpdateFields merges the given fields onto an existing booking and
	// reports how many documents matched.
	UpdateFields(id string, fields map[string]interface{}) (int64, error)
	// ListByEmail returns all bookings made by a user, unordered.
	ListByEmail(userEmail string) ([]models.Booking, error)
}
