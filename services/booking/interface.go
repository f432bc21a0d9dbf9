package booking

import (
	bookingRepo "hotelhub/database/repository/booking"
	roomRepo "hotelhub/database/repository/room"
	"hotelhub/models"
)

// BookingService manages the booking lifecycle: reserving a room, cancelling
// or amending a reservation, and listing a user's bookings. Reserving and
// cancelling keep the room's availability flag in step with booking existence.
type BookingService interface {
	Reserve(userEmail, roomID string, details map[string]interface{}) (*models.Booking, error)
	Cancel(bookingID, roomID string) (int64, error)
	Update(bookingID string, fields map[string]interface{}) (int64, error)
	ListForUser(userEmail string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
}
