package booking

import (
	"fmt"
	"time"

	"hotelhub/models"
	"hotelhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve creates a booking for (userEmail, roomID) and marks the room
// unavailable.
//
// The duplicate check and the insert are two separate store calls with no
// transaction between them, so two near-simultaneous requests for the same
// pair can both pass the check and both insert. That race is a known property
// of this design and is left unmitigated.
//
// If the availability update matches no room, the already-inserted booking is
// NOT rolled back; the caller gets an inconsistent-state error and the stray
// booking stays behind.
func (svc *DefaultBookingService) Reserve(userEmail, roomID string, details map[string]interface{}) (*models.Booking, error) {
	existing, err := svc.Bookings.FindByUserAndRoom(userEmail, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}
	if existing != nil {
		return nil, NewAlreadyBookedError(userEmail, roomID)
	}

	booking := &models.Booking{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		RoomID:    roomID,
		CreatedAt: time.Now(),
		Details:   details,
	}
	if err := svc.Bookings.Insert(booking); err != nil {
		return nil, err
	}

	matched, err := svc.Rooms.SetAvailability(roomID, false)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		utils.GetLogger().Warn("booking inserted but room availability update matched nothing",
			zap.String("bookingID", booking.ID), zap.String("roomID", roomID))
		return nil, NewInconsistentStateError(roomID)
	}

	return booking, nil
}

// Cancel deletes a booking and restores the room's availability.
// It returns the number of booking documents removed.
//
// There is no ownership check here: any authenticated caller holding a
// booking id may cancel it. Preserved as-is; see DESIGN.md.
func (svc *DefaultBookingService) Cancel(bookingID, roomID string) (int64, error) {
	deleted, err := svc.Bookings.DeleteByID(bookingID)
	if err != nil {
		return 0, err
	}

	matched, err := svc.Rooms.SetAvailability(roomID, true)
	if err != nil {
		return 0, err
	}
	if matched == 0 {
		return 0, NewInconsistentStateError(roomID)
	}

	return deleted, nil
}

// Update merges a partial field set onto an existing booking. Any field may
// be overwritten, including userEmail and roomId; callers are trusted.
func (svc *DefaultBookingService) Update(bookingID string, fields map[string]interface{}) (int64, error) {
	return svc.Bookings.UpdateFields(bookingID, fields)
}

// ListForUser returns all bookings made by a user, unordered. The
// session-email-matches-requested-email contract is enforced at the handler
// boundary, not here.
func (svc *DefaultBookingService) ListForUser(userEmail string) ([]models.Booking, error) {
	return svc.Bookings.ListByEmail(userEmail)
}
