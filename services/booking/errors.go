package booking

import "fmt"

// Error codes surfaced by the booking service.
const (
	CodeAlreadyBooked     = "alreadyBooked"
	CodeInconsistentState = "inconsistentState"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAlreadyBookedError(userEmail, roomID string) error {
	return &BookingError{
		Code:    CodeAlreadyBooked,
		Message: fmt.Sprintf("user %s has already booked room %s", userEmail, roomID),
	}
}

// NewInconsistentStateError reports that a room availability update matched
// no documents. The booking write that preceded it is left in place.
func NewInconsistentStateError(roomID string) error {
	return &BookingError{
		Code:    CodeInconsistentState,
		Message: fmt.Sprintf("availability update matched no room with id %s", roomID),
	}
}
