package review

import "fmt"

const CodeRoomNotFound = "roomNotFound"

type ReviewError struct {
	Code    string
	Message string
}

func (e *ReviewError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewRoomNotFoundError(roomID string) error {
	return &ReviewError{
		Code:    CodeRoomNotFound,
		Message: fmt.Sprintf("no room with id %s", roomID),
	}
}
