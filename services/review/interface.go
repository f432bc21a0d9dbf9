package review

import (
	reviewRepo "hotelhub/database/repository/review"
	roomRepo "hotelhub/database/repository/room"
	"hotelhub/models"
)

// ReviewService appends reviews and keeps each room's aggregate rating
// consistent via an incremental running mean.
type ReviewService interface {
	Submit(roomID string, rating float64, comment, userEmail string) (*models.Review, error)
	ListAll() ([]models.Review, error)
	ListByRoom(roomID string, page, limit int64) ([]models.Review, error)
	CountByRoom(roomID string) (int64, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Reviews reviewRepo.ReviewRepository
	Rooms   roomRepo.RoomRepository
}
