package reviewRepo

import "hotelhub/models"

// ReviewRepository defines persistence operations on reviews.
// Reviews are append-only: there is no update or delete.
type ReviewRepository interface {
	// Insert stores a new review document.
	Insert(review *models.Review) error
	// ListAll returns every review, newest first.
	ListAll() ([]models.Review, error)
	// ListByRoom returns one page of a room's reviews, newest first.
	ListByRoom(roomID string, page, limit int64) ([]models.Review, error)
	// CountByRoom returns the number of reviews for a room.
	CountByRoom(roomID string) (int64, error)
}
