package review

import (
	"math"
	"time"

	"hotelhub/models"
	"hotelhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit inserts a review and folds its score into the room's running mean.
//
// The review is inserted before the room lookup. When the room does not
// exist, the review stays behind as an orphan and the caller gets a
// room-not-found error. Preserved as-is; see DESIGN.md.
func (svc *DefaultReviewService) Submit(roomID string, rating float64, comment, userEmail string) (*models.Review, error) {
	rev := &models.Review{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		UserEmail: userEmail,
		Rating:    rating,
		Comment:   comment,
		Timestamp: time.Now(),
	}
	if err := svc.Reviews.Insert(rev); err != nil {
		return nil, err
	}

	room, err := svc.Rooms.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		utils.GetLogger().Warn("review inserted for nonexistent room",
			zap.String("reviewID", rev.ID), zap.String("roomID", roomID))
		return nil, NewRoomNotFoundError(roomID)
	}

	newRating, newTotal := FoldRating(room.Rating, room.TotalReviews, rating)
	if _, err := svc.Rooms.UpdateRating(roomID, newRating, newTotal); err != nil {
		return nil, err
	}

	return rev, nil
}

// FoldRating folds one incoming score into a room's aggregate. The new mean
// is (oldMean*oldCount + score) / (oldCount+1), rounded to one decimal place.
// A never-reviewed room contributes oldMean of 0 and oldCount of 0.
func FoldRating(oldMean float64, oldCount int64, score float64) (float64, int64) {
	newCount := oldCount + 1
	newMean := (oldMean*float64(oldCount) + score) / float64(newCount)
	return math.Round(newMean*10) / 10, newCount
}

// ListAll returns every review, newest first.
func (svc *DefaultReviewService) ListAll() ([]models.Review, error) {
	return svc.Reviews.ListAll()
}

// ListByRoom returns one page of a room's reviews, newest first.
func (svc *DefaultReviewService) ListByRoom(roomID string, page, limit int64) ([]models.Review, error) {
	return svc.Reviews.ListByRoom(roomID, page, limit)
}

// CountByRoom returns the number of reviews for a room.
func (svc *DefaultReviewService) CountByRoom(roomID string) (int64, error) {
	return svc.Reviews.CountByRoom(roomID)
}
