package review

import (
	"errors"
	"testing"

	"hotelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewRepoMock struct {
	mock.Mock
}

func (m *reviewRepoMock) Insert(review *models.Review) error {
	return m.Called(review).Error(0)
}

func (m *reviewRepoMock) ListAll() ([]models.Review, error) {
	args := m.Called()
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *reviewRepoMock) ListByRoom(roomID string, page, limit int64) ([]models.Review, error) {
	args := m.Called(roomID, page, limit)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *reviewRepoMock) CountByRoom(roomID string) (int64, error) {
	args := m.Called(roomID)
	return args.Get(0).(int64), args.Error(1)
}

type roomRepoMock struct {
	mock.Mock
}

func (m *roomRepoMock) GetByID(id string) (*models.Room, error) {
	args := m.Called(id)
	if room, ok := args.Get(0).(*models.Room); ok {
		return room, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *roomRepoMock) List(page, limit int64, sort string) ([]models.Room, error) {
	args := m.Called(page, limit, sort)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *roomRepoMock) EstimatedCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *roomRepoMock) SetAvailability(id string, available bool) (int64, error) {
	args := m.Called(id, available)
	return args.Get(0).(int64), args.Error(1)
}

func (m *roomRepoMock) UpdateRating(id string, rating float64, totalReviews int64) (int64, error) {
	args := m.Called(id, rating, totalReviews)
	return args.Get(0).(int64), args.Error(1)
}

func TestFoldRating(t *testing.T) {
	tests := []struct {
		name      string
		oldMean   float64
		oldCount  int64
		score     float64
		wantMean  float64
		wantCount int64
	}{
		{"first_review_of_unrated_room", 0, 0, 4.0, 4.0, 1},
		{"second_review_averages", 4.0, 1, 5.0, 4.5, 2},
		{"rounds_to_one_decimal", 4.5, 2, 3.0, 4.0, 3},
		{"rounding_down", 3.0, 2, 4.0, 3.3, 3},
		{"rounding_up", 4.0, 2, 5.0, 4.3, 3},
		{"low_score_drags_mean", 5.0, 4, 1.0, 4.2, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotMean, gotCount := FoldRating(tc.oldMean, tc.oldCount, tc.score)
			assert.Equal(t, tc.wantMean, gotMean)
			assert.Equal(t, tc.wantCount, gotCount)
		})
	}
}

func TestSubmitUpdatesRoomAggregate(t *testing.T) {
	reviews := new(reviewRepoMock)
	rooms := new(roomRepoMock)
	svc := &DefaultReviewService{Reviews: reviews, Rooms: rooms}

	reviews.On("Insert", mock.Anything).Return(nil).Once()
	rooms.On("GetByID", "room-1").Return(&models.Room{
		ID: "room-1", Rating: 4.0, TotalReviews: 1,
	}, nil).Once()
	rooms.On("UpdateRating", "room-1", 4.5, int64(2)).Return(int64(1), nil).Once()

	rev, err := svc.Submit("room-1", 5.0, "lovely stay", "guest@example.com")
	require.NoError(t, err)
	require.NotNil(t, rev)
	assert.NotEmpty(t, rev.ID)
	assert.Equal(t, "room-1", rev.RoomID)
	assert.Equal(t, 5.0, rev.Rating)
	assert.False(t, rev.Timestamp.IsZero())

	reviews.AssertExpectations(t)
	rooms.AssertExpectations(t)
}

// The review is inserted before the room lookup, so a review aimed at a
// nonexistent room is persisted anyway and stays behind as an orphan.
func TestSubmitUnknownRoomLeavesOrphanReview(t *testing.T) {
	reviews := new(reviewRepoMock)
	rooms := new(roomRepoMock)
	svc := &DefaultReviewService{Reviews: reviews, Rooms: rooms}

	reviews.On("Insert", mock.Anything).Return(nil).Once()
	rooms.On("GetByID", "ghost").Return(nil, nil).Once()

	rev, err := svc.Submit("ghost", 4.0, "", "guest@example.com")
	assert.Nil(t, rev)

	var rErr *ReviewError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, CodeRoomNotFound, rErr.Code)

	// Insert happened, UpdateRating did not.
	reviews.AssertExpectations(t)
	rooms.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitInsertFailure(t *testing.T) {
	reviews := new(reviewRepoMock)
	rooms := new(roomRepoMock)
	svc := &DefaultReviewService{Reviews: reviews, Rooms: rooms}

	reviews.On("Insert", mock.Anything).Return(errors.New("write failed")).Once()

	rev, err := svc.Submit("room-1", 4.0, "", "guest@example.com")
	assert.Nil(t, rev)
	assert.Error(t, err)
	rooms.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestListByRoomPassesPaging(t *testing.T) {
	reviews := new(reviewRepoMock)
	svc := &DefaultReviewService{Reviews: reviews}

	reviews.On("ListByRoom", "room-1", int64(2), int64(5)).
		Return([]models.Review{}, nil).Once()

	_, err := svc.ListByRoom("room-1", 2, 5)
	require.NoError(t, err)
	reviews.AssertExpectations(t)
}
