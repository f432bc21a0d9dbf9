package room

import (
	"testing"

	"hotelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestPaging(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int64
		wantLimit int64
	}{
		{"absent_values_default", "", "", 1, 8},
		{"non_numeric_values_default", "two", "many", 1, 8},
		{"zero_and_negative_default", "0", "-3", 1, 8},
		{"explicit_values_pass_through", "2", "5", 2, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := Paging(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

// page=2, limit=5 must address records at offset 5..9 of the ordered result:
// the repository receives the normalized page/limit pair and derives the
// offset as (page-1)*limit.
func TestListPassesNormalizedPaging(t *testing.T) {
	rooms := new(roomRepoMock)
	svc := &DefaultRoomService{Rooms: rooms}

	rooms.On("List", int64(2), int64(5), "asc").Return([]models.Room{}, nil).Once()

	page, limit := Paging("2", "5")
	_, err := svc.List(page, limit, "asc")
	require.NoError(t, err)
	rooms.AssertExpectations(t)
}

func TestCountWithoutCacheHitsStore(t *testing.T) {
	rooms := new(roomRepoMock)
	svc := &DefaultRoomService{Rooms: rooms}

	rooms.On("EstimatedCount").Return(int64(42), nil).Once()

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestGetByIDAbsentRoom(t *testing.T) {
	rooms := new(roomRepoMock)
	svc := &DefaultRoomService{Rooms: rooms}

	rooms.On("GetByID", "ghost").Return(nil, nil).Once()

	rm, err := svc.GetByID("ghost")
	require.NoError(t, err)
	assert.Nil(t, rm)
}
