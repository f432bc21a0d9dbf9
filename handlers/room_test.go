package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelhub/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type roomServiceMock struct {
	mock.Mock
}

func (m *roomServiceMock) List(page, limit int64, sort string) ([]models.Room, error) {
	args := m.Called(page, limit, sort)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *roomServiceMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *roomServiceMock) GetByID(roomID string) (*models.Room, error) {
	args := m.Called(roomID)
	if room, ok := args.Get(0).(*models.Room); ok {
		return room, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListRoomsAppliesDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(roomServiceMock)
	h := NewRoomHandler(svc)

	svc.On("List", int64(1), int64(8), "").Return([]models.Room{}, nil).Once()

	r := gin.New()
	r.GET("/rooms", h.ListRoomsHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	svc.AssertExpectations(t)
}

func TestListRoomsForwardsPagingAndSort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(roomServiceMock)
	h := NewRoomHandler(svc)

	svc.On("List", int64(2), int64(5), "desc").Return([]models.Room{}, nil).Once()

	r := gin.New()
	r.GET("/rooms", h.ListRoomsHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms?skip=2&limit=5&sort=desc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestRoomsCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(roomServiceMock)
	h := NewRoomHandler(svc)

	svc.On("Count").Return(int64(17), nil).Once()

	r := gin.New()
	r.GET("/rooms_count", h.RoomsCountHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms_count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":17`)
}

func TestRoomDetailsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(roomServiceMock)
	h := NewRoomHandler(svc)

	svc.On("GetByID", "ghost").Return(nil, nil).Once()

	r := gin.New()
	r.GET("/room_details/:id", h.RoomDetailsHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/room_details/ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
