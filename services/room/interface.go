package room

import (
	roomRepo "hotelhub/database/repository/room"
	"hotelhub/models"

	"github.com/go-redis/redis/v8"
)

// RoomService serves paginated room listings, single-room lookups, and a
// fast approximate count.
type RoomService interface {
	List(page, limit int64, sort string) ([]models.Room, error)
	Count() (int64, error)
	GetByID(roomID string) (*models.Room, error)
}

// DefaultRoomService implements RoomService. Cache may be nil, in which case
// every count goes straight to the store.
type DefaultRoomService struct {
	Rooms roomRepo.RoomRepository
	Cache *redis.Client
}
