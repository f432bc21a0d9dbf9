package room

import (
	"context"
	"strconv"
	"time"

	"hotelhub/models"
)

const (
	defaultPage  = 1
	defaultLimit = 8

	countCacheKey = "rooms:count"
	countCacheTTL = 30 * time.Second
)

// Paging normalizes raw page/limit query values. Absent or non-numeric
// values fall back to page 1 and limit 8; zero and negative values are
// normalized the same way.
func Paging(pageStr, limitStr string) (int64, int64) {
	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// List returns one page of rooms, optionally sorted by price ("asc"/"desc").
func (svc *DefaultRoomService) List(page, limit int64, sort string) ([]models.Room, error) {
	return svc.Rooms.List(page, limit, sort)
}

// Count returns the approximate number of rooms. The value is cached in
// Redis for a short TTL; any cache error falls through to the store so the
// endpoint behaves identically without Redis.
func (svc *DefaultRoomService) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if svc.Cache != nil {
		if cached, err := svc.Cache.Get(ctx, countCacheKey).Int64(); err == nil {
			return cached, nil
		}
	}

	count, err := svc.Rooms.EstimatedCount()
	if err != nil {
		return 0, err
	}

	if svc.Cache != nil {
		svc.Cache.Set(ctx, countCacheKey, count, countCacheTTL)
	}
	return count, nil
}

// GetByID returns a single room, or (nil, nil) when absent.
func (svc *DefaultRoomService) GetByID(roomID string) (*models.Room, error) {
	return svc.Rooms.GetByID(roomID)
}
