package roomRepo

import (
	"context"
	"fmt"
	"time"

	"hotelhub/database"
	"hotelhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo() RoomRepository {
	coll := database.DB().Collection("rooms")
	repo := &MongoRoomRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a room by its unique ID.
func (r *MongoRoomRepo) GetByID(id string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

// pageOffset converts a 1-based page into the document offset of its first
// record: page 2 with limit 5 addresses offsets 5..9.
func pageOffset(page, limit int64) int64 {
	return (page - 1) * limit
}

// priceSort maps the sort query value to a Mongo sort document. Any value
// other than "asc"/"desc" keeps the collection's natural order (nil).
func priceSort(sort string) bson.D {
	switch sort {
	case "asc":
		return bson.D{{Key: "price", Value: 1}}
	case "desc":
		return bson.D{{Key: "price", Value: -1}}
	}
	return nil
}

// List returns one page of rooms, optionally sorted by price.
func (r *MongoRoomRepo) List(page, limit int64, sort string) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSkip(pageOffset(page, limit)).
		SetLimit(limit)
	if s := priceSort(sort); s != nil {
		opts.SetSort(s)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	for cursor.Next(ctx) {
		var room models.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("failed to decode room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// EstimatedCount returns the approximate number of room documents.
// It uses collection metadata rather than a filtered count, matching the
// fast count contract of the /rooms_count endpoint.
func (r *MongoRoomRepo) EstimatedCount() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

// SetAvailability flips the availability flag on a room.
func (r *MongoRoomRepo) SetAvailability(id string, available bool) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"available": available, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update availability for room %s: %w", id, err)
	}
	return result.MatchedCount, nil
}

// UpdateRating persists a recomputed aggregate rating and review count.
func (r *MongoRoomRepo) UpdateRating(id string, rating float64, totalReviews int64) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":       rating,
		"totalReviews": totalReviews,
		"updatedAt":    time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to update rating for room %s: %w", id, err)
	}
	return result.MatchedCount, nil
}
