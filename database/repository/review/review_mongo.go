package reviewRepo

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

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.DB().Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "roomId", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// recencySort orders reviews newest first. Both listings use it so the
// global feed and the per-room pages agree on ordering.
func recencySort() bson.D {
	return bson.D{{Key: "timestamp", Value: -1}}
}

// pageOffset converts a 1-based page into the document offset of its first
// record: page 2 with limit 5 addresses offsets 5..9.
func pageOffset(page, limit int64) int64 {
	return (page - 1) * limit
}

// Insert stores a new review document.
func (r *MongoReviewRepo) Insert(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListAll retrieves every review, newest first.
func (r *MongoReviewRepo) ListAll() ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(recencySort())
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeReviews(ctx, cursor)
}

// ListByRoom retrieves one page of a room's reviews, newest first.
func (r *MongoReviewRepo) ListByRoom(roomID string, page, limit int64) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(recencySort()).
		SetSkip(pageOffset(page, limit)).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"roomId": roomID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews for room %s: %w", roomID, err)
	}
	defer cursor.Close(ctx)

	return decodeReviews(ctx, cursor)
}

// CountByRoom returns the number of reviews for a room.
func (r *MongoReviewRepo) CountByRoom(roomID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"roomId": roomID})
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews for room %s: %w", roomID, err)
	}
	return count, nil
}

func decodeReviews(ctx context.Context, cursor *mongo.Cursor) ([]models.Review, error) {
	var reviews []models.Review
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}
