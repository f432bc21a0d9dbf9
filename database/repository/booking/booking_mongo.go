package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.DB().Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// The (userEmail, roomId) index is deliberately NOT unique: the
// one-booking-per-user-per-room rule is enforced by a pre-insert check in
// the booking service, and two near-simultaneous requests can still both
// pass it. See the race note in DESIGN.md.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "roomId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FindByUserAndRoom retrieves a booking for the given (userEmail, roomId) pair.
func (r *MongoBookingRepo) FindByUserAndRoom(userEmail, roomID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"userEmail": userEmail, "roomId": roomID}
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking for %s/%s: %w", userEmail, roomID, err)
	}
	return &booking, nil
}

// Insert stores a new booking document.
func (r *MongoBookingRepo) Insert(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// DeleteByID removes a booking document by its ID.
func (r *MongoBookingRepo) DeleteByID(id string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return result.DeletedCount, nil
}

// UpdateFields merges a partial field set onto an existing booking.
// No field whitelist is applied; callers are trusted.
func (r *MongoBookingRepo) UpdateFields(id string, fields map[string]interface{}) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return result.MatchedCount, nil
}

// ListByEmail retrieves all bookings made by a user.
func (r *MongoBookingRepo) ListByEmail(userEmail string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userEmail": userEmail})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for %s: %w", userEmail, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
