package utils

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StartHealthMonitor must fill the snapshot before returning, not a minute
// later on the first tick.
func TestStartHealthMonitorProbesImmediately(t *testing.T) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(100*time.Millisecond))
	require.NoError(t, err)
	defer mongoClient.Disconnect(ctx)

	before := time.Now()
	StartHealthMonitor(redisClient, mongoClient)

	status := GetHealthStatus()
	assert.False(t, status.CheckedAt.IsZero())
	assert.False(t, status.CheckedAt.Before(before))

	// Both endpoints point nowhere; the probe still records a snapshot.
	assert.False(t, status.Mongo)
	assert.False(t, status.Redis)
}
