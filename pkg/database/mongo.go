package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection = "users"
	ToolsCollection = "aitools"

	connectTimeout = 10 * time.Second
)

// Connect establishes a MongoDB connection and verifies it with a ping.
// The returned database handle is passed to repository constructors; there is
// no package-global client.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client.Database(dbName), nil
}

// Disconnect closes the underlying client of db.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}

// HealthCheck pings the server on the existing connection.
func HealthCheck(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.Client().Ping(ctx, nil)
}

// EnsureIndexes creates the indexes the application relies on:
// a unique index on users.email (duplicate registration is rejected at write
// time) and the catalog read-path indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	_, err = db.Collection(ToolsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "popularityScore", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "popularityScore", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create aitools indexes: %w", err)
	}

	return nil
}
