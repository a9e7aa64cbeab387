package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names in the document store
const (
	CustomersCollection    = "customers"
	CustomerLogsCollection = "customerLogs"
)

// MongoOptions configures the client connection pool
type MongoOptions struct {
	MaxPoolSize uint64
	MinPoolSize uint64
}

// MongoStore is a pooled client bound to a single database.
// Connections are checked out per operation and returned when the operation ends.
type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
}

// OpenMongo connects to the cluster at uri and verifies it with a ping
func OpenMongo(ctx context.Context, uri, databaseName string, opts MongoOptions) (*MongoStore, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxConnIdleTime(5 * time.Minute).
		SetServerSelectionTimeout(10 * time.Second)
	if opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(opts.MaxPoolSize)
	}
	clientOpts.SetMinPoolSize(opts.MinPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoStore{
		client:   client,
		database: client.Database(databaseName),
	}, nil
}

// Collection returns a handle to the named collection
func (s *MongoStore) Collection(name string) *mongo.Collection {
	return s.database.Collection(name)
}

// Ping checks the primary is reachable
func (s *MongoStore) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return errors.New("mongo not configured")
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// Close drains the connection pool
func (s *MongoStore) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
