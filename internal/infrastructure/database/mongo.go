package database

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// NewMongoDB connects to MongoDB and returns the configured database
func NewMongoDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.Database.MongoURI).
		SetMaxPoolSize(uint64(max(cfg.Database.MaxConns, 1))).
		SetMinPoolSize(uint64(max(cfg.Database.MinConns, 0))).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = cfg.Database.ConnectTimeout

	ping := func() error {
		return client.Ping(ctx, nil)
	}
	if err := backoff.Retry(ping, backoff.WithContext(bo, ctx)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to reach mongodb: %w", err)
	}

	db := client.Database(cfg.Database.MongoDatabase)
	if err := ensureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	if log != nil {
		log.Info("✅ MongoDB connected successfully", zap.String("database", cfg.Database.MongoDatabase))
	}
	return db, nil
}

func ensureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("tasks").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "meetingId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "deadline", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create task indexes: %w", err)
	}
	return nil
}

// CloseMongo disconnects the client behind db
func CloseMongo(ctx context.Context, db *mongo.Database) error {
	if err := db.Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}
	return nil
}
