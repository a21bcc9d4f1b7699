package mongo

import (
	"careerbridge/internal/api/config"
	"careerbridge/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo connects, pings, and creates the indexes the pipeline relies on.
func InitMongo(cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetMonitor(logger.NewMongoMonitor()),
	)
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database)

	if err = ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	log.Info("MongoDB initialized successfully", "db", cfg.Database)
	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"jobs": {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "employer_id", Value: 1}}},
		},
		"alerts": {
			{Keys: bson.D{{Key: "frequency", Value: 1}, {Key: "active", Value: 1}}},
			{Keys: bson.D{{Key: "seeker_id", Value: 1}}},
		},
		// One analytics record per job, enforced at the storage layer.
		"job_analytics": {
			{Keys: bson.D{{Key: "job_id", Value: 1}}, Options: unique},
		},
		"applications": {
			{Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "seeker_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "seeker_id", Value: 1}}},
		},
		"interviews": {
			{Keys: bson.D{{Key: "application_id", Value: 1}}},
			{Keys: bson.D{{Key: "seeker_id", Value: 1}, {Key: "scheduled_at", Value: 1}}},
		},
		"conversations": {
			{Keys: bson.D{{Key: "seeker_id", Value: 1}, {Key: "employer_id", Value: 1}}, Options: unique},
		},
		"messages": {
			{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for col, models := range indexes {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
