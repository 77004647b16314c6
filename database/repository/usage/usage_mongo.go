package usageRepo

import (
	"context"
	"fmt"
	"time"

	"aria/database"
	"aria/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// counterFields maps feature tags to their stats document field.
var counterFields = map[string]string{
	models.FeatureMeeting: "meetings_scheduled_count",
	models.FeatureMessage: "messages_sent_count",
	models.FeatureEmail:   "emails_sent_count",
	models.FeatureCab:     "cab_booking_count",
	models.FeatureOther:   "other_feature_usage_count",
}

// MongoUsageRepo implements UsageRepository using MongoDB.
type MongoUsageRepo struct {
	coll *mongo.Collection
}

// NewMongoUsageRepo creates a new instance of UsageRepository using MongoDB.
func NewMongoUsageRepo() UsageRepository {
	coll := database.MongoClient.Database("aria").Collection("usage_stats")
	repo := &MongoUsageRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUsageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Increment bumps the feature counter with an upsert.
func (r *MongoUsageRepo) Increment(userID, feature string) error {
	field, ok := counterFields[feature]
	if !ok {
		field = counterFields[models.FeatureOther]
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$inc": bson.M{field: 1}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"userId": userID}, update, opts); err != nil {
		return fmt.Errorf("failed to increment %s for user %s: %w", field, userID, err)
	}
	return nil
}

// Get retrieves the user's usage stats, zeroed if none exist yet.
func (r *MongoUsageRepo) Get(userID string) (*models.UsageStats, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var stats models.UsageStats
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&stats)
	if err == mongo.ErrNoDocuments {
		return &models.UsageStats{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch usage stats for user %s: %w", userID, err)
	}
	return &stats, nil
}
