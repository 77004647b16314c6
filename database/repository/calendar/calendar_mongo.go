package calendarRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"aria/database"
	"aria/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCalendarRepo implements CalendarRepository using MongoDB.
type MongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo creates a new instance of CalendarRepository using MongoDB.
func NewMongoCalendarRepo() CalendarRepository {
	coll := database.MongoClient.Database("aria").Collection("calendar_events")
	repo := &MongoCalendarRepo{coll: coll}

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
func (r *MongoCalendarRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "startTime", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores a new calendar event.
func (r *MongoCalendarRepo) Insert(event models.CalendarEvent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to insert calendar event %q: %w", event.Title, err)
	}
	return nil
}

// QueryRange retrieves events starting within [startMs, endMs] ascending by start time.
func (r *MongoCalendarRepo) QueryRange(userID string, startMs, endMs int64) ([]models.CalendarEvent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"userId":    userID,
		"startTime": bson.M{"$gte": startMs, "$lte": endMs},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.CalendarEvent
	for cursor.Next(ctx) {
		var ev models.CalendarEvent
		if err := cursor.Decode(&ev); err != nil {
			return nil, fmt.Errorf("failed to decode calendar event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// DeleteByTitle removes events whose title contains the fragment (case-insensitive).
func (r *MongoCalendarRepo) DeleteByTitle(userID, fragment string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"title": bson.M{
			"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(fragment), Options: "i"},
		},
	}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete calendar events by title %q: %w", fragment, err)
	}
	return res.DeletedCount, nil
}

// DeleteInRange removes events starting within [startMs, endMs].
func (r *MongoCalendarRepo) DeleteInRange(userID string, startMs, endMs int64) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"userId":    userID,
		"startTime": bson.M{"$gte": startMs, "$lte": endMs},
	}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete calendar events in range: %w", err)
	}
	return res.DeletedCount, nil
}
