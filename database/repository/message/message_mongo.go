package messageRepo

import (
	"context"
	"fmt"
	"time"

	"tutorlink/database"
	"tutorlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoMessageRepo creates a new instance of MessageRepository using MongoDB.
func NewMongoMessageRepo() MessageRepository {
	db := database.DB()
	repo := &MongoMessageRepo{
		coll:     db.Collection("messages"),
		counters: db.Collection("message_counters"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoMessageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}, {Key: "created_at", Value: 1}, {Key: "seq", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// nextSeq atomically increments and returns the per-booking sequence counter.
func (r *MongoMessageRepo) nextSeq(ctx context.Context, bookingID string) (int64, error) {
	filter := bson.M{"booking_id": bookingID}
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := r.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("failed to allocate message sequence for booking %s: %w", bookingID, err)
	}
	return counter.Seq, nil
}

// Create inserts a new message document with the next per-booking sequence.
func (r *MongoMessageRepo) Create(message *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	seq, err := r.nextSeq(ctx, message.BookingID)
	if err != nil {
		return err
	}
	message.Seq = seq
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// ListByBooking returns a booking's messages ordered by creation time
// ascending with sequence as tie-break.
func (r *MongoMessageRepo) ListByBooking(bookingID string) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "seq", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	for cursor.Next(ctx) {
		var m models.Message
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// LatestByBooking returns the newest message of a booking, or (nil, nil)
// when the thread is empty.
func (r *MongoMessageRepo) LatestByBooking(bookingID string) (*models.Message, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "seq", Value: -1}})
	var m models.Message
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}, opts).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch latest message for booking %s: %w", bookingID, err)
	}
	return &m, nil
}
