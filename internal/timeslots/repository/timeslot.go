package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	timesloterrors "salonbook/internal/timeslots/errors"
	"salonbook/pkg/config"
	"salonbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "TimeSlots"
)

type TimeSlotRepository interface {
	Insert(ctx context.Context, slot *model.TimeSlot) error
	InsertMany(ctx context.Context, slots []*model.TimeSlot) (int, error)
	List(ctx context.Context, filter model.ProfessionalFilter, date string) ([]*model.TimeSlot, error)
	ExistingStartTimes(ctx context.Context, professionalID, date string) (map[string]struct{}, error)
	ReserveRange(ctx context.Context, professionalID, date, startTime, endTime string) (int64, error)
	ReleaseRange(ctx context.Context, professionalID, date, startTime, endTime string) (int64, error)
	SetBooked(ctx context.Context, id string, booked bool) (*model.TimeSlot, error)
	CountByProfessionalAndDate(ctx context.Context, professionalID, date string) (int64, error)
}

type mongoTimeSlotRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoTimeSlotRepository(cfg *config.Config) TimeSlotRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTimeSlotRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// withTimeout bounds every store round-trip. SessionContexts pass through
// untouched because wrapping them breaks transaction semantics.
func (r *mongoTimeSlotRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoTimeSlotRepository) Insert(ctx context.Context, slot *model.TimeSlot) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, slot)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return timesloterrors.ErrDuplicateSlot
		}
		return fmt.Errorf("failed to insert time slot: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		slot.ID = oid.Hex()
	}
	return nil
}

// InsertMany performs an unordered bulk insert so one duplicate key does
// not stop the remaining documents. It returns the number actually
// inserted alongside the raw error; the slot generator inspects the error
// for duplicate keys and swallows only those.
func (r *mongoTimeSlotRepository) InsertMany(ctx context.Context, slots []*model.TimeSlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	docs := make([]any, len(slots))
	for i, s := range slots {
		docs[i] = s
	}

	opts := options.InsertMany().SetOrdered(false)
	result, err := r.collection.InsertMany(ctx, docs, opts)
	inserted := 0
	if result != nil {
		inserted = len(result.InsertedIDs)
	}
	return inserted, err
}

func (r *mongoTimeSlotRepository) List(ctx context.Context, filter model.ProfessionalFilter, date string) ([]*model.TimeSlot, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	query := bson.M{"date": date}
	if !filter.All() {
		query["professional_id"] = filter.ID()
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "professional_id", Value: 1},
		{Key: "start_time", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find time slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []*model.TimeSlot
	if err = cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode time slots: %w", err)
	}
	return slots, nil
}

// ExistingStartTimes returns the set of start times already materialized
// for one professional on one date, projected down to the single field the
// generator compares against.
func (r *mongoTimeSlotRepository) ExistingStartTimes(ctx context.Context, professionalID, date string) (map[string]struct{}, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"date":            date,
	}
	opts := options.Find().SetProjection(bson.M{"start_time": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find existing slots: %w", err)
	}
	defer cursor.Close(ctx)

	existing := make(map[string]struct{})
	for cursor.Next(ctx) {
		var doc struct {
			StartTime string `bson:"start_time"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode slot key: %w", err)
		}
		existing[doc.StartTime] = struct{}{}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("slot key cursor failed: %w", err)
	}
	return existing, nil
}

// ReserveRange flips every free slot inside [startTime, endTime] to booked
// in one batched conditional update and reports how many actually flipped.
// The first committed update wins each individual slot; racers observe a
// short count.
func (r *mongoTimeSlotRepository) ReserveRange(ctx context.Context, professionalID, date, startTime, endTime string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"date":            date,
		"start_time":      bson.M{"$gte": startTime},
		"end_time":        bson.M{"$lte": endTime},
		"is_booked":       false,
	}
	update := bson.M{"$set": bson.M{"is_booked": true}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve slot range: %w", err)
	}
	return result.ModifiedCount, nil
}

// ReleaseRange unconditionally frees every slot inside the window.
func (r *mongoTimeSlotRepository) ReleaseRange(ctx context.Context, professionalID, date, startTime, endTime string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"date":            date,
		"start_time":      bson.M{"$gte": startTime},
		"end_time":        bson.M{"$lte": endTime},
	}
	update := bson.M{"$set": bson.M{"is_booked": false}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to release slot range: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *mongoTimeSlotRepository) SetBooked(ctx context.Context, id string, booked bool) (*model.TimeSlot, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", timesloterrors.ErrInvalidID, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var slot model.TimeSlot
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"is_booked": booked}},
		opts,
	).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, timesloterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update time slot: %w", err)
	}
	return &slot, nil
}

func (r *mongoTimeSlotRepository) CountByProfessionalAndDate(ctx context.Context, professionalID, date string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{
		"professional_id": professionalID,
		"date":            date,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count time slots: %w", err)
	}
	return count, nil
}
