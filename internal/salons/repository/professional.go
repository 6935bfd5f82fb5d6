package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	salonerrors "salonbook/internal/salons/errors"
	"salonbook/pkg/config"
	"salonbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ProfessionalCollectionName = "Professionals"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, professional *model.Professional) error
	FindByID(ctx context.Context, id string) (*model.Professional, error)
	FindBySalon(ctx context.Context, salonID string) ([]*model.Professional, error)
	SetAvailability(ctx context.Context, id string, available bool) (*model.Professional, error)
	StreamAll(ctx context.Context, fn func(*model.Professional) error) error
}

type mongoProfessionalRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoProfessionalRepository(cfg *config.Config) ProfessionalRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoProfessionalRepository{
		cfg:        cfg,
		collection: db.Collection(ProfessionalCollectionName),
	}
}

func (r *mongoProfessionalRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoProfessionalRepository) Create(ctx context.Context, professional *model.Professional) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	professional.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, professional)
	if err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		professional.ID = oid.Hex()
	}
	return nil
}

func (r *mongoProfessionalRepository) FindByID(ctx context.Context, id string) (*model.Professional, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", salonerrors.ErrInvalidID, id)
	}

	var professional model.Professional
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&professional)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, salonerrors.ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("failed to find professional: %w", err)
	}
	return &professional, nil
}

func (r *mongoProfessionalRepository) FindBySalon(ctx context.Context, salonID string) ([]*model.Professional, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"salon_id": salonID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var professionals []*model.Professional
	if err = cursor.All(ctx, &professionals); err != nil {
		return nil, fmt.Errorf("failed to decode professionals: %w", err)
	}
	return professionals, nil
}

func (r *mongoProfessionalRepository) SetAvailability(ctx context.Context, id string, available bool) (*model.Professional, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", salonerrors.ErrInvalidID, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var professional model.Professional
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"available": available}},
		opts,
	).Decode(&professional)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, salonerrors.ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("failed to update professional availability: %w", err)
	}
	return &professional, nil
}

// StreamAll walks the whole collection through a cursor, handing documents
// to fn one at a time. The horizon generator depends on this staying a
// stream; the full set is never held in memory.
func (r *mongoProfessionalRepository) StreamAll(ctx context.Context, fn func(*model.Professional) error) error {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to open professional cursor: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var professional model.Professional
		if err := cursor.Decode(&professional); err != nil {
			return fmt.Errorf("failed to decode professional: %w", err)
		}
		if err := fn(&professional); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("professional cursor failed: %w", err)
	}
	return nil
}
