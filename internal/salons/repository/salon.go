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
	SalonCollectionName = "Salons"
)

type SalonRepository interface {
	Create(ctx context.Context, salon *model.Salon) error
	FindByID(ctx context.Context, id string) (*model.Salon, error)
	FindApproved(ctx context.Context, limit int, offset int64) ([]*model.Salon, error)
	CountApproved(ctx context.Context) (int64, error)
	UpdateApprovalState(ctx context.Context, id string, state model.ApprovalState) (*model.Salon, error)
}

type mongoSalonRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoSalonRepository(cfg *config.Config) SalonRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSalonRepository{
		cfg:        cfg,
		collection: db.Collection(SalonCollectionName),
	}
}

func (r *mongoSalonRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoSalonRepository) Create(ctx context.Context, salon *model.Salon) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	salon.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, salon)
	if err != nil {
		return fmt.Errorf("failed to create salon: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		salon.ID = oid.Hex()
	}
	return nil
}

func (r *mongoSalonRepository) FindByID(ctx context.Context, id string) (*model.Salon, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", salonerrors.ErrInvalidID, id)
	}

	var salon model.Salon
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&salon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, salonerrors.ErrSalonNotFound
		}
		return nil, fmt.Errorf("failed to find salon: %w", err)
	}
	return &salon, nil
}

func (r *mongoSalonRepository) FindApproved(ctx context.Context, limit int, offset int64) ([]*model.Salon, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{"approval_state": model.ApprovalApproved}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find salons: %w", err)
	}
	defer cursor.Close(ctx)

	var salons []*model.Salon
	if err = cursor.All(ctx, &salons); err != nil {
		return nil, fmt.Errorf("failed to decode salons: %w", err)
	}
	return salons, nil
}

func (r *mongoSalonRepository) CountApproved(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"approval_state": model.ApprovalApproved})
	if err != nil {
		return 0, fmt.Errorf("failed to count salons: %w", err)
	}
	return count, nil
}

func (r *mongoSalonRepository) UpdateApprovalState(ctx context.Context, id string, state model.ApprovalState) (*model.Salon, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", salonerrors.ErrInvalidID, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var salon model.Salon
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"approval_state": state}},
		opts,
	).Decode(&salon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, salonerrors.ErrSalonNotFound
		}
		return nil, fmt.Errorf("failed to update salon approval state: %w", err)
	}
	return &salon, nil
}
