package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	roomserrors "hotelbooking/internal/rooms/errors"
	"hotelbooking/pkg/config"
	"hotelbooking/pkg/model"
)

const (
	CollectionName = "rooms"
)

type RoomRepository interface {
	FindAll(ctx context.Context) ([]*model.Room, error)
	FindByPriceRange(ctx context.Context, bounds model.PriceRange) ([]*model.Room, error)
	FindByID(ctx context.Context, id string) (*model.Room, error)
	SetAvailability(ctx context.Context, id string, available bool) (*mongo.UpdateResult, error)
}

type mongoRoomRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoRoomRepository(cfg *config.Config) RoomRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRoomRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoRoomRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoRoomRepository) FindAll(ctx context.Context) ([]*model.Room, error) {
	return r.find(ctx, bson.M{})
}

// FindByPriceRange builds a price filter only over the supplied bounds; an
// empty range falls back to the full listing.
func (r *mongoRoomRepository) FindByPriceRange(ctx context.Context, bounds model.PriceRange) ([]*model.Room, error) {
	if bounds.Empty() {
		return r.find(ctx, bson.M{})
	}

	price := bson.M{}
	if bounds.Min != nil {
		price["$gte"] = *bounds.Min
	}
	if bounds.Max != nil {
		price["$lte"] = *bounds.Max
	}

	return r.find(ctx, bson.M{"price": price})
}

func (r *mongoRoomRepository) find(ctx context.Context, filter bson.M) ([]*model.Room, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*model.Room
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	return rooms, nil
}

func (r *mongoRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", roomserrors.ErrInvalidID, id)
	}

	var room model.Room
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, roomserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}

	return &room, nil
}

func (r *mongoRoomRepository) SetAvailability(ctx context.Context, id string, available bool) (*mongo.UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", roomserrors.ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{"availability": available}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update room availability: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, roomserrors.ErrNotFound
	}

	return result, nil
}
