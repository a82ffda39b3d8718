package event

import (
	"context"
	"time"

	"go-portal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	FindAll(ctx context.Context) ([]Event, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type EventRepositoryImpl struct {
	collection *mongo.Collection
}

func NewEventRepository(db *database.MongodbDB) EventRepository {
	return &EventRepositoryImpl{
		collection: db.DB.Collection("events"),
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *Event) error {
	event.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return err
	}

	event.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *EventRepositoryImpl) FindAll(ctx context.Context) ([]Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	var event Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
