package resource

import (
	"context"
	"time"

	"go-portal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResourceRepository interface {
	Create(ctx context.Context, resource *Resource) error
	FindAll(ctx context.Context) ([]Resource, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Resource, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ResourceRepositoryImpl struct {
	collection *mongo.Collection
}

func NewResourceRepository(db *database.MongodbDB) ResourceRepository {
	return &ResourceRepositoryImpl{
		collection: db.DB.Collection("resources"),
	}
}

func (r *ResourceRepositoryImpl) Create(ctx context.Context, resource *Resource) error {
	resource.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, resource)
	if err != nil {
		return err
	}

	resource.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ResourceRepositoryImpl) FindAll(ctx context.Context) ([]Resource, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var resources []Resource
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, err
	}

	return resources, nil
}

func (r *ResourceRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Resource, error) {
	var resource Resource
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&resource)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *ResourceRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
