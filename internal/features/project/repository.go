package project

import (
	"context"
	"time"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	FindAll(ctx context.Context, approvedOnly bool) ([]Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Project, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status common_models.ContentStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProjectRepositoryImpl struct {
	collection *mongo.Collection
}

func NewProjectRepository(db *database.MongodbDB) ProjectRepository {
	return &ProjectRepositoryImpl{
		collection: db.DB.Collection("projects"),
	}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *Project) error {
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()

	if project.Members == nil {
		project.Members = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return err
	}

	project.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ProjectRepositoryImpl) FindAll(ctx context.Context, approvedOnly bool) ([]Project, error) {
	filter := bson.M{}
	if approvedOnly {
		filter["status"] = common_models.StatusApproved
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *ProjectRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Project, error) {
	var project Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) SetStatus(ctx context.Context, id primitive.ObjectID, status common_models.ContentStatus) error {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
