package announcement

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

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *Announcement) error
	FindAll(ctx context.Context, approvedOnly bool) ([]Announcement, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Announcement, error)
	Update(ctx context.Context, id primitive.ObjectID, title, content string) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status common_models.ContentStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AnnouncementRepositoryImpl struct {
	collection *mongo.Collection
}

func NewAnnouncementRepository(db *database.MongodbDB) AnnouncementRepository {
	return &AnnouncementRepositoryImpl{
		collection: db.DB.Collection("announcements"),
	}
}

func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, announcement *Announcement) error {
	announcement.CreatedAt = time.Now()
	announcement.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, announcement)
	if err != nil {
		return err
	}

	announcement.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *AnnouncementRepositoryImpl) FindAll(ctx context.Context, approvedOnly bool) ([]Announcement, error) {
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

	var announcements []Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}

	return announcements, nil
}

func (r *AnnouncementRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Announcement, error) {
	var announcement Announcement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&announcement)
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *AnnouncementRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, title, content string) error {
	update := bson.M{
		"$set": bson.M{
			"title":      title,
			"content":    content,
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *AnnouncementRepositoryImpl) SetStatus(ctx context.Context, id primitive.ObjectID, status common_models.ContentStatus) error {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *AnnouncementRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
