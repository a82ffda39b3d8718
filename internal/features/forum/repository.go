package forum

import (
	"context"
	"time"

	"go-portal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ForumRepository interface {
	CreateThread(ctx context.Context, thread *Thread) error
	FindThreads(ctx context.Context) ([]Thread, error)
	FindThreadByID(ctx context.Context, id primitive.ObjectID) (*Thread, error)
	DeleteThread(ctx context.Context, id primitive.ObjectID) error

	CreateReply(ctx context.Context, reply *Reply) error
	FindReplies(ctx context.Context, threadID primitive.ObjectID) ([]Reply, error)
}

type ForumRepositoryImpl struct {
	threads *mongo.Collection
	replies *mongo.Collection
}

func NewForumRepository(db *database.MongodbDB) ForumRepository {
	return &ForumRepositoryImpl{
		threads: db.DB.Collection("forum_threads"),
		replies: db.DB.Collection("forum_replies"),
	}
}

func (r *ForumRepositoryImpl) CreateThread(ctx context.Context, thread *Thread) error {
	thread.CreatedAt = time.Now()

	result, err := r.threads.InsertOne(ctx, thread)
	if err != nil {
		return err
	}

	thread.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ForumRepositoryImpl) FindThreads(ctx context.Context) ([]Thread, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.threads.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var threads []Thread
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, err
	}

	return threads, nil
}

func (r *ForumRepositoryImpl) FindThreadByID(ctx context.Context, id primitive.ObjectID) (*Thread, error) {
	var thread Thread
	err := r.threads.FindOne(ctx, bson.M{"_id": id}).Decode(&thread)
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *ForumRepositoryImpl) DeleteThread(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.replies.DeleteMany(ctx, bson.M{"thread_id": id}); err != nil {
		return err
	}
	_, err := r.threads.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ForumRepositoryImpl) CreateReply(ctx context.Context, reply *Reply) error {
	reply.CreatedAt = time.Now()

	result, err := r.replies.InsertOne(ctx, reply)
	if err != nil {
		return err
	}

	reply.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ForumRepositoryImpl) FindReplies(ctx context.Context, threadID primitive.ObjectID) ([]Reply, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.replies.Find(ctx, bson.M{"thread_id": threadID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var replies []Reply
	if err := cursor.All(ctx, &replies); err != nil {
		return nil, err
	}

	return replies, nil
}
