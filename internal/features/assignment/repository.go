package assignment

import (
	"context"
	"time"

	"go-portal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *Assignment) error
	FindAll(ctx context.Context) ([]Assignment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Assignment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AssignmentRepositoryImpl struct {
	collection *mongo.Collection
}

func NewAssignmentRepository(db *database.MongodbDB) AssignmentRepository {
	return &AssignmentRepositoryImpl{
		collection: db.DB.Collection("assignments"),
	}
}

func (r *AssignmentRepositoryImpl) Create(ctx context.Context, assignment *Assignment) error {
	assignment.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return err
	}

	assignment.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *AssignmentRepositoryImpl) FindAll(ctx context.Context) ([]Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *AssignmentRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Assignment, error) {
	var assignment Assignment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *Submission) error
	FindByAssignment(ctx context.Context, assignmentID primitive.ObjectID) ([]Submission, error)
	FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]Submission, error)
	SetGrade(ctx context.Context, id primitive.ObjectID, grade, feedback string) error
}

type SubmissionRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSubmissionRepository(db *database.MongodbDB) SubmissionRepository {
	return &SubmissionRepositoryImpl{
		collection: db.DB.Collection("submissions"),
	}
}

func (r *SubmissionRepositoryImpl) Create(ctx context.Context, submission *Submission) error {
	submission.SubmittedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, submission)
	if err != nil {
		return err
	}

	submission.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *SubmissionRepositoryImpl) FindByAssignment(ctx context.Context, assignmentID primitive.ObjectID) ([]Submission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"assignment_id": assignmentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

func (r *SubmissionRepositoryImpl) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]Submission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

func (r *SubmissionRepositoryImpl) SetGrade(ctx context.Context, id primitive.ObjectID, grade, feedback string) error {
	update := bson.M{
		"$set": bson.M{
			"grade":    grade,
			"feedback": feedback,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
