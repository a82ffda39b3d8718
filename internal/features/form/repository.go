package form

import (
	"context"
	"time"

	"go-portal/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FormRepository interface {
	Create(ctx context.Context, form *Form) error
	FindAll(ctx context.Context) ([]Form, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Form, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	CreateSubmission(ctx context.Context, submission *FormSubmission) error
	FindSubmissions(ctx context.Context, formID primitive.ObjectID) ([]FormSubmission, error)
}

type FormRepositoryImpl struct {
	forms       *mongo.Collection
	submissions *mongo.Collection
}

func NewFormRepository(db *database.MongodbDB) FormRepository {
	return &FormRepositoryImpl{
		forms:       db.DB.Collection("forms"),
		submissions: db.DB.Collection("form_submissions"),
	}
}

func (r *FormRepositoryImpl) Create(ctx context.Context, form *Form) error {
	form.CreatedAt = time.Now()

	if form.Fields == nil {
		form.Fields = []FormField{}
	}

	result, err := r.forms.InsertOne(ctx, form)
	if err != nil {
		return err
	}

	form.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *FormRepositoryImpl) FindAll(ctx context.Context) ([]Form, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.forms.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []Form
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	return forms, nil
}

func (r *FormRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Form, error) {
	var form Form
	err := r.forms.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *FormRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.submissions.DeleteMany(ctx, bson.M{"form_id": id}); err != nil {
		return err
	}
	_, err := r.forms.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *FormRepositoryImpl) CreateSubmission(ctx context.Context, submission *FormSubmission) error {
	submission.SubmittedAt = time.Now()

	result, err := r.submissions.InsertOne(ctx, submission)
	if err != nil {
		return err
	}

	submission.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *FormRepositoryImpl) FindSubmissions(ctx context.Context, formID primitive.ObjectID) ([]FormSubmission, error) {
	cursor, err := r.submissions.Find(ctx, bson.M{"form_id": formID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []FormSubmission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}
