package resource

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Subject     string             `bson:"subject,omitempty" json:"subject,omitempty"`
	FileURL     string             `bson:"file_url" json:"file_url"`
	UploadedBy  primitive.ObjectID `bson:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
