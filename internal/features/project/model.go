package project

import (
	"time"

	common_models "go-portal/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID          primitive.ObjectID          `bson:"_id,omitempty" json:"id"`
	Title       string                      `bson:"title" json:"title"`
	Description string                      `bson:"description" json:"description"`
	Status      common_models.ContentStatus `bson:"status" json:"status"`
	Members     []primitive.ObjectID        `bson:"members,omitempty" json:"members,omitempty"`
	GuideID     primitive.ObjectID          `bson:"guide_id,omitempty" json:"guide_id,omitempty"`
	CreatedBy   primitive.ObjectID          `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time                   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time                   `bson:"updated_at" json:"updated_at"`
}
