package announcement

import (
	"time"

	common_models "go-portal/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Announcement struct {
	ID        primitive.ObjectID          `bson:"_id,omitempty" json:"id"`
	Title     string                      `bson:"title" json:"title"`
	Content   string                      `bson:"content" json:"content"`
	Status    common_models.ContentStatus `bson:"status" json:"status"`
	PostedBy  primitive.ObjectID          `bson:"posted_by" json:"posted_by"`
	CreatedAt time.Time                   `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time                   `bson:"updated_at" json:"updated_at"`
}
