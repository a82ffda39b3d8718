package event

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Venue       string             `bson:"venue,omitempty" json:"venue,omitempty"`
	StartsAt    time.Time          `bson:"starts_at" json:"starts_at"`
	EndsAt      time.Time          `bson:"ends_at,omitempty" json:"ends_at,omitempty"`
	PostedBy    primitive.ObjectID `bson:"posted_by" json:"posted_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
