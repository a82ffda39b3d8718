package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category tags a notification with the content kind that produced it.
type Category string

const (
	CategoryAnnouncement Category = "announcement"
	CategoryAssignment   Category = "assignment"
	CategoryEvent        Category = "event"
	CategoryProject      Category = "project"
	CategoryResource     Category = "resource"
	CategoryForm         Category = "form"
	CategoryForum        Category = "forum"
	CategoryGeneral      Category = "general"
)

func ValidCategory(c string) bool {
	switch Category(c) {
	case CategoryAnnouncement, CategoryAssignment, CategoryEvent, CategoryProject,
		CategoryResource, CategoryForm, CategoryForum, CategoryGeneral:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Notification is immutable once created except for the one-directional
// unread -> read transition.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Category  Category           `bson:"category" json:"category"`
	Priority  Priority           `bson:"priority" json:"priority"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	IsRead    bool               `bson:"is_read" json:"is_read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	ReadAt    *time.Time         `bson:"read_at,omitempty" json:"read_at,omitempty"`
}
