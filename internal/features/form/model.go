package form

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeSelect FieldType = "select"
	FieldTypeDate   FieldType = "date"
)

type FormField struct {
	Name     string    `bson:"name" json:"name"`
	Label    string    `bson:"label" json:"label"`
	Type     FieldType `bson:"type" json:"type"`
	Required bool      `bson:"required" json:"required"`
	Options  []string  `bson:"options,omitempty" json:"options,omitempty"`
}

type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Fields      []FormField        `bson:"fields" json:"fields"`
	// ValidationScript is an optional Tengo script run against each
	// submission. It sees `answers` and must set `valid` (and
	// optionally `reason`).
	ValidationScript string             `bson:"validation_script,omitempty" json:"validation_script,omitempty"`
	Deadline         time.Time          `bson:"deadline,omitempty" json:"deadline,omitempty"`
	CreatedBy        primitive.ObjectID `bson:"created_by" json:"created_by"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}

type FormSubmission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FormID      primitive.ObjectID `bson:"form_id" json:"form_id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	Answers     map[string]any     `bson:"answers" json:"answers"`
	SubmittedAt time.Time          `bson:"submitted_at" json:"submitted_at"`
}
