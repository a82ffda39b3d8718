package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Subject     string             `bson:"subject,omitempty" json:"subject,omitempty"`
	DueDate     time.Time          `bson:"due_date" json:"due_date"`
	PostedBy    primitive.ObjectID `bson:"posted_by" json:"posted_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Submission is a student's answer to an assignment. Grade and feedback
// stay empty until a faculty member grades it.
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID primitive.ObjectID `bson:"assignment_id" json:"assignment_id"`
	StudentID    primitive.ObjectID `bson:"student_id" json:"student_id"`
	FileURL      string             `bson:"file_url,omitempty" json:"file_url,omitempty"`
	Remarks      string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	Grade        string             `bson:"grade,omitempty" json:"grade,omitempty"`
	Feedback     string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	SubmittedAt  time.Time          `bson:"submitted_at" json:"submitted_at"`
}
