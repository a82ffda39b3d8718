package user

import (
	"time"

	common_models "go-portal/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password" json:"-"`
	Role           common_models.Role `bson:"role" json:"role"`
	RegistrationNo string             `bson:"registration_no,omitempty" json:"registration_no,omitempty"`
	Department     string             `bson:"department,omitempty" json:"department,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
