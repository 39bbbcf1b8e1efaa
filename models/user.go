package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. Accounts only gate attribution of fittings;
// all styling data remains local to the deployment.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Status    string             `bson:"status" json:"status"` // pending, verified
	OTP       string             `bson:"otp" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
