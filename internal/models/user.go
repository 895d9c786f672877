package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the persistence shape of a back-office user.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	CreatedAt    time.Time          `bson:"createdAt"`
}
