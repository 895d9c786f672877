package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bill is the persistence shape of a payable or receivable. The two kinds
// live in separate collections with the same document shape.
type Bill struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Description string               `bson:"description"`
	Amount      primitive.Decimal128 `bson:"amount"`
	DueDate     time.Time            `bson:"dueDate"`
	Status      string               `bson:"status"`
	CreatedAt   time.Time            `bson:"createdAt"`
}
