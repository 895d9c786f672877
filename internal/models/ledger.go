package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LedgerEntry is the persistence shape of a cash-flow entry.
type LedgerEntry struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Kind        string               `bson:"kind"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Description string               `bson:"description"`
	Timestamp   time.Time            `bson:"timestamp"`
}
