package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sale is the persistence shape of a sale record.
type Sale struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Customer      string               `bson:"customer"`
	Product       string               `bson:"product"`
	Amount        primitive.Decimal128 `bson:"amount"`
	InvoiceNumber string               `bson:"invoiceNumber"`
	SoldAt        time.Time            `bson:"soldAt"`
	CreatedAt     time.Time            `bson:"createdAt"`
}
