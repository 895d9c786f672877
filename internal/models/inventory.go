package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryLot is the persistence shape of a stock intake.
type InventoryLot struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Product    string               `bson:"product"`
	Quantity   int64                `bson:"quantity"`
	UnitPrice  primitive.Decimal128 `bson:"unitPrice"`
	Total      primitive.Decimal128 `bson:"total"`
	InvoiceRef string               `bson:"invoiceRef,omitempty"`
	ReceivedAt time.Time            `bson:"receivedAt"`
	CreatedAt  time.Time            `bson:"createdAt"`
}
