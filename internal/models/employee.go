package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is the persistence shape of a registered employee.
// Money fields are stored as Decimal128 to keep exact decimal semantics.
type Employee struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Name       string               `bson:"name"`
	TaxID      string               `bson:"taxID"`
	IDCard     string               `bson:"idCard,omitempty"`
	Parentage  string               `bson:"parentage,omitempty"`
	PostalCode string               `bson:"postalCode,omitempty"`
	Street     string               `bson:"street,omitempty"`
	Number     string               `bson:"number,omitempty"`
	District   string               `bson:"district,omitempty"`
	City       string               `bson:"city,omitempty"`
	State      string               `bson:"state,omitempty"`
	Phone      string               `bson:"phone,omitempty"`
	Email      string               `bson:"email"`
	Position   string               `bson:"position,omitempty"`
	Salary     primitive.Decimal128 `bson:"salary"`
	HiredAt    time.Time            `bson:"hiredAt"`
	CreatedAt  time.Time            `bson:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt"`
}
