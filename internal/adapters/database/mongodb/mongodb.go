// Package mongodb implements the record store contracts on top of a MongoDB
// database. Every repository shares the lazily-connected database handle and
// translates driver errors into the application error taxonomy.
package mongodb

import (
	"context"
	"fmt"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one record store per entity kind.
const (
	collUsers         = "users"
	collEmployees     = "employees"
	collLedgerEntries = "ledger_entries"
	collPayables      = "payables"
	collReceivables   = "receivables"
	collSales         = "sales"
	collInventoryLots = "inventory_lots"
)

// EnsureIndexes creates the unique indexes that back duplicate-registration
// checks. Registered as the store handle's connect hook so a lazy reconnect
// re-ensures them.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	if _, err := db.Collection(collUsers).Indexes().CreateOne(ctx, unique("email")); err != nil {
		return fmt.Errorf("failed to ensure users indexes: %w", err)
	}
	if _, err := db.Collection(collEmployees).Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("taxID"),
		unique("email"),
	}); err != nil {
		return fmt.Errorf("failed to ensure employees indexes: %w", err)
	}
	return nil
}

// translateError maps driver errors onto the application taxonomy.
func translateError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case err == mongo.ErrNoDocuments:
		return apperrors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return apperrors.ErrDuplicate
	case mongo.IsTimeout(err):
		return fmt.Errorf("%w: %s timed out: %v", apperrors.ErrUnavailable, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// parseObjectID validates a caller-supplied document id.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", apperrors.ErrValidation, id)
	}
	return oid, nil
}

// toDecimal128 converts a decimal amount to its stored representation.
func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("failed to encode decimal %s: %w", d, err)
	}
	return v, nil
}

// fromDecimal128 converts a stored amount back to a decimal.
func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode stored decimal %s: %w", v, err)
	}
	return d, nil
}
