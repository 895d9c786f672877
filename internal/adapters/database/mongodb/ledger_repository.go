package mongodb

import (
	"context"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorpme/gestor_backend/internal/models"
	"github.com/gestorpme/gestor_backend/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoLedgerRepository struct {
	store *database.Mongo
}

func newMongoLedgerRepository(store *database.Mongo) portsrepo.LedgerRepository {
	return &MongoLedgerRepository{store: store}
}

var _ portsrepo.LedgerRepository = (*MongoLedgerRepository)(nil)

func (r *MongoLedgerRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(collLedgerEntries), nil
}

func toDomainLedgerEntry(m models.LedgerEntry) (domain.LedgerEntry, error) {
	amount, err := fromDecimal128(m.Amount)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	return domain.LedgerEntry{
		EntryID:     m.ID.Hex(),
		Kind:        domain.EntryKind(m.Kind),
		Amount:      amount,
		Description: m.Description,
		Timestamp:   m.Timestamp,
	}, nil
}

func (r *MongoLedgerRepository) CreateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := toDecimal128(entry.Amount)
	if err != nil {
		return nil, err
	}
	model := models.LedgerEntry{
		Kind:        string(entry.Kind),
		Amount:      amount,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}

	res, err := coll.InsertOne(ctx, model)
	if err != nil {
		return nil, translateError(err, "failed to insert ledger entry")
	}

	model.ID = res.InsertedID.(primitive.ObjectID)
	created, err := toDomainLedgerEntry(model)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MongoLedgerRepository) FindEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, translateError(err, "failed to query ledger entries")
	}
	var modelEntries []models.LedgerEntry
	if err := cursor.All(ctx, &modelEntries); err != nil {
		return nil, translateError(err, "failed to decode ledger entries")
	}

	entries := make([]domain.LedgerEntry, len(modelEntries))
	for i, m := range modelEntries {
		if entries[i], err = toDomainLedgerEntry(m); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
