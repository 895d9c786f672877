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

type MongoInventoryRepository struct {
	store *database.Mongo
}

func newMongoInventoryRepository(store *database.Mongo) portsrepo.InventoryRepository {
	return &MongoInventoryRepository{store: store}
}

var _ portsrepo.InventoryRepository = (*MongoInventoryRepository)(nil)

func (r *MongoInventoryRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(collInventoryLots), nil
}

func toDomainInventoryLot(m models.InventoryLot) (domain.InventoryLot, error) {
	unitPrice, err := fromDecimal128(m.UnitPrice)
	if err != nil {
		return domain.InventoryLot{}, err
	}
	total, err := fromDecimal128(m.Total)
	if err != nil {
		return domain.InventoryLot{}, err
	}
	return domain.InventoryLot{
		LotID:      m.ID.Hex(),
		Product:    m.Product,
		Quantity:   m.Quantity,
		UnitPrice:  unitPrice,
		Total:      total,
		InvoiceRef: m.InvoiceRef,
		ReceivedAt: m.ReceivedAt,
		CreatedAt:  m.CreatedAt,
	}, nil
}

func (r *MongoInventoryRepository) CreateLot(ctx context.Context, lot domain.InventoryLot) (*domain.InventoryLot, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	unitPrice, err := toDecimal128(lot.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := toDecimal128(lot.Total)
	if err != nil {
		return nil, err
	}
	model := models.InventoryLot{
		Product:    lot.Product,
		Quantity:   lot.Quantity,
		UnitPrice:  unitPrice,
		Total:      total,
		InvoiceRef: lot.InvoiceRef,
		ReceivedAt: lot.ReceivedAt,
		CreatedAt:  lot.CreatedAt,
	}

	res, err := coll.InsertOne(ctx, model)
	if err != nil {
		return nil, translateError(err, "failed to insert inventory lot")
	}

	model.ID = res.InsertedID.(primitive.ObjectID)
	created, err := toDomainInventoryLot(model)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MongoInventoryRepository) FindLots(ctx context.Context) ([]domain.InventoryLot, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "receivedAt", Value: -1}}))
	if err != nil {
		return nil, translateError(err, "failed to query inventory lots")
	}
	var modelLots []models.InventoryLot
	if err := cursor.All(ctx, &modelLots); err != nil {
		return nil, translateError(err, "failed to decode inventory lots")
	}

	lots := make([]domain.InventoryLot, len(modelLots))
	for i, m := range modelLots {
		if lots[i], err = toDomainInventoryLot(m); err != nil {
			return nil, err
		}
	}
	return lots, nil
}

func (r *MongoInventoryRepository) CountLots(ctx context.Context) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, translateError(err, "failed to count inventory lots")
	}
	return count, nil
}
