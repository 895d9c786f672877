package mongodb

import (
	"context"
	"time"

	"github.com/gestorpme/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorpme/gestor_backend/internal/models"
	"github.com/gestorpme/gestor_backend/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSaleRepository struct {
	store *database.Mongo
}

func newMongoSaleRepository(store *database.Mongo) portsrepo.SaleRepository {
	return &MongoSaleRepository{store: store}
}

var _ portsrepo.SaleRepository = (*MongoSaleRepository)(nil)

func (r *MongoSaleRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(collSales), nil
}

func toDomainSale(m models.Sale) (domain.Sale, error) {
	amount, err := fromDecimal128(m.Amount)
	if err != nil {
		return domain.Sale{}, err
	}
	return domain.Sale{
		SaleID:        m.ID.Hex(),
		Customer:      m.Customer,
		Product:       m.Product,
		Amount:        amount,
		InvoiceNumber: m.InvoiceNumber,
		SoldAt:        m.SoldAt,
		CreatedAt:     m.CreatedAt,
	}, nil
}

func (r *MongoSaleRepository) CreateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := toDecimal128(sale.Amount)
	if err != nil {
		return nil, err
	}
	model := models.Sale{
		Customer:      sale.Customer,
		Product:       sale.Product,
		Amount:        amount,
		InvoiceNumber: sale.InvoiceNumber,
		SoldAt:        sale.SoldAt,
		CreatedAt:     sale.CreatedAt,
	}

	res, err := coll.InsertOne(ctx, model)
	if err != nil {
		return nil, translateError(err, "failed to insert sale")
	}

	model.ID = res.InsertedID.(primitive.ObjectID)
	created, err := toDomainSale(model)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MongoSaleRepository) FindSales(ctx context.Context) ([]domain.Sale, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "soldAt", Value: -1}}))
	if err != nil {
		return nil, translateError(err, "failed to query sales")
	}
	var modelSales []models.Sale
	if err := cursor.All(ctx, &modelSales); err != nil {
		return nil, translateError(err, "failed to decode sales")
	}

	sales := make([]domain.Sale, len(modelSales))
	for i, m := range modelSales {
		if sales[i], err = toDomainSale(m); err != nil {
			return nil, err
		}
	}
	return sales, nil
}

func (r *MongoSaleRepository) CountSalesBetween(ctx context.Context, from, to time.Time) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}

	filter := bson.M{"soldAt": bson.M{"$gte": from, "$lt": to}}
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, translateError(err, "failed to count sales")
	}
	return count, nil
}
