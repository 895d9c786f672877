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

// MongoBillRepository serves one bill collection; payables and receivables
// share the document shape and get one instance each.
type MongoBillRepository struct {
	store    *database.Mongo
	collName string
}

func newMongoBillRepository(store *database.Mongo, collName string) portsrepo.BillRepository {
	return &MongoBillRepository{store: store, collName: collName}
}

var _ portsrepo.BillRepository = (*MongoBillRepository)(nil)

func (r *MongoBillRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(r.collName), nil
}

func toDomainBill(m models.Bill) (domain.Bill, error) {
	amount, err := fromDecimal128(m.Amount)
	if err != nil {
		return domain.Bill{}, err
	}
	return domain.Bill{
		BillID:      m.ID.Hex(),
		Description: m.Description,
		Amount:      amount,
		DueDate:     m.DueDate,
		Status:      domain.BillStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}, nil
}

func (r *MongoBillRepository) CreateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := toDecimal128(bill.Amount)
	if err != nil {
		return nil, err
	}
	model := models.Bill{
		Description: bill.Description,
		Amount:      amount,
		DueDate:     bill.DueDate,
		Status:      string(bill.Status),
		CreatedAt:   bill.CreatedAt,
	}

	res, err := coll.InsertOne(ctx, model)
	if err != nil {
		return nil, translateError(err, "failed to insert bill")
	}

	model.ID = res.InsertedID.(primitive.ObjectID)
	created, err := toDomainBill(model)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MongoBillRepository) FindBills(ctx context.Context) ([]domain.Bill, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}}))
	if err != nil {
		return nil, translateError(err, "failed to query bills")
	}
	var modelBills []models.Bill
	if err := cursor.All(ctx, &modelBills); err != nil {
		return nil, translateError(err, "failed to decode bills")
	}

	bills := make([]domain.Bill, len(modelBills))
	for i, m := range modelBills {
		if bills[i], err = toDomainBill(m); err != nil {
			return nil, err
		}
	}
	return bills, nil
}
