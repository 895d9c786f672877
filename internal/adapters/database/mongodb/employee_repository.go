package mongodb

import (
	"context"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	portsrepo "github.com/gestorpme/gestor_backend/internal/core/ports/repositories"
	"github.com/gestorpme/gestor_backend/internal/models"
	"github.com/gestorpme/gestor_backend/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoEmployeeRepository struct {
	store *database.Mongo
}

func newMongoEmployeeRepository(store *database.Mongo) portsrepo.EmployeeRepository {
	return &MongoEmployeeRepository{store: store}
}

var _ portsrepo.EmployeeRepository = (*MongoEmployeeRepository)(nil)

func (r *MongoEmployeeRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(collEmployees), nil
}

func toModelEmployee(d domain.Employee) (models.Employee, error) {
	salary, err := toDecimal128(d.Salary)
	if err != nil {
		return models.Employee{}, err
	}
	return models.Employee{
		Name:       d.Name,
		TaxID:      d.TaxID,
		IDCard:     d.IDCard,
		Parentage:  d.Parentage,
		PostalCode: d.PostalCode,
		Street:     d.Street,
		Number:     d.Number,
		District:   d.District,
		City:       d.City,
		State:      d.State,
		Phone:      d.Phone,
		Email:      d.Email,
		Position:   d.Position,
		Salary:     salary,
		HiredAt:    d.HiredAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

func toDomainEmployee(m models.Employee) (domain.Employee, error) {
	salary, err := fromDecimal128(m.Salary)
	if err != nil {
		return domain.Employee{}, err
	}
	return domain.Employee{
		EmployeeID: m.ID.Hex(),
		Name:       m.Name,
		TaxID:      m.TaxID,
		IDCard:     m.IDCard,
		Parentage:  m.Parentage,
		PostalCode: m.PostalCode,
		Street:     m.Street,
		Number:     m.Number,
		District:   m.District,
		City:       m.City,
		State:      m.State,
		Phone:      m.Phone,
		Email:      m.Email,
		Position:   m.Position,
		Salary:     salary,
		HiredAt:    m.HiredAt,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}, nil
}

func (r *MongoEmployeeRepository) CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	model, err := toModelEmployee(employee)
	if err != nil {
		return nil, err
	}
	res, err := coll.InsertOne(ctx, model)
	if err != nil {
		return nil, translateError(err, "failed to insert employee")
	}

	model.ID = res.InsertedID.(primitive.ObjectID)
	created, err := toDomainEmployee(model)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *MongoEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, translateError(err, "failed to query employees")
	}
	var modelEmployees []models.Employee
	if err := cursor.All(ctx, &modelEmployees); err != nil {
		return nil, translateError(err, "failed to decode employees")
	}

	employees := make([]domain.Employee, len(modelEmployees))
	for i, m := range modelEmployees {
		if employees[i], err = toDomainEmployee(m); err != nil {
			return nil, err
		}
	}
	return employees, nil
}

func (r *MongoEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	oid, err := parseObjectID(employeeID)
	if err != nil {
		return nil, err
	}

	var model models.Employee
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&model); err != nil {
		return nil, translateError(err, "failed to find employee by id")
	}

	employee, err := toDomainEmployee(model)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *MongoEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, employee domain.Employee) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	oid, err := parseObjectID(employeeID)
	if err != nil {
		return err
	}

	model, err := toModelEmployee(employee)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":       model.Name,
		"taxID":      model.TaxID,
		"idCard":     model.IDCard,
		"parentage":  model.Parentage,
		"postalCode": model.PostalCode,
		"street":     model.Street,
		"number":     model.Number,
		"district":   model.District,
		"city":       model.City,
		"state":      model.State,
		"phone":      model.Phone,
		"email":      model.Email,
		"position":   model.Position,
		"salary":     model.Salary,
		"hiredAt":    model.HiredAt,
		"updatedAt":  model.UpdatedAt,
	}}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return translateError(err, "failed to update employee")
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	oid, err := parseObjectID(employeeID)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return translateError(err, "failed to delete employee")
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoEmployeeRepository) CountEmployees(ctx context.Context) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, translateError(err, "failed to count employees")
	}
	return count, nil
}
