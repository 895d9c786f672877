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
)

type MongoUserRepository struct {
	store *database.Mongo
}

func newMongoUserRepository(store *database.Mongo) portsrepo.UserRepository {
	return &MongoUserRepository{store: store}
}

var _ portsrepo.UserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(collUsers), nil
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.ID.Hex(),
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	model := models.User{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
	res, err := coll.InsertOne(ctx, model)
	if err != nil {
		return nil, translateError(err, "failed to insert user")
	}

	model.ID = res.InsertedID.(primitive.ObjectID)
	created := toDomainUser(model)
	return &created, nil
}

func (r *MongoUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var model models.User
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&model); err != nil {
		return nil, translateError(err, "failed to find user by email")
	}

	user := toDomainUser(model)
	return &user, nil
}

func (r *MongoUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	oid, err := parseObjectID(userID)
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"passwordHash": passwordHash}})
	if err != nil {
		return translateError(err, "failed to update password hash")
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
