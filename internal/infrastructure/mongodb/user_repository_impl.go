package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopcore/user-orders-api/internal/domain/entity"
	"github.com/shopcore/user-orders-api/internal/domain/repository"
	"github.com/shopcore/user-orders-api/pkg/helpers"
)

type UserRepository struct {
	col        *mongo.Collection
	bcryptCost int
}

func NewUserRepository(db *mongo.Database, bcryptCost int) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection), bcryptCost: bcryptCost}
}

// Insert hashes the password and writes the document. The unique indexes
// on userId and username turn a racing duplicate into ErrDuplicateKey
// rather than an overwrite.
func (r *UserRepository) Insert(ctx context.Context, u *entity.User) error {
	hash, err := helpers.HashPassword(u.Password, r.bcryptCost)
	if err != nil {
		return err
	}
	u.Password = hash

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateKey
		}
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return nil
}

func (r *UserRepository) FindByUserID(ctx context.Context, userID int64) (*entity.User, error) {
	u := &entity.User{}
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	users := make([]entity.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdatePartial applies the non-nil fields with $set and returns the
// updated document. UserID, username and password cannot change by
// construction: UserUpdate has no slot for them.
func (r *UserRepository) UpdatePartial(ctx context.Context, userID int64, fields entity.UserUpdate) (*entity.User, error) {
	set := bson.M{}
	if fields.FullName != nil {
		set["fullName"] = *fields.FullName
	}
	if fields.Age != nil {
		set["age"] = *fields.Age
	}
	if fields.Email != nil {
		set["email"] = *fields.Email
	}
	if fields.IsActive != nil {
		set["isActive"] = *fields.IsActive
	}
	if fields.Hobbies != nil {
		set["hobbies"] = *fields.Hobbies
	}
	if fields.Address != nil {
		set["address"] = *fields.Address
	}
	if fields.Orders != nil {
		set["orders"] = *fields.Orders
	}
	if len(set) == 0 {
		return r.FindByUserID(ctx, userID)
	}

	u := &entity.User{}
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// AppendOrder pushes one order onto the user's orders sequence.
func (r *UserRepository) AppendOrder(ctx context.Context, userID int64, order entity.Order) (*entity.User, error) {
	u := &entity.User{}
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$push": bson.M{"orders": order}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
