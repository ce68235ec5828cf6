package repository

import (
	"context"

	"cinemadb-api/internal/db"
	"cinemadb-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{col: db.DB().Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert devuelve el acknowledgment crudo del driver porque la respuesta
// de registro lo expone tal cual.
func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, u)
}

// ListAll proyecta email y role (el _id viene por defecto; el password nunca).
func (r *UserRepository) ListAll(ctx context.Context) ([]bson.M, error) {
	opts := options.Find().SetProjection(bson.M{
		"email": 1,
		"role":  1,
	})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []bson.M{}
	for cur.Next(ctx) {
		var u bson.M
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, cur.Err()
}
