package repository

import (
	"context"

	"cinemadb-api/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type GenreRepository struct {
	col *mongo.Collection
}

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{col: db.DB().Collection("genres")}
}

// FindByName busca el género por nombre exacto (case sensitive).
// nil si no existe; el documento completo se embebe en la película.
func (r *GenreRepository) FindByName(ctx context.Context, name string) (bson.M, error) {
	var g bson.M
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}
