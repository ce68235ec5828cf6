package repository

import (
	"context"

	"cinemadb-api/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{col: db.DB().Collection("categories")}
}

// FindByNames devuelve las categorías cuyo nombre esté en la lista.
// Nombres que no existen simplemente no aparecen en el resultado.
func (r *CategoryRepository) FindByNames(ctx context.Context, names []string) ([]bson.M, error) {
	cur, err := r.col.Find(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []bson.M{}
	for cur.Next(ctx) {
		var c bson.M
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}
