package repository

import (
	"context"
	"math"
	"strconv"
	"strings"

	"cinemadb-api/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{col: db.DB().Collection("movies")}
}

// SearchParams son los query params crudos de GET /movies/search.
// Vacío = sin restricción; solo se filtra por lo que el cliente mandó.
type SearchParams struct {
	Title       string
	Genre       string
	ReleaseYear string
	Rating      string
	Cast        string
	Categories  string
}

// BuildSearchFilter arma el filtro conjuntivo para la búsqueda.
// releaseYear/rating no numéricos quedan como NaN, que no matchea ningún
// documento (mismo comportamiento que parseInt/parseFloat inválidos).
func BuildSearchFilter(p SearchParams) bson.M {
	filter := bson.M{}

	if p.Title != "" {
		filter["title"] = bson.M{"$regex": p.Title, "$options": "i"}
	}
	if p.Genre != "" {
		filter["genre.name"] = bson.M{"$regex": p.Genre, "$options": "i"}
	}
	if p.ReleaseYear != "" {
		if year, err := strconv.Atoi(p.ReleaseYear); err == nil {
			filter["releaseYear"] = year
		} else {
			filter["releaseYear"] = math.NaN()
		}
	}
	if p.Rating != "" {
		min, err := strconv.ParseFloat(p.Rating, 64)
		if err != nil {
			min = math.NaN()
		}
		filter["rating"] = bson.M{"$gte": min}
	}
	if p.Cast != "" {
		filter["cast.name"] = bson.M{"$in": strings.Split(p.Cast, ",")}
	}
	if p.Categories != "" {
		filter["categories.name"] = bson.M{"$in": strings.Split(p.Categories, ",")}
	}

	return filter
}

// ListSummaries devuelve todas las películas en vista resumen.
func (r *MovieRepository) ListSummaries(ctx context.Context) ([]bson.M, error) {
	opts := options.Find().SetProjection(bson.M{
		"title":    1,
		"genre":    1,
		"duration": 1,
		"rating":   1,
	})
	return r.find(ctx, bson.M{}, opts)
}

// Search aplica el filtro con la proyección documentada de búsqueda.
func (r *MovieRepository) Search(ctx context.Context, filter bson.M) ([]bson.M, error) {
	opts := options.Find().SetProjection(bson.M{
		"title":           1,
		"genre":           1,
		"duration":        1,
		"releaseYear":     1,
		"rating":          1,
		"director":        1,
		"cast.name":       1,
		"categories.name": 1,
	})
	return r.find(ctx, filter, opts)
}

// GetByID devuelve el documento completo sin el _id. nil si no existe.
func (r *MovieRepository) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var m bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MovieRepository) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// ReplaceFields hace $set de todos los campos del documento compuesto.
// Devuelve cuántos documentos matchearon (0 = no existe el id).
func (r *MovieRepository) ReplaceFields(ctx context.Context, id primitive.ObjectID, doc bson.M) (int64, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": doc})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MovieRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *MovieRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]bson.M, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []bson.M{}
	for cur.Next(ctx) {
		var m bson.M
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
