package service

import (
	"context"
	"errors"
	"time"

	"cinemadb-api/internal/models"
	"cinemadb-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Los mensajes coinciden con los cuerpos de error que el API expone.
var (
	ErrMissingFields = errors.New("Missing fields required")
	ErrInvalidGenre  = errors.New("Invalid genre")
	ErrMovieNotFound = errors.New("Movie not found")
)

// MovieStore es lo que el servicio necesita de la colección movies.
type MovieStore interface {
	ListSummaries(ctx context.Context) ([]bson.M, error)
	Search(ctx context.Context, filter bson.M) ([]bson.M, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	ReplaceFields(ctx context.Context, id primitive.ObjectID, doc bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type GenreStore interface {
	FindByName(ctx context.Context, name string) (bson.M, error)
}

type CategoryStore interface {
	FindByNames(ctx context.Context, names []string) ([]bson.M, error)
}

type MovieService struct {
	movies     MovieStore
	genres     GenreStore
	categories CategoryStore
}

func NewMovieService(m MovieStore, g GenreStore, c CategoryStore) *MovieService {
	return &MovieService{movies: m, genres: g, categories: c}
}

func (s *MovieService) List(ctx context.Context) ([]bson.M, error) {
	return s.movies.ListSummaries(ctx)
}

func (s *MovieService) Search(ctx context.Context, p repository.SearchParams) ([]bson.M, error) {
	return s.movies.Search(ctx, repository.BuildSearchFilter(p))
}

// Get devuelve (nil, nil) si la película no existe. Un id que no es un
// ObjectID válido devuelve error (el handler lo mapea a 500, no a 404).
func (s *MovieService) Get(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.movies.GetByID(ctx, oid)
}

func (s *MovieService) Create(ctx context.Context, req *models.MovieRequest) (primitive.ObjectID, error) {
	doc, err := s.composeDocument(ctx, req)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return s.movies.Insert(ctx, doc)
}

func (s *MovieService) Update(ctx context.Context, id string, req *models.MovieRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	doc, err := s.composeDocument(ctx, req)
	if err != nil {
		return err
	}

	matched, err := s.movies.ReplaceFields(ctx, oid, doc)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (s *MovieService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	deleted, err := s.movies.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// composeDocument valida el request y arma el documento denormalizado:
// el género se embebe completo y debe existir; las categorías desconocidas
// se omiten en silencio; las fechas de reviews pasan de string a timestamp.
func (s *MovieService) composeDocument(ctx context.Context, req *models.MovieRequest) (bson.M, error) {
	if req.Title == "" || req.Genre == "" || len(req.Cast) == 0 ||
		len(req.Reviews) == 0 || len(req.Categories) == 0 {
		return nil, ErrMissingFields
	}

	genreDoc, err := s.genres.FindByName(ctx, req.Genre)
	if err != nil {
		return nil, err
	}
	if genreDoc == nil {
		return nil, ErrInvalidGenre
	}

	categoryDocs, err := s.categories.FindByNames(ctx, req.Categories)
	if err != nil {
		return nil, err
	}

	reviews := make([]bson.M, 0, len(req.Reviews))
	for _, review := range req.Reviews {
		out := bson.M{}
		for k, v := range review {
			out[k] = v
		}
		if date, ok := out["date"].(string); ok {
			out["date"] = parseReviewDate(date)
		}
		reviews = append(reviews, out)
	}

	return bson.M{
		"title":       req.Title,
		"genre":       genreDoc,
		"duration":    req.Duration,
		"releaseYear": req.ReleaseYear,
		"rating":      req.Rating,
		"cast":        req.Cast,
		"reviews":     reviews,
		"categories":  categoryDocs,
	}, nil
}

var reviewDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseReviewDate acepta los formatos habituales de fecha; si ninguno
// calza queda el tiempo cero en vez de rechazar el documento.
func parseReviewDate(s string) time.Time {
	for _, layout := range reviewDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
