package handler

import (
	"context"

	"cinemadb-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// stubs de los stores para armar los services reales sin Mongo

type stubMovies struct {
	summaries  []bson.M
	results    []bson.M
	lastFilter bson.M
	byID       map[string]bson.M
	inserted   bson.M
	insertID   primitive.ObjectID
	matched    int64
	deleted    int64
}

func (s *stubMovies) ListSummaries(ctx context.Context) ([]bson.M, error) {
	return s.summaries, nil
}

func (s *stubMovies) Search(ctx context.Context, filter bson.M) ([]bson.M, error) {
	s.lastFilter = filter
	return s.results, nil
}

func (s *stubMovies) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	m, ok := s.byID[id.Hex()]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (s *stubMovies) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	s.inserted = doc
	return s.insertID, nil
}

func (s *stubMovies) ReplaceFields(ctx context.Context, id primitive.ObjectID, doc bson.M) (int64, error) {
	return s.matched, nil
}

func (s *stubMovies) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	d := s.deleted
	s.deleted = 0
	return d, nil
}

type stubGenres struct {
	docs map[string]bson.M
}

func (s *stubGenres) FindByName(ctx context.Context, name string) (bson.M, error) {
	return s.docs[name], nil
}

type stubCategories struct {
	docs []bson.M
}

func (s *stubCategories) FindByNames(ctx context.Context, names []string) ([]bson.M, error) {
	out := []bson.M{}
	for _, c := range s.docs {
		for _, n := range names {
			if c["name"] == n {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

type stubUsers struct {
	byEmail  map[string]*models.UserDoc
	inserted *models.UserDoc
	all      []bson.M
}

func (s *stubUsers) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	return s.byEmail[email], nil
}

func (s *stubUsers) Insert(ctx context.Context, u *models.UserDoc) (*mongo.InsertOneResult, error) {
	s.inserted = u
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (s *stubUsers) ListAll(ctx context.Context) ([]bson.M, error) {
	return s.all, nil
}
