package service

import (
	"context"
	"errors"

	"cinemadb-api/internal/models"
	"cinemadb-api/internal/token"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailInUse         = errors.New("Email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// bcryptCost es el work factor con el que se hashean los passwords.
const bcryptCost = 12

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) (*mongo.InsertOneResult, error)
	ListAll(ctx context.Context) ([]bson.M, error)
}

type AuthService struct {
	users  UserStore
	tokens *token.Service
}

func NewAuthService(users UserStore, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register crea el usuario con el password hasheado. El role se guarda tal
// cual llega (vacío = sin privilegios). Devuelve el acknowledgment crudo
// del insert porque la respuesta HTTP lo incluye.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (*mongo.InsertOneResult, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.users.Insert(ctx, &models.UserDoc{
		Email:    email,
		Password: string(hash),
		Role:     role,
	})
}

// Login compara el password contra el hash guardado y emite el access token.
// Email desconocido y password incorrecto fallan por el mismo camino, sin
// distinguirse en la respuesta.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(u.ID.Hex(), u.Email, u.Role)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]bson.M, error) {
	return s.users.ListAll(ctx)
}
