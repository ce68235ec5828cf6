package main

import (
	"log"
	"net/http"

	"cinemadb-api/internal/config"
	"cinemadb-api/internal/db"
	"cinemadb-api/internal/handler"
	"cinemadb-api/internal/repository"
	"cinemadb-api/internal/service"
	"cinemadb-api/internal/token"
	"cinemadb-api/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// @title Cinemadb API
// @version 1.0
// @description Catálogo de películas con registro y login JWT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	zlog, err := logger.Init(cfg.LogPath, cfg.Debug)
	if err != nil {
		log.Fatalf("no se pudo inicializar el logger: %v", err)
	}
	defer zlog.Sync()

	db.InitMongo(cfg, zlog)

	tokenSvc := token.NewService(cfg.TokenSecret)

	// repos
	movieRepo := repository.NewMovieRepository()
	genreRepo := repository.NewGenreRepository()
	categoryRepo := repository.NewCategoryRepository()
	userRepo := repository.NewUserRepository()

	// services
	movieSvc := service.NewMovieService(movieRepo, genreRepo, categoryRepo)
	authSvc := service.NewAuthService(userRepo, tokenSvc)

	// handlers
	movieH := handler.NewMovieHandler(movieSvc, zlog)
	authH := handler.NewAuthHandler(authSvc, zlog)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestLogger(zlog))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// =============
	// Rutas públicas
	// =============
	r.Get("/", handler.Home)

	r.Get("/movies", movieH.List)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/{id}", movieH.Get)
	r.Post("/movies", movieH.Create)
	r.Put("/movies/{id}", movieH.Update)
	r.Delete("/movies/{id}", movieH.Delete)

	r.Post("/users", authH.Register)
	r.Post("/login", authH.Login)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.RequireToken(tokenSvc, zlog)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Get("/user", authH.Me)

		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())
			r.Get("/users", authH.ListUsers)
		})
	})

	zlog.Info("HTTP escuchando", zap.String("port", cfg.HTTPPort))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, r); err != nil {
		zlog.Fatal("server", zap.Error(err))
	}
}
