package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinemadb-api/internal/models"
	"cinemadb-api/internal/repository"
	"cinemadb-api/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	svc *service.MovieService
	log *zap.Logger
}

func NewMovieHandler(s *service.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{svc: s, log: log}
}

// @Summary Listar películas (vista resumen)
// @Tags movies
// @Produce json
// @Success 200 {object} map[string]any
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("error listando películas", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"movies": movies})
}

// @Summary Buscar películas
// @Tags movies
// @Produce json
// @Param title query string false "substring del título (case insensitive)"
// @Param genre query string false "substring del nombre del género"
// @Param releaseYear query int false "año exacto"
// @Param rating query number false "rating mínimo"
// @Param cast query string false "nombres separados por coma"
// @Param categories query string false "nombres separados por coma"
// @Success 200 {object} map[string]any
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := repository.SearchParams{
		Title:       q.Get("title"),
		Genre:       q.Get("genre"),
		ReleaseYear: q.Get("releaseYear"),
		Rating:      q.Get("rating"),
		Cast:        q.Get("cast"),
		Categories:  q.Get("categories"),
	}

	results, err := h.svc.Search(r.Context(), params)
	if err != nil {
		h.log.Error("error buscando películas", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// @Summary Obtener película por id
// @Tags movies
// @Produce json
// @Param id path string true "ObjectID de la película"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	movie, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		// incluye ids que no parsean a ObjectID
		h.log.Error("error obteniendo película", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if movie == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Movie not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"movie": movie})
}

// @Summary Crear película
// @Tags movies
// @Accept json
// @Produce json
// @Param body body models.MovieRequest true "datos de la película"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /movies [post]
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) || errors.Is(err, service.ErrInvalidGenre) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		h.log.Error("error creando película", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "New movie has been created",
		"movieId": id,
	})
}

// @Summary Actualizar película
// @Tags movies
// @Accept json
// @Produce json
// @Param id path string true "ObjectID de la película"
// @Param body body models.MovieRequest true "mismo shape que el create"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [put]
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields) || errors.Is(err, service.ErrInvalidGenre):
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		case errors.Is(err, service.ErrMovieNotFound):
			writeJSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
		default:
			h.log.Error("error actualizando película", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Movie updated"})
}

// @Summary Borrar película
// @Tags movies
// @Produce json
// @Param id path string true "ObjectID de la película"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
			return
		}
		h.log.Error("error borrando película", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Movie has been deleted successfully"})
}
