package handler

import (
	"net/http"
	"strconv"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.CatalogService
}

func NewMovieHandler(s *service.CatalogService) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary Metadata de una película
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.Movie
// @Failure 404 {object} handler.errorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	m, err := h.svc.GetMovie(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Muestra aleatoria del top-50 popular (para elicitar ratings cold-start)
// @Tags movies
// @Produce json
// @Param n query int false "cantidad (default 10, máx 50)"
// @Success 200 {object} map[string]any
// @Router /movies/sample [get]
func (h *MovieHandler) Sample(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	movies, err := h.svc.SampleFromPopular(n)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"movies": movies,
		"count":  len(movies),
	})
}
