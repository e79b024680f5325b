package handler

import (
	"net/http"
	"strconv"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/service"

	"github.com/go-chi/chi/v5"
)

type RatingHandler struct {
	svc *service.CatalogService
}

func NewRatingHandler(s *service.CatalogService) *RatingHandler { return &RatingHandler{svc: s} }

// @Summary Historial de ratings de un usuario (más reciente primero)
// @Tags ratings
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "límite (default 10, máx 50)"
// @Success 200 {object} map[string]any
// @Failure 404 {object} handler.errorResponse
// @Router /users/{id}/ratings [get]
func (h *RatingHandler) GetUserRatings(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.svc.UserRatings(userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": userID,
		"ratings": list,
		"count":   len(list),
	})
}

// @Summary Historial de un usuario elegido al azar
// @Tags ratings
// @Produce json
// @Param limit query int false "límite (default 10, máx 50)"
// @Success 200 {object} map[string]any
// @Router /users/random/ratings [get]
func (h *RatingHandler) GetRandomUserRatings(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	userID, list, err := h.svc.RandomUserRatings(limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": userID,
		"ratings": list,
		"count":   len(list),
	})
}
