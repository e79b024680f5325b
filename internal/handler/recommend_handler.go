package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Top-N películas populares
// @Tags recommend
// @Produce json
// @Param n query int false "cantidad (default 10, máx 50)"
// @Success 200 {object} map[string]any
// @Router /recommend/popular [get]
func (h *RecommendHandler) Popular(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	movies, err := h.svc.Popular(n)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"popular_movies": movies,
		"count":          len(movies),
	})
}

// @Summary Películas similares por contenido
// @Tags recommend
// @Produce json
// @Param id path int true "movieId"
// @Param n query int false "cantidad (default 10, máx 50)"
// @Success 200 {object} map[string]any
// @Failure 404 {object} handler.errorResponse
// @Router /recommend/movie/{id} [get]
func (h *RecommendHandler) Similar(w http.ResponseWriter, r *http.Request) {
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	movies, err := h.svc.Similar(movieID, n)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"movie_id":       movieID,
		"similar_movies": movies,
		"count":          len(movies),
	})
}

// @Summary Recomendaciones híbridas para un usuario conocido
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param n query int false "cantidad (default 10, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]any
// @Failure 404 {object} handler.errorResponse
// @Router /recommend/user/{id} [get]
func (h *RecommendHandler) ForUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.ForUser(r.Context(), userID, n, refresh)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":         userID,
		"recommendations": moviesOnly(items),
		"count":           len(items),
	})
}

type customProfileRequest struct {
	Ratings []models.CustomRating `json:"ratings"`
}

// @Summary Recomendaciones híbridas para un perfil anónimo (cold start)
// @Tags recommend
// @Accept json
// @Produce json
// @Param n query int false "cantidad (default 10, máx 50)"
// @Param body body customProfileRequest true "ratings del perfil"
// @Success 200 {object} map[string]any
// @Failure 400 {object} handler.errorResponse
// @Router /recommend/custom [post]
func (h *RecommendHandler) Custom(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	var req customProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body inválido: " + err.Error()})
		return
	}

	items, err := h.svc.ForProfile(r.Context(), req.Ratings, n)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"recommendations": moviesOnly(items),
		"count":           len(items),
	})
}

// @Summary Historial de recomendaciones calculadas para un usuario
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "límite (default 10, máx 50)"
// @Success 200 {object} map[string]any
// @Failure 404 {object} handler.errorResponse
// @Router /users/{id}/recommendations/history [get]
func (h *RecommendHandler) HistoryForUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": userID,
		"history": history,
		"count":   len(history),
	})
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones híbridas por WebSocket (frames de progreso + resultado)
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param n query int false "cantidad (default 10, máx 50)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]any
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) ForUserWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no se pudo abrir el WebSocket"})
		return
	}
	defer conn.Close()

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	refresh := r.URL.Query().Get("refresh") == "true"

	_ = conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "calculando recomendaciones híbridas…",
	})

	start := time.Now()
	items, err := h.svc.ForUser(r.Context(), userID, n, refresh)
	if err != nil {
		_ = conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	_ = conn.WriteJSON(map[string]any{
		"type":            "recommendations",
		"user_id":         userID,
		"recommendations": moviesOnly(items),
		"count":           len(items),
		"elapsed_ms":      time.Since(start).Milliseconds(),
	})
}
