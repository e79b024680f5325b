package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/recommender"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/service"
)

// errorResponse es el cuerpo de toda respuesta de fallo.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError traduce la taxonomía del servicio a códigos HTTP. Cualquier
// error no clasificado es un 500 con el mensaje original (nunca se traga).
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotReady), errors.Is(err, service.ErrHistoryDisabled):
		status = http.StatusServiceUnavailable
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrMovieNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmptyRatings), errors.Is(err, service.ErrInvalidRating):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// moviesOnly proyecta el resultado del motor a las películas peladas
// (la API expone movie_id/title/genres, el score queda en el historial).
func moviesOnly(items []recommender.ScoredMovie) []models.Movie {
	out := make([]models.Movie, 0, len(items))
	for _, it := range items {
		out = append(out, it.Movie)
	}
	return out
}
