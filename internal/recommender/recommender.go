// Package recommender implementa el ranking de popularidad, la búsqueda
// por contenido y el motor híbrido. Los modelos entrenados entran como
// interfaces para poder probar la lógica con fakes.
package recommender

import (
	"errors"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
)

// Predictor es el modelo colaborativo ya entrenado.
type Predictor interface {
	Predict(userID, movieID int) float64
}

// SimilarityIndex es la matriz de similitud de contenido con su mapeo
// movieId -> fila incluido.
type SimilarityIndex interface {
	RowFor(movieID int) ([]float64, bool)
	MovieIDAt(col int) (int, bool)
}

// ErrUnknownMovie: la película no está en la matriz de similitud.
// Política única para todo el repo: id desconocido es error duro, nunca
// un resultado vacío silencioso.
var ErrUnknownMovie = errors.New("película desconocida para la matriz de similitud")

// ScoredMovie es una película con su score híbrido acumulado.
type ScoredMovie struct {
	Movie models.Movie
	Score float64
}
