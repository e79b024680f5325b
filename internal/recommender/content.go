package recommender

import (
	"sort"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/store"
)

// similarIDs devuelve los movieIds de las n películas más parecidas a
// movieID según la matriz, excluyendo a la propia película.
func similarIDs(sim SimilarityIndex, movieID, n int) ([]int, error) {
	row, ok := sim.RowFor(movieID)
	if !ok {
		return nil, ErrUnknownMovie
	}

	type pair struct {
		col   int
		score float64
	}
	pairs := make([]pair, len(row))
	for col, score := range row {
		pairs[col] = pair{col: col, score: score}
	}

	// sort estable: ante scores iguales gana la columna menor
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].score > pairs[j].score
	})

	// el primer resultado es la película misma (similitud máxima consigo misma)
	pairs = pairs[1:]
	if len(pairs) > n {
		pairs = pairs[:n]
	}

	out := make([]int, 0, len(pairs))
	for _, p := range pairs {
		id, ok := sim.MovieIDAt(p.col)
		if !ok {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

// SimilarMovies resuelve la búsqueda por contenido completa: top-n vecinos
// de movieID, en orden de similitud, ya unidos con el catálogo.
func SimilarMovies(sim SimilarityIndex, catalog *store.Catalog, movieID, n int) ([]models.Movie, error) {
	ids, err := similarIDs(sim, movieID, n)
	if err != nil {
		return nil, err
	}

	out := make([]models.Movie, 0, len(ids))
	for _, id := range ids {
		if m, ok := catalog.Get(id); ok {
			out = append(out, m)
		}
	}
	return out, nil
}
