package recommender

import (
	"sort"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/store"
)

// TopPopular cuenta ratings por película y devuelve las n más valoradas
// (más ratings, no mejor promedio). Empates: gana la que apareció primero
// en el archivo de ratings, el orden es estable entre llamadas.
func TopPopular(ratings []models.Rating, catalog *store.Catalog, n int) []models.Movie {
	counts := make(map[int]int)
	var order []int // primera aparición, para desempate estable
	for _, r := range ratings {
		if _, ok := counts[r.MovieID]; !ok {
			order = append(order, r.MovieID)
		}
		counts[r.MovieID]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := make([]models.Movie, 0, n)
	for _, id := range order {
		if len(out) == n {
			break
		}
		m, ok := catalog.Get(id)
		if !ok {
			// rating de una película que no está en el catálogo: se ignora
			continue
		}
		out = append(out, m)
	}
	return out
}
