package service

import (
	"math/rand"
	"sort"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/recommender"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/store"
)

// tamaño del pool de populares del que se muestrea para onboarding
const samplePoolSize = 50

// CatalogService responde las consultas simples sobre las tablas cargadas:
// metadata de películas e historial de ratings de usuarios.
type CatalogService struct {
	catalog *store.Catalog
	ratings *store.RatingTable
}

func NewCatalogService(catalog *store.Catalog, ratings *store.RatingTable) *CatalogService {
	return &CatalogService{catalog: catalog, ratings: ratings}
}

func (s *CatalogService) ready() error {
	if s.catalog == nil || s.ratings == nil {
		return ErrNotReady
	}
	return nil
}

// GetMovie devuelve la metadata de una película.
func (s *CatalogService) GetMovie(movieID int) (models.Movie, error) {
	if err := s.ready(); err != nil {
		return models.Movie{}, err
	}
	m, ok := s.catalog.Get(movieID)
	if !ok {
		return models.Movie{}, ErrMovieNotFound
	}
	return m, nil
}

// UserRatings devuelve el historial de un usuario, lo más reciente primero.
func (s *CatalogService) UserRatings(userID, limit int) ([]models.RatedMovie, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	history := s.ratings.ByUser(userID)
	if len(history) == 0 {
		return nil, ErrUserNotFound
	}
	limit = clampN(limit)

	// copia antes de ordenar: la tabla base no se toca
	sorted := append([]models.Rating(nil), history...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]models.RatedMovie, 0, len(sorted))
	for _, r := range sorted {
		m, ok := s.catalog.Get(r.MovieID)
		if !ok {
			continue
		}
		out = append(out, models.RatedMovie{
			MovieID:   m.MovieID,
			Title:     m.Title,
			Genres:    m.Genres,
			Rating:    r.Rating,
			Timestamp: r.Timestamp,
		})
	}
	return out, nil
}

// RandomUserRatings elige un usuario al azar y devuelve su historial.
// Útil para la demo del front; no es determinista a propósito.
func (s *CatalogService) RandomUserRatings(limit int) (int, []models.RatedMovie, error) {
	if err := s.ready(); err != nil {
		return 0, nil, err
	}
	ids := s.ratings.UserIDs()
	if len(ids) == 0 {
		return 0, nil, ErrUserNotFound
	}
	userID := ids[rand.Intn(len(ids))]
	history, err := s.UserRatings(userID, limit)
	return userID, history, err
}

// SampleFromPopular devuelve n películas al azar del top-50 popular.
// Sirve para pedirle ratings iniciales a un usuario nuevo (cold start).
func (s *CatalogService) SampleFromPopular(n int) ([]models.Movie, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	n = clampN(n)

	pool := recommender.TopPopular(s.ratings.All(), s.catalog, samplePoolSize)
	if len(pool) <= n {
		return pool, nil
	}

	out := make([]models.Movie, 0, n)
	for _, i := range rand.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out, nil
}
