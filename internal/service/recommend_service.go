package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/cache"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/ml"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/recommender"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/repository"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/store"
)

const (
	DefaultN = 10
	MaxN     = 50 // por seguridad, no deja pedir 1000 películas

	cacheTTLSeconds = 60 * 60
)

// RecommendService valida las requests y orquesta popularidad, contenido
// y el motor híbrido. Todo es lectura sobre datos inmutables, así que es
// seguro compartirlo entre requests concurrentes.
type RecommendService struct {
	catalog *store.Catalog
	ratings *store.RatingTable
	engine  *recommender.Engine
	sim     recommender.SimilarityIndex
	recRepo *repository.RecommendationRepository
}

func NewRecommendService(
	catalog *store.Catalog,
	ratings *store.RatingTable,
	engine *recommender.Engine,
	sim recommender.SimilarityIndex,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		catalog: catalog,
		ratings: ratings,
		engine:  engine,
		sim:     sim,
		recRepo: recRepo,
	}
}

func (s *RecommendService) ready() error {
	if s.catalog == nil || s.ratings == nil || s.engine == nil || s.sim == nil {
		return ErrNotReady
	}
	return nil
}

// clampN aplica default y tope al parámetro n.
func clampN(n int) int {
	if n <= 0 {
		return DefaultN
	}
	if n > MaxN {
		return MaxN
	}
	return n
}

// Popular devuelve las n películas con más ratings.
func (s *RecommendService) Popular(n int) ([]models.Movie, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	n = clampN(n)
	return recommender.TopPopular(s.ratings.All(), s.catalog, n), nil
}

// Similar devuelve las n películas más parecidas por contenido.
func (s *RecommendService) Similar(movieID, n int) ([]models.Movie, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if !s.catalog.Exists(movieID) {
		return nil, ErrMovieNotFound
	}
	n = clampN(n)

	out, err := recommender.SimilarMovies(s.sim, s.catalog, movieID, n)
	if errors.Is(err, recommender.ErrUnknownMovie) {
		// está en el catálogo pero no en la matriz: para el cliente es lo mismo
		return nil, ErrMovieNotFound
	}
	return out, err
}

func userCacheKey(userID, n int) string {
	return fmt.Sprintf("rec:user:%d:n:%d", userID, n)
}

// ForUser calcula las recomendaciones híbridas de un usuario conocido.
// Cachea en Redis por (usuario, n); refresh=true fuerza el recálculo.
func (s *RecommendService) ForUser(ctx context.Context, userID, n int, refresh bool) ([]recommender.ScoredMovie, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if !s.ratings.UserExists(userID) {
		return nil, ErrUserNotFound
	}
	n = clampN(n)

	var cached []recommender.ScoredMovie
	if !refresh {
		if ok, err := cache.GetJSON(ctx, userCacheKey(userID, n), &cached); err == nil && ok {
			return cached, nil
		}
	}

	items, err := s.engine.Recommend(recommender.KnownUser(userID), n)
	if err != nil {
		return nil, err
	}

	s.saveHistory(ctx, userID, false, n, items)

	if err := cache.SetJSON(ctx, userCacheKey(userID, n), items, cacheTTLSeconds); err != nil {
		log.Printf("[recommend] error cacheando en Redis: %v", err)
	}
	return items, nil
}

// ForProfile calcula recomendaciones para un perfil anónimo (cold start)
// a partir de los pares {movieId, rating} de la request. No se cachea:
// el perfil no existe fuera de esta request.
func (s *RecommendService) ForProfile(ctx context.Context, custom []models.CustomRating, n int) ([]recommender.ScoredMovie, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if len(custom) == 0 {
		return nil, ErrEmptyRatings
	}
	for _, c := range custom {
		if !s.catalog.Exists(c.MovieID) {
			return nil, fmt.Errorf("%w: movieId %d", ErrMovieNotFound, c.MovieID)
		}
		if c.Rating < ml.MinRating || c.Rating > ml.MaxRating {
			return nil, fmt.Errorf("%w: movieId %d", ErrInvalidRating, c.MovieID)
		}
	}
	n = clampN(n)

	items, err := s.engine.Recommend(recommender.EphemeralUser(custom), n)
	if err != nil {
		return nil, err
	}

	s.saveHistory(ctx, s.ratings.MaxUserID()+1, true, n, items)
	return items, nil
}

// History devuelve los últimos cálculos guardados de un usuario.
func (s *RecommendService) History(ctx context.Context, userID, limit int) ([]models.Recommendation, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if s.recRepo == nil {
		return nil, ErrHistoryDisabled
	}
	if !s.ratings.UserExists(userID) {
		return nil, ErrUserNotFound
	}
	return s.recRepo.GetByUser(ctx, userID, clampN(limit))
}

// saveHistory guarda el cálculo en Mongo, best-effort: si falla se loguea
// y la respuesta sale igual.
func (s *RecommendService) saveHistory(ctx context.Context, userID int, ephemeral bool, n int, items []recommender.ScoredMovie) {
	if s.recRepo == nil {
		return
	}

	recItems := make([]models.RecItem, 0, len(items))
	for _, it := range items {
		recItems = append(recItems, models.RecItem{MovieID: it.Movie.MovieID, Score: it.Score})
	}

	hist := &models.Recommendation{
		UserID:        userID,
		Ephemeral:     ephemeral,
		Algo:          "hybrid-svd-content",
		WeightCF:      recommender.WeightCF,
		WeightContent: recommender.WeightContent,
		N:             n,
		Items:         recItems,
		CreatedAt:     time.Now(),
	}
	if err := s.recRepo.Insert(ctx, hist); err != nil {
		log.Printf("[recommend] error guardando historial en Mongo: %v", err)
	}
}
