package recommender

import (
	"testing"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/store"
)

func testCatalog(ids ...int) *store.Catalog {
	movies := make([]models.Movie, 0, len(ids))
	for _, id := range ids {
		movies = append(movies, models.Movie{MovieID: id, Title: "Pelicula", Genres: "Drama"})
	}
	return store.NewCatalog(movies)
}

func rating(userID, movieID int, r float64, ts int64) models.Rating {
	return models.Rating{UserID: userID, MovieID: movieID, Rating: r, Timestamp: ts}
}

func TestTopPopularCountsAndOrders(t *testing.T) {
	catalog := testCatalog(1, 2, 3)
	ratings := []models.Rating{
		rating(1, 1, 5, 10),
		rating(1, 2, 4, 11),
		rating(2, 1, 3, 12),
		rating(3, 1, 4, 13),
	}

	got := TopPopular(ratings, catalog, 2)
	if len(got) != 2 {
		t.Fatalf("se esperaban 2 resultados, hay %d", len(got))
	}
	if got[0].MovieID != 1 || got[1].MovieID != 2 {
		t.Errorf("orden esperado [1 2], se obtuvo [%d %d]", got[0].MovieID, got[1].MovieID)
	}
}

func TestTopPopularEmptyInput(t *testing.T) {
	got := TopPopular(nil, testCatalog(1), 10)
	if len(got) != 0 {
		t.Errorf("con ratings vacíos el resultado debe ser vacío, hay %d", len(got))
	}
}

func TestTopPopularNBiggerThanPool(t *testing.T) {
	catalog := testCatalog(1, 2)
	ratings := []models.Rating{rating(1, 1, 5, 1), rating(2, 2, 3, 2)}

	got := TopPopular(ratings, catalog, 10)
	if len(got) != 2 {
		t.Errorf("se esperaban min(n, pool)=2 resultados, hay %d", len(got))
	}
}

func TestTopPopularSkipsMoviesOutsideCatalog(t *testing.T) {
	catalog := testCatalog(1)
	ratings := []models.Rating{
		rating(1, 99, 5, 1), // no está en el catálogo
		rating(1, 99, 5, 2),
		rating(2, 1, 4, 3),
	}

	got := TopPopular(ratings, catalog, 5)
	if len(got) != 1 || got[0].MovieID != 1 {
		t.Errorf("solo la película 1 está en el catálogo, se obtuvo %v", got)
	}
}
