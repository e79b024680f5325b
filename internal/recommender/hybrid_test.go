package recommender

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/store"
)

// stubPredictor devuelve estimaciones fijas por película y registra los
// userIds con los que lo llamaron.
type stubPredictor struct {
	mu      sync.Mutex
	est     map[int]float64
	userIDs map[int]bool
}

func newStubPredictor(est map[int]float64) *stubPredictor {
	return &stubPredictor{est: est, userIDs: make(map[int]bool)}
}

func (p *stubPredictor) Predict(userID, movieID int) float64 {
	p.mu.Lock()
	p.userIDs[userID] = true
	p.mu.Unlock()
	return p.est[movieID]
}

// testEngine arma un motor con el catálogo {10, 1, 2, 3}, el usuario 7
// que valoró la película 10, y una matriz donde las vecinas de 10 son
// la 2 (0.9) y la 3 (0.8).
func testEngine(t *testing.T, est map[int]float64) (*Engine, *store.RatingTable, *stubPredictor) {
	t.Helper()

	catalog := testCatalog(10, 1, 2, 3)
	table := store.NewRatingTable([]models.Rating{
		rating(7, 10, 5.0, 100),
	})
	sim := testSim(t, []int{10, 1, 2, 3}, [][]float64{
		{1.0, 0.0, 0.9, 0.8},
		{0.0, 1.0, 0.1, 0.1},
		{0.9, 0.1, 1.0, 0.2},
		{0.8, 0.1, 0.2, 1.0},
	})

	pred := newStubPredictor(est)
	return &Engine{
		Predictor: pred,
		Sim:       sim,
		Catalog:   catalog,
		Ratings:   table,
	}, table, pred
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestHybridFusionScores(t *testing.T) {
	// CF top-2 = {1: 4.0, 2: 3.0}; contenido = {2, 3}
	// scores esperados: 1 = 4.0*0.7 = 2.8; 2 = 3.0*0.7 + 0.3*5 = 3.6
	engine, _, _ := testEngine(t, map[int]float64{1: 4.0, 2: 3.0, 3: 1.0})

	got, err := engine.Recommend(KnownUser(7), 2)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("se esperaban 2 resultados, hay %d", len(got))
	}
	if got[0].Movie.MovieID != 2 || got[1].Movie.MovieID != 1 {
		t.Fatalf("orden esperado [2 1], se obtuvo [%d %d]", got[0].Movie.MovieID, got[1].Movie.MovieID)
	}
	if !approx(got[0].Score, 3.6) {
		t.Errorf("score de la película 2: se esperaba 3.6, es %v", got[0].Score)
	}
	if !approx(got[1].Score, 2.8) {
		t.Errorf("score de la película 1: se esperaba 2.8, es %v", got[1].Score)
	}
}

func TestHybridExcludesRatedMovies(t *testing.T) {
	engine, _, _ := testEngine(t, map[int]float64{10: 5.0, 1: 4.0, 2: 3.0, 3: 1.0})

	got, err := engine.Recommend(KnownUser(7), 10)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	for _, it := range got {
		if it.Movie.MovieID == 10 {
			t.Error("la película 10 ya fue valorada por el usuario, no puede recomendarse")
		}
	}
}

func TestHybridEmptyHistoryIsPureCollaborative(t *testing.T) {
	engine, _, _ := testEngine(t, map[int]float64{10: 2.0, 1: 4.0, 2: 3.0, 3: 1.0})

	// el usuario 99 no tiene ratings: sin semilla de contenido
	got, err := engine.Recommend(KnownUser(99), 3)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	want := []int{1, 2, 10} // est desc: 4.0, 3.0, 2.0
	if len(got) != 3 {
		t.Fatalf("se esperaban 3 resultados, hay %d", len(got))
	}
	for i, it := range got {
		if it.Movie.MovieID != want[i] {
			t.Fatalf("orden esperado %v, posición %d es %d", want, i, it.Movie.MovieID)
		}
		if !approx(it.Score, WeightCF*engine.Predictor.Predict(99, it.Movie.MovieID)) {
			t.Errorf("sin historial el score debe ser solo colaborativo, película %d tiene %v", it.Movie.MovieID, it.Score)
		}
	}
}

func TestHybridResultSizeIsMinOfNAndPool(t *testing.T) {
	engine, _, _ := testEngine(t, map[int]float64{1: 4.0, 2: 3.0, 3: 1.0})

	got, err := engine.Recommend(KnownUser(7), 50)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// candidatos posibles: 1, 2 y 3 (la 10 ya está valorada)
	if len(got) != 3 {
		t.Errorf("se esperaban 3 resultados, hay %d", len(got))
	}
}

func TestHybridIsIdempotent(t *testing.T) {
	engine, _, _ := testEngine(t, map[int]float64{1: 4.0, 2: 4.0, 3: 1.0})

	first, err := engine.Recommend(KnownUser(7), 3)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	second, err := engine.Recommend(KnownUser(7), 3)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("dos llamadas con las mismas tablas deben dar lo mismo:\n%v\n%v", first, second)
	}
}

func TestHybridEphemeralProfile(t *testing.T) {
	engine, table, pred := testEngine(t, map[int]float64{1: 4.0, 2: 3.0, 3: 1.0})
	baseLen := table.Len()

	got, err := engine.Recommend(EphemeralUser([]models.CustomRating{
		{MovieID: 10, Rating: 5.0},
	}), 2)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	// mismo historial efectivo que el usuario 7, mismo resultado
	if len(got) != 2 || got[0].Movie.MovieID != 2 || got[1].Movie.MovieID != 1 {
		t.Errorf("resultado inesperado para el perfil efímero: %v", got)
	}

	// la tabla base no se muta
	if table.Len() != baseLen {
		t.Errorf("la tabla base cambió de %d a %d observaciones", baseLen, table.Len())
	}

	// el id sintético es estrictamente mayor que cualquier usuario real
	for uid := range pred.userIDs {
		if uid <= table.MaxUserID() {
			t.Errorf("el predictor fue consultado con el id %d, que no es sintético", uid)
		}
	}
}

func TestHybridSeedPrefersBestThenMostRecent(t *testing.T) {
	catalog := testCatalog(10, 11, 1, 2, 3)
	// dos ratings con 5.0: gana el más reciente (película 11)
	table := store.NewRatingTable([]models.Rating{
		rating(7, 10, 5.0, 100),
		rating(7, 11, 5.0, 200),
	})
	sim := testSim(t, []int{10, 11, 1, 2, 3}, [][]float64{
		{1.0, 0.0, 0.9, 0.1, 0.1},
		{0.0, 1.0, 0.1, 0.9, 0.8},
		{0.9, 0.1, 1.0, 0.0, 0.0},
		{0.1, 0.9, 0.0, 1.0, 0.0},
		{0.1, 0.8, 0.0, 0.0, 1.0},
	})
	engine := &Engine{
		Predictor: newStubPredictor(map[int]float64{1: 1.0, 2: 1.0, 3: 1.0}),
		Sim:       sim,
		Catalog:   catalog,
		Ratings:   table,
	}

	got, err := engine.Recommend(KnownUser(7), 2)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// la semilla debe ser la 11, cuyas vecinas son la 2 y la 3
	if len(got) != 2 || got[0].Movie.MovieID != 2 || got[1].Movie.MovieID != 3 {
		t.Errorf("se esperaban las vecinas de la película 11 ([2 3]), se obtuvo %v", got)
	}
}
