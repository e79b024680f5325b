package recommender

import (
	"sort"
	"sync"
	"time"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/store"
)

const (
	WeightCF      = 0.7
	WeightContent = 0.3

	// una película que entra por contenido suma peso como si tuviera rating
	// máximo; la señal de contenido es presencia, no magnitud
	contentProxyRating = 5.0

	defaultWorkers = 8
)

// Identity distingue al usuario que pide recomendaciones: uno conocido de
// la tabla de ratings, o un perfil efímero armado con los ratings que el
// cliente mandó en la request (cold start).
type Identity struct {
	userID    int
	custom    []models.CustomRating
	ephemeral bool
}

func KnownUser(userID int) Identity {
	return Identity{userID: userID}
}

func EphemeralUser(custom []models.CustomRating) Identity {
	return Identity{custom: custom, ephemeral: true}
}

func (id Identity) Ephemeral() bool { return id.ephemeral }

// Engine combina la señal colaborativa y la de contenido con pesos fijos
// 0.7 / 0.3. Todas sus dependencias son de solo lectura, así que un mismo
// Engine puede atender requests en paralelo.
type Engine struct {
	Predictor Predictor
	Sim       SimilarityIndex
	Catalog   *store.Catalog
	Ratings   *store.RatingTable

	// goroutines para puntuar candidatos colaborativos; <=0 usa el default
	Workers int
}

// Recommend produce las n películas mejor puntuadas que el usuario todavía
// no vio. El resultado es determinista: mismo usuario y mismas tablas dan
// exactamente la misma lista en el mismo orden.
func (e *Engine) Recommend(id Identity, n int) ([]ScoredMovie, error) {
	// 1) historial del usuario que actúa
	actingID, history := e.resolveHistory(id)

	rated := make(map[int]bool, len(history))
	for _, r := range history {
		rated[r.MovieID] = true
	}

	// 2) candidatos = catálogo completo menos lo ya visto
	var unrated []int
	for _, m := range e.Catalog.Movies() {
		if !rated[m.MovieID] {
			unrated = append(unrated, m.MovieID)
		}
	}

	// 3) top-n colaborativo
	cf := e.collaborativeTopN(actingID, unrated, n)

	// 4) vecinos por contenido de la película mejor valorada del historial
	contentIDs, err := e.contentCandidates(history, n)
	if err != nil {
		return nil, err
	}

	// 5) fusión de scores
	scores := make(map[int]float64, len(cf)+len(contentIDs))
	for _, c := range cf {
		scores[c.movieID] = c.est * WeightCF
	}
	for _, movieID := range contentIDs {
		if _, ok := scores[movieID]; ok {
			scores[movieID] += WeightContent * contentProxyRating
		} else {
			scores[movieID] = WeightContent * contentProxyRating
		}
	}

	// 6) ranking final: score desc, empates por movieId asc
	ranked := make([]ScoredMovie, 0, len(scores))
	for movieID, score := range scores {
		m, ok := e.Catalog.Get(movieID)
		if !ok {
			continue
		}
		ranked = append(ranked, ScoredMovie{Movie: m, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Movie.MovieID < ranked[j].Movie.MovieID
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// resolveHistory devuelve el id que actúa y su historial. Para el perfil
// efímero sintetiza un id mayor que cualquier usuario real y arma un
// historial transitorio; la tabla base nunca se toca.
func (e *Engine) resolveHistory(id Identity) (int, []models.Rating) {
	if !id.ephemeral {
		return id.userID, e.Ratings.ByUser(id.userID)
	}

	actingID := e.Ratings.MaxUserID() + 1
	now := time.Now().Unix()
	history := make([]models.Rating, 0, len(id.custom))
	for _, c := range id.custom {
		history = append(history, models.Rating{
			UserID:    actingID,
			MovieID:   c.MovieID,
			Rating:    c.Rating,
			Timestamp: now,
		})
	}
	return actingID, history
}

type cfCandidate struct {
	movieID int
	est     float64
}

// collaborativeTopN puntúa cada candidato con el predictor y se queda con
// los n mejores. El fan-out es estilo worker pool; como se junta todo y
// recién después se ordena, la concurrencia no cambia el resultado.
func (e *Engine) collaborativeTopN(actingID int, unrated []int, n int) []cfCandidate {
	workers := e.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	jobs := make(chan int)
	results := make(chan cfCandidate, len(unrated))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for movieID := range jobs {
				results <- cfCandidate{
					movieID: movieID,
					est:     e.Predictor.Predict(actingID, movieID),
				}
			}
		}()
	}

	for _, movieID := range unrated {
		jobs <- movieID
	}
	close(jobs)
	wg.Wait()
	close(results)

	candidates := make([]cfCandidate, 0, len(unrated))
	for c := range results {
		candidates = append(candidates, c)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].est != candidates[j].est {
			return candidates[i].est > candidates[j].est
		}
		return candidates[i].movieID < candidates[j].movieID
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// contentCandidates elige la película semilla del historial (mejor rating;
// empates: la más reciente, después el movieId menor) y devuelve sus n
// vecinos de contenido. Historial vacío => sin señal de contenido.
func (e *Engine) contentCandidates(history []models.Rating, n int) ([]int, error) {
	var (
		seed  models.Rating
		found bool
	)
	for _, r := range history {
		// solo pueden ser semilla las películas que la matriz conoce
		if _, ok := e.Sim.RowFor(r.MovieID); !ok {
			continue
		}
		if !found || betterSeed(r, seed) {
			seed = r
			found = true
		}
	}
	if !found {
		return nil, nil
	}
	return similarIDs(e.Sim, seed.MovieID, n)
}

func betterSeed(a, b models.Rating) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	if a.Timestamp != b.Timestamp {
		return a.Timestamp > b.Timestamp
	}
	return a.MovieID < b.MovieID
}
