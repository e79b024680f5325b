package main

import (
	"log"
	"net/http"
	"time"

	_ "github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/docs" // swagger docs

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/cache"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/config"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/db"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/handler"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/loaders"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/ml"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/recommender"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/repository"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/service"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Recomendador Híbrido de Películas API
// @version 1.0
// @description API de recomendaciones híbridas (SVD + contenido, pesos 0.7/0.3)
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// infra opcional: cache e historial
	cache.InitRedis(cfg)
	db.InitMongo(cfg)

	// ============================
	// Carga de tablas y artefactos
	// ============================
	// Todo se carga una sola vez acá, antes de escuchar. Después de este
	// punto las tablas y los modelos son de solo lectura.
	start := time.Now()

	movies, err := loaders.LoadMovies(cfg.MoviesPath)
	if err != nil {
		log.Fatalf("[load] %v", err)
	}
	ratings, err := loaders.LoadRatings(cfg.RatingsPath)
	if err != nil {
		log.Fatalf("[load] %v", err)
	}
	catalog := store.NewCatalog(movies)
	table := store.NewRatingTable(ratings)

	svd, err := ml.LoadSVDModel(cfg.SVDPath)
	if err != nil {
		log.Fatalf("[load] %v", err)
	}
	sim, err := ml.LoadSimilarityMatrix(cfg.SimPath)
	if err != nil {
		log.Fatalf("[load] %v", err)
	}

	// la matriz tiene que hablar de las mismas películas que el catálogo;
	// si no, los vecinos saldrían mal y nadie se daría cuenta
	for _, id := range sim.MovieIDs() {
		if !catalog.Exists(id) {
			log.Fatalf("[load] la matriz de similitud tiene movieId %d que no está en el catálogo", id)
		}
	}

	log.Printf("[load] %d películas, %d ratings, matriz %dx%d, cargado en %s",
		catalog.Len(), table.Len(), sim.Len(), sim.Len(), time.Since(start))

	// ============================
	// Servicios y handlers
	// ============================
	engine := &recommender.Engine{
		Predictor: svd,
		Sim:       sim,
		Catalog:   catalog,
		Ratings:   table,
	}

	recRepo := repository.NewRecommendationRepository()
	recSvc := service.NewRecommendService(catalog, table, engine, sim, recRepo)
	catSvc := service.NewCatalogService(catalog, table)

	recH := handler.NewRecommendHandler(recSvc)
	movieH := handler.NewMovieHandler(catSvc)
	ratingH := handler.NewRatingHandler(catSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	r.Route("/recommend", func(r chi.Router) {
		r.Get("/popular", recH.Popular)
		r.Get("/movie/{id}", recH.Similar)
		r.Get("/user/{id}", recH.ForUser)
		r.Post("/custom", recH.Custom)
	})

	r.Get("/movies/sample", movieH.Sample)
	r.Get("/movies/{id}", movieH.GetMovie)

	// ojo: /users/random antes que /users/{id}
	r.Get("/users/random/ratings", ratingH.GetRandomUserRatings)
	r.Get("/users/{id}/ratings", ratingH.GetUserRatings)
	r.Get("/users/{id}/recommendations/history", recH.HistoryForUser)
	r.Get("/users/{id}/ws/recommendations", recH.ForUserWS)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
