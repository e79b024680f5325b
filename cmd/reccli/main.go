// reccli es la demo de línea de comandos: carga las mismas tablas y
// artefactos que la API e imprime las tres señales (popular, contenido,
// híbrido) como tablas. Útil para revisar resultados sin levantar nada.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/config"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/loaders"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/ml"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/recommender"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/store"
)

func main() {
	userID := flag.Int("user", 1, "usuario para las recomendaciones híbridas")
	movieID := flag.Int("movie", 1, "película semilla para las similares por contenido")
	n := flag.Int("n", 10, "cantidad de resultados por tabla")
	flag.Parse()

	cfg := config.Load()

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

	fmt.Printf("\nTop %d películas más populares:\n", *n)
	printMovies(recommender.TopPopular(table.All(), catalog, *n))

	fmt.Printf("\nSimilares por contenido a la película %d:\n", *movieID)
	similar, err := recommender.SimilarMovies(sim, catalog, *movieID, *n)
	if err != nil {
		log.Fatalf("[content] %v", err)
	}
	printMovies(similar)

	engine := &recommender.Engine{
		Predictor: svd,
		Sim:       sim,
		Catalog:   catalog,
		Ratings:   table,
	}

	fmt.Printf("\nRecomendaciones híbridas para el usuario %d:\n", *userID)
	items, err := engine.Recommend(recommender.KnownUser(*userID), *n)
	if err != nil {
		log.Fatalf("[hybrid] %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "score\tid\ttítulo\tgéneros")
	for _, it := range items {
		fmt.Fprintf(w, "%.3f\t%d\t%s\t%s\n", it.Score, it.Movie.MovieID, it.Movie.Title, it.Movie.Genres)
	}
	w.Flush()
}

func printMovies(movies []models.Movie) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\ttítulo\tgéneros")
	for _, m := range movies {
		fmt.Fprintf(w, "%d\t%s\t%s\n", m.MovieID, m.Title, m.Genres)
	}
	w.Flush()
}
