package loaders

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("escribiendo archivo de prueba: %v", err)
	}
	return path
}

func TestLoadMovies(t *testing.T) {
	// "Amélie" en latin-1: la é es el byte 0xE9
	data := []byte("1::Toy Story (1995)::Animation|Children's|Comedy\n" +
		"2::Jumanji (1995)::Adventure|Children's|Fantasy\n" +
		"3::Am\xe9lie (2001)::Comedy|Romance\n")
	path := writeFile(t, "movies.dat", data)

	movies, err := LoadMovies(path)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(movies) != 3 {
		t.Fatalf("se esperaban 3 películas, hay %d", len(movies))
	}
	if movies[0].MovieID != 1 || movies[0].Title != "Toy Story (1995)" {
		t.Errorf("primera fila inesperada: %+v", movies[0])
	}
	if movies[0].Genres != "Animation|Children's|Comedy" {
		t.Errorf("géneros inesperados: %q", movies[0].Genres)
	}
	if movies[2].Title != "Amélie (2001)" {
		t.Errorf("el título latin-1 no se decodificó: %q", movies[2].Title)
	}
}

func TestLoadMoviesMalformedLine(t *testing.T) {
	path := writeFile(t, "movies.dat", []byte("1::solo dos campos\n"))
	if _, err := LoadMovies(path); err == nil {
		t.Error("una línea con menos de 3 campos debe ser error")
	}
}

func TestLoadMoviesEmptyFile(t *testing.T) {
	path := writeFile(t, "movies.dat", nil)
	if _, err := LoadMovies(path); err == nil {
		t.Error("un archivo vacío debe ser error")
	}
}

func TestLoadRatings(t *testing.T) {
	data := []byte("1::1193::5::978300760\n1::661::3::978302109\n2::1193::4.5::978298413\n")
	path := writeFile(t, "ratings.dat", data)

	ratings, err := LoadRatings(path)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if len(ratings) != 3 {
		t.Fatalf("se esperaban 3 ratings, hay %d", len(ratings))
	}
	first := ratings[0]
	if first.UserID != 1 || first.MovieID != 1193 || first.Rating != 5 || first.Timestamp != 978300760 {
		t.Errorf("primera fila inesperada: %+v", first)
	}
	if ratings[2].Rating != 4.5 {
		t.Errorf("los ratings fraccionarios deben conservarse, se obtuvo %v", ratings[2].Rating)
	}
}

func TestLoadRatingsMalformedLine(t *testing.T) {
	path := writeFile(t, "ratings.dat", []byte("1::2::cinco::978300760\n"))
	if _, err := LoadRatings(path); err == nil {
		t.Error("un rating no numérico debe ser error")
	}
}
