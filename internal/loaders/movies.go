package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"

	"golang.org/x/text/encoding/charmap"
)

// LoadMovies lee movies.dat (formato MovieLens 1M):
//
//	movieId::Título (Año)::Genero1|Genero2
//
// El archivo original viene en latin-1, así que lo decodificamos con
// charmap antes de partir las líneas.
func LoadMovies(path string) ([]models.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo archivo de películas: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(f))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []models.Movie
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}

		parts := strings.SplitN(raw, "::", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("movies.dat línea %d: se esperaban 3 campos, hay %d", line, len(parts))
		}

		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("movies.dat línea %d: movieId inválido %q", line, parts[0])
		}

		out = append(out, models.Movie{
			MovieID: id,
			Title:   parts[1],
			Genres:  parts[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leyendo %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no se encontraron películas en %s", path)
	}
	return out, nil
}
