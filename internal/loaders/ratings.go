package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
)

// LoadRatings lee ratings.dat (formato MovieLens 1M):
//
//	userId::movieId::rating::timestamp
func LoadRatings(path string) ([]models.Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo archivo de ratings: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []models.Rating
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}

		parts := strings.Split(raw, "::")
		if len(parts) != 4 {
			return nil, fmt.Errorf("ratings.dat línea %d: se esperaban 4 campos, hay %d", line, len(parts))
		}

		uid, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("ratings.dat línea %d: userId inválido %q", line, parts[0])
		}
		mid, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("ratings.dat línea %d: movieId inválido %q", line, parts[1])
		}
		rating, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("ratings.dat línea %d: rating inválido %q", line, parts[2])
		}
		ts, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ratings.dat línea %d: timestamp inválido %q", line, parts[3])
		}

		out = append(out, models.Rating{
			UserID:    uid,
			MovieID:   mid,
			Rating:    rating,
			Timestamp: ts,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("leyendo %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no se encontraron ratings en %s", path)
	}
	return out, nil
}
