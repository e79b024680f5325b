package ml

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// simRow es una línea del artefacto NDJSON: la fila completa de la matriz
// de similitud para una película, en el orden en que se construyó la matriz.
type simRow struct {
	MovieID int       `json:"movieId"`
	Sims    []float64 `json:"sims"`
}

// SimilarityMatrix es la matriz coseno película×película junto con su
// propio mapeo movieId -> fila. El mapeo viaja dentro del artefacto, así
// que el orden del catálogo en memoria nunca puede desalinear los lookups.
type SimilarityMatrix struct {
	dense    *mat.Dense
	movieIDs []int
	rowIdx   map[int]int
}

// LoadSimilarityMatrix lee el artefacto NDJSON (una fila por línea) y
// valida que la matriz sea cuadrada antes de servir nada con ella.
func LoadSimilarityMatrix(path string) (*SimilarityMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo matriz de similitud: %w", err)
	}
	defer f.Close()

	var (
		ids  []int
		rows [][]float64
	)
	dec := json.NewDecoder(bufio.NewReaderSize(f, 1<<20))
	for {
		var row simRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decodificando fila %d de la matriz: %w", len(rows)+1, err)
		}
		ids = append(ids, row.MovieID)
		rows = append(rows, row.Sims)
	}

	return NewSimilarityMatrix(ids, rows)
}

// NewSimilarityMatrix arma la matriz desde filas ya decodificadas.
func NewSimilarityMatrix(movieIDs []int, rows [][]float64) (*SimilarityMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("matriz de similitud vacía")
	}
	if len(movieIDs) != n {
		return nil, fmt.Errorf("matriz de similitud: %d ids para %d filas", len(movieIDs), n)
	}

	dense := mat.NewDense(n, n, nil)
	rowIdx := make(map[int]int, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("matriz de similitud: la fila %d tiene %d columnas, se esperaban %d", i, len(row), n)
		}
		if _, dup := rowIdx[movieIDs[i]]; dup {
			return nil, fmt.Errorf("matriz de similitud: movieId %d duplicado", movieIDs[i])
		}
		dense.SetRow(i, row)
		rowIdx[movieIDs[i]] = i
	}

	return &SimilarityMatrix{
		dense:    dense,
		movieIDs: append([]int(nil), movieIDs...),
		rowIdx:   rowIdx,
	}, nil
}

func (s *SimilarityMatrix) Len() int { return len(s.movieIDs) }

// MovieIDs devuelve los ids en orden de fila. No modificar.
func (s *SimilarityMatrix) MovieIDs() []int { return s.movieIDs }

// RowFor devuelve la fila de similitudes de una película, o false si la
// película no está en la matriz.
func (s *SimilarityMatrix) RowFor(movieID int) ([]float64, bool) {
	i, ok := s.rowIdx[movieID]
	if !ok {
		return nil, false
	}
	return s.dense.RawRowView(i), true
}

// MovieIDAt traduce una columna de la matriz a su movieId.
func (s *SimilarityMatrix) MovieIDAt(col int) (int, bool) {
	if col < 0 || col >= len(s.movieIDs) {
		return 0, false
	}
	return s.movieIDs[col], true
}
