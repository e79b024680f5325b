// Package ml carga los artefactos entrenados offline (modelo de factores
// y matriz de similitud de contenido). El entrenamiento en sí queda fuera
// de este repo: aquí solo se leen los archivos que produce.
package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

const (
	// escala de ratings del dataset; las estimaciones se recortan a este rango
	// igual que lo hace el modelo en entrenamiento
	MinRating = 1.0
	MaxRating = 5.0
)

type factorEntry struct {
	Bias    float64   `json:"bias"`
	Factors []float64 `json:"factors"`
}

type svdArtifact struct {
	Factors    int                    `json:"factors"`
	GlobalMean float64                `json:"globalMean"`
	Users      map[string]factorEntry `json:"users"`
	Items      map[string]factorEntry `json:"items"`
}

// SVDModel es el modelo colaborativo ya ajustado: media global, sesgos y
// vectores latentes por usuario e ítem. Predecir es solo un producto punto,
// el trabajo pesado ya lo hizo el entrenamiento.
type SVDModel struct {
	globalMean float64
	factors    int
	users      map[int]factorEntry
	items      map[int]factorEntry
}

// LoadSVDModel lee el artefacto JSON del modelo de factores.
func LoadSVDModel(path string) (*SVDModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo modelo SVD: %w", err)
	}

	var art svdArtifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("decodificando modelo SVD: %w", err)
	}

	m := &SVDModel{
		globalMean: art.GlobalMean,
		factors:    art.Factors,
		users:      make(map[int]factorEntry, len(art.Users)),
		items:      make(map[int]factorEntry, len(art.Items)),
	}

	for k, e := range art.Users {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("modelo SVD: userId inválido %q", k)
		}
		if len(e.Factors) != art.Factors {
			return nil, fmt.Errorf("modelo SVD: usuario %d tiene %d factores, se esperaban %d", id, len(e.Factors), art.Factors)
		}
		m.users[id] = e
	}
	for k, e := range art.Items {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("modelo SVD: movieId inválido %q", k)
		}
		if len(e.Factors) != art.Factors {
			return nil, fmt.Errorf("modelo SVD: película %d tiene %d factores, se esperaban %d", id, len(e.Factors), art.Factors)
		}
		m.items[id] = e
	}

	return m, nil
}

// NewSVDModel construye un modelo en memoria. Pensado para tests y
// herramientas; el servidor siempre carga desde archivo.
func NewSVDModel(globalMean float64, users, items map[int]struct {
	Bias    float64
	Factors []float64
}) *SVDModel {
	m := &SVDModel{
		globalMean: globalMean,
		users:      make(map[int]factorEntry, len(users)),
		items:      make(map[int]factorEntry, len(items)),
	}
	for id, e := range users {
		m.users[id] = factorEntry{Bias: e.Bias, Factors: e.Factors}
	}
	for id, e := range items {
		m.items[id] = factorEntry{Bias: e.Bias, Factors: e.Factors}
	}
	return m
}

// Predict estima el rating de (usuario, película):
//
//	est = μ + b_u + b_i + p_u · q_i
//
// Usuarios o películas que el modelo nunca vio no son error: los términos
// desconocidos simplemente no aportan y queda la línea base (cold start).
func (m *SVDModel) Predict(userID, movieID int) float64 {
	est := m.globalMean

	u, uok := m.users[userID]
	if uok {
		est += u.Bias
	}
	i, iok := m.items[movieID]
	if iok {
		est += i.Bias
	}
	if uok && iok && len(u.Factors) == len(i.Factors) && len(u.Factors) > 0 {
		est += floats.Dot(u.Factors, i.Factors)
	}

	if est < MinRating {
		est = MinRating
	}
	if est > MaxRating {
		est = MaxRating
	}
	return est
}
