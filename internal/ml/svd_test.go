package ml

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

type entry = struct {
	Bias    float64
	Factors []float64
}

func TestPredictKnownUserAndItem(t *testing.T) {
	m := NewSVDModel(3.0,
		map[int]entry{1: {Bias: 0.2, Factors: []float64{1.0, 0.5}}},
		map[int]entry{10: {Bias: 0.3, Factors: []float64{0.4, 0.2}}},
	)

	// 3.0 + 0.2 + 0.3 + (1.0*0.4 + 0.5*0.2) = 4.0
	got := m.Predict(1, 10)
	if math.Abs(got-4.0) > 1e-9 {
		t.Errorf("se esperaba 4.0, se obtuvo %v", got)
	}
}

func TestPredictColdStartFallsBackToBaseline(t *testing.T) {
	m := NewSVDModel(3.5,
		map[int]entry{1: {Bias: 0.2, Factors: []float64{1.0}}},
		map[int]entry{10: {Bias: 0.3, Factors: []float64{0.4}}},
	)

	// usuario desconocido: μ + b_i
	if got := m.Predict(999, 10); math.Abs(got-3.8) > 1e-9 {
		t.Errorf("usuario desconocido: se esperaba 3.8, se obtuvo %v", got)
	}
	// película desconocida: μ + b_u
	if got := m.Predict(1, 999); math.Abs(got-3.7) > 1e-9 {
		t.Errorf("película desconocida: se esperaba 3.7, se obtuvo %v", got)
	}
	// ambos desconocidos: μ
	if got := m.Predict(999, 999); math.Abs(got-3.5) > 1e-9 {
		t.Errorf("ambos desconocidos: se esperaba 3.5, se obtuvo %v", got)
	}
}

func TestPredictClampsToRatingScale(t *testing.T) {
	m := NewSVDModel(3.0,
		map[int]entry{1: {Bias: 3.0, Factors: []float64{5.0}}},
		map[int]entry{10: {Bias: 3.0, Factors: []float64{5.0}}},
	)
	if got := m.Predict(1, 10); got != MaxRating {
		t.Errorf("la estimación debe recortarse a %v, se obtuvo %v", MaxRating, got)
	}

	m = NewSVDModel(1.0,
		map[int]entry{1: {Bias: -3.0, Factors: nil}},
		map[int]entry{10: {Bias: -3.0, Factors: nil}},
	)
	if got := m.Predict(1, 10); got != MinRating {
		t.Errorf("la estimación debe recortarse a %v, se obtuvo %v", MinRating, got)
	}
}

func TestLoadSVDModel(t *testing.T) {
	raw := `{
		"factors": 2,
		"globalMean": 3.5,
		"users": {"1": {"bias": 0.1, "factors": [0.5, 0.5]}},
		"items": {"10": {"bias": -0.1, "factors": [0.2, 0.4]}}
	}`
	path := filepath.Join(t.TempDir(), "svd_model.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadSVDModel(path)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	// 3.5 + 0.1 - 0.1 + (0.5*0.2 + 0.5*0.4) = 3.8
	if got := m.Predict(1, 10); math.Abs(got-3.8) > 1e-9 {
		t.Errorf("se esperaba 3.8, se obtuvo %v", got)
	}
}

func TestLoadSVDModelFactorMismatch(t *testing.T) {
	raw := `{
		"factors": 2,
		"globalMean": 3.5,
		"users": {"1": {"bias": 0.1, "factors": [0.5]}},
		"items": {}
	}`
	path := filepath.Join(t.TempDir(), "svd_model.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSVDModel(path); err == nil {
		t.Error("un vector con dimensión distinta a la declarada debe ser error")
	}
}
