// Package store mantiene las tablas en memoria (catálogo y ratings).
// Se construyen una sola vez al arrancar y después son de solo lectura,
// así los handlers pueden leerlas en paralelo sin locks.
package store

import (
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"
)

// Catalog es la tabla de películas. El alineamiento con la matriz de
// similitud NO depende del orden de esta tabla: la matriz carga su propio
// mapeo movieId -> fila (ver internal/ml).
type Catalog struct {
	movies []models.Movie
	byID   map[int]models.Movie
}

func NewCatalog(movies []models.Movie) *Catalog {
	c := &Catalog{
		movies: movies,
		byID:   make(map[int]models.Movie, len(movies)),
	}
	for _, m := range movies {
		c.byID[m.MovieID] = m
	}
	return c
}

// Movies devuelve la tabla completa en orden de archivo. No modificar.
func (c *Catalog) Movies() []models.Movie { return c.movies }

func (c *Catalog) Len() int { return len(c.movies) }

func (c *Catalog) Get(movieID int) (models.Movie, bool) {
	m, ok := c.byID[movieID]
	return m, ok
}

func (c *Catalog) Exists(movieID int) bool {
	_, ok := c.byID[movieID]
	return ok
}

// RatingTable es el conjunto completo de observaciones, indexado por usuario.
type RatingTable struct {
	all       []models.Rating
	byUser    map[int][]models.Rating
	userIDs   []int // en orden de primera aparición
	maxUserID int
}

func NewRatingTable(ratings []models.Rating) *RatingTable {
	t := &RatingTable{
		all:    ratings,
		byUser: make(map[int][]models.Rating),
	}
	for _, r := range ratings {
		if _, ok := t.byUser[r.UserID]; !ok {
			t.userIDs = append(t.userIDs, r.UserID)
		}
		t.byUser[r.UserID] = append(t.byUser[r.UserID], r)
		if r.UserID > t.maxUserID {
			t.maxUserID = r.UserID
		}
	}
	return t
}

// All devuelve todas las observaciones en orden de archivo. No modificar.
func (t *RatingTable) All() []models.Rating { return t.all }

func (t *RatingTable) Len() int { return len(t.all) }

// ByUser devuelve el historial de un usuario (orden de archivo). No modificar.
func (t *RatingTable) ByUser(userID int) []models.Rating { return t.byUser[userID] }

func (t *RatingTable) UserExists(userID int) bool {
	_, ok := t.byUser[userID]
	return ok
}

// UserIDs devuelve los usuarios conocidos en orden de primera aparición.
func (t *RatingTable) UserIDs() []int { return t.userIDs }

// MaxUserID sirve para sintetizar el id efímero del perfil cold-start
// (estrictamente mayor que cualquier usuario real).
func (t *RatingTable) MaxUserID() int { return t.maxUserID }
