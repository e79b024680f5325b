package service

import "errors"

// Taxonomía de errores del servicio. Los handlers los traducen a códigos
// HTTP con errors.Is; cualquier otro error es un 500 genérico.
var (
	ErrNotReady      = errors.New("tablas y modelos aún no cargados")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrMovieNotFound = errors.New("película no encontrada")
	ErrEmptyRatings  = errors.New("la lista de ratings no puede estar vacía")
	ErrInvalidRating = errors.New("rating fuera del rango [1,5]")

	// el historial requiere Mongo; sin MONGO_URI el endpoint no está disponible
	ErrHistoryDisabled = errors.New("historial de recomendaciones deshabilitado")
)
