package models

// Rating es una observación de ratings.dat (inmutable una vez cargada).
type Rating struct {
	UserID    int     `json:"user_id"`
	MovieID   int     `json:"movie_id"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}

// RatedMovie es lo que devolvemos en el historial de un usuario:
// la película más el rating que le puso.
type RatedMovie struct {
	MovieID   int     `json:"movie_id"`
	Title     string  `json:"title"`
	Genres    string  `json:"genres"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}

// CustomRating es un par (película, rating) de un perfil anónimo (cold start).
type CustomRating struct {
	MovieID int     `json:"movie_id"`
	Rating  float64 `json:"rating"`
}
