package models

// Movie es una fila del catálogo (movies.dat). Genres se conserva tal cual
// viene en el archivo ("Action|Adventure|Sci-Fi") porque así lo expone la API.
type Movie struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
	Genres  string `json:"genres"`
}
