package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MoviesPath  string
	RatingsPath string
	SVDPath     string
	SimPath     string

	HTTPPort string

	// Redis y Mongo son opcionales: si las variables están vacías,
	// el servicio corre sin cache y sin historial.
	RedisAddr string
	RedisPass string
	MongoURI  string
	MongoDB   string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MoviesPath:  getEnv("MOVIES_PATH", "data/ml-1m/movies.dat"),
		RatingsPath: getEnv("RATINGS_PATH", "data/ml-1m/ratings.dat"),
		SVDPath:     getEnv("SVD_MODEL_PATH", "models/svd_model.json"),
		SimPath:     getEnv("SIM_MATRIX_PATH", "models/cosine_sim.ndjson"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getEnv("MONGO_DB", "hibrido_movies"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}
