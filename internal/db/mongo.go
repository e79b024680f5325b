package db

import (
	"context"
	"log"
	"time"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoDB *mongo.Database

// InitMongo conecta a Mongo para el historial de recomendaciones.
// Es opcional: sin MONGO_URI el historial simplemente no se guarda.
func InitMongo(cfg *config.Config) {
	if cfg.MongoURI == "" {
		log.Println("[mongo] MONGO_URI vacío, historial deshabilitado")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Printf("[mongo] error conectando (%v), historial deshabilitado", err)
		return
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("[mongo] ping falló (%v), historial deshabilitado", err)
		return
	}

	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
}

// Enabled indica si hay conexión viva.
func Enabled() bool { return mongoDB != nil }

func DB() *mongo.Database {
	return mongoDB
}
