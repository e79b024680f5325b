package repository

import (
	"context"

	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/db"
	"github.com/SanchezAlbaladejoPablo/RecomendadorPeliculasHibrido/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecommendationRepository guarda el historial de recomendaciones
// calculadas. Si Mongo no está configurado, NewRecommendationRepository
// devuelve nil y el servicio se salta el guardado.
type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository() *RecommendationRepository {
	if !db.Enabled() {
		return nil
	}
	return &RecommendationRepository{col: db.DB().Collection("recommendations")}
}

func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.Recommendation) error {
	_, err := r.col.InsertOne(ctx, rec)
	return err
}

// GetByUser devuelve las últimas recomendaciones guardadas de un usuario.
func (r *RecommendationRepository) GetByUser(ctx context.Context, userID, limit int) ([]models.Recommendation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Recommendation
	for cur.Next(ctx) {
		var rec models.Recommendation
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}
