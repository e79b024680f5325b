package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecItem es una película recomendada con su score híbrido.
type RecItem struct {
	MovieID int     `bson:"movieId" json:"movie_id"`
	Score   float64 `bson:"score"   json:"score"`
}

// Recommendation es el documento de historial que guardamos en Mongo
// cada vez que calculamos recomendaciones híbridas (best-effort).
type Recommendation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        int                `bson:"userId"        json:"user_id"`
	Ephemeral     bool               `bson:"ephemeral"     json:"ephemeral"`
	Algo          string             `bson:"algo"          json:"algo"`
	WeightCF      float64            `bson:"weightCf"      json:"weight_cf"`
	WeightContent float64            `bson:"weightContent" json:"weight_content"`
	N             int                `bson:"n"             json:"n"`
	Items         []RecItem          `bson:"items"         json:"items"`
	CreatedAt     time.Time          `bson:"createdAt"     json:"created_at"`
}
