package repositories

import (
	"context"

	"github.com/speakerdesk/sd_backend/entities"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/bsonx"
)

// SessionRepository is the repository for Session objects
type SessionRepository struct {
	*mongo.Collection
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *mongo.Database) (*SessionRepository, error) {
	_, err := db.Collection("sessions").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bsonx.Doc{{Key: string(entities.SessionEventID), Value: bsonx.Int32(1)}},
		},
	)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{
		Collection: db.Collection("sessions"),
	}, nil
}
