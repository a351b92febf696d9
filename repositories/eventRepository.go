package repositories

import (
	"context"

	"github.com/speakerdesk/sd_backend/entities"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx"
)

// EventRepository is the repository for Event objects
type EventRepository struct {
	*mongo.Collection
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *mongo.Database) (*EventRepository, error) {
	_, err := db.Collection("events").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bsonx.Doc{{Key: string(entities.EventURL), Value: bsonx.Int32(1)}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = db.Collection("events").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bsonx.Doc{{Key: string(entities.EventTeamID), Value: bsonx.Int32(1)}},
		},
	)
	if err != nil {
		return nil, err
	}

	return &EventRepository{
		Collection: db.Collection("events"),
	}, nil
}
