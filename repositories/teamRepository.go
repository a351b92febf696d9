package repositories

import (
	"context"

	"github.com/speakerdesk/sd_backend/entities"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx"
)

// TeamRepository is the repository for Team objects
type TeamRepository struct {
	*mongo.Collection
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *mongo.Database) (*TeamRepository, error) {
	_, err := db.Collection("teams").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bsonx.Doc{{Key: string(entities.TeamURL), Value: bsonx.Int32(1)}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		return nil, err
	}

	// non-unique index for member lookups
	_, err = db.Collection("teams").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bsonx.Doc{{Key: string(entities.TeamMemberIDs), Value: bsonx.Int32(1)}},
		},
	)
	if err != nil {
		return nil, err
	}

	return &TeamRepository{
		Collection: db.Collection("teams"),
	}, nil
}
