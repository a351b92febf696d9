package repositories

import (
	"context"

	"github.com/speakerdesk/sd_backend/entities"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx"
)

// UserRepository is the repository for User objects
type UserRepository struct {
	*mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) (*UserRepository, error) {
	// unique indexes for the identity provider's subject id and email
	for _, field := range []entities.UserField{entities.UserAuthID, entities.UserEmail} {
		_, err := db.Collection("users").Indexes().CreateOne(
			context.Background(),
			mongo.IndexModel{
				Keys:    bsonx.Doc{{Key: string(field), Value: bsonx.Int32(1)}},
				Options: options.Index().SetUnique(true),
			},
		)
		if err != nil {
			return nil, err
		}
	}

	return &UserRepository{
		Collection: db.Collection("users"),
	}, nil
}
