package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/speakerdesk/sd_backend/entities"
	"github.com/speakerdesk/sd_backend/environment"
	"github.com/speakerdesk/sd_backend/repositories"
	"github.com/speakerdesk/sd_backend/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoUserService struct {
	logger         *zap.Logger
	env            *environment.Env
	userRepository *repositories.UserRepository
}

// NewMongoUserService creates a new UserService that uses MongoDB as the storage technology
func NewMongoUserService(logger *zap.Logger, env *environment.Env, userRepository *repositories.UserRepository) services.UserService {
	return &mongoUserService{
		logger:         logger,
		env:            env,
		userRepository: userRepository,
	}
}

func (s *mongoUserService) SyncUser(ctx context.Context, authID, name, email, avatarURL string) (*entities.User, error) {
	if len(authID) == 0 {
		return nil, services.ErrInvalidID
	}

	existing, err := s.GetUserWithAuthID(ctx, authID)
	if err == nil {
		params := services.UserUpdateParams{}
		if len(name) > 0 && name != existing.Name {
			params[entities.UserName] = name
		}
		if len(avatarURL) > 0 && avatarURL != existing.AvatarURL {
			params[entities.UserAvatarURL] = avatarURL
		}
		if len(params) > 0 {
			if err := s.UpdateUserWithAuthID(ctx, authID, params); err != nil {
				return nil, err
			}
		}
		return s.GetUserWithAuthID(ctx, authID)
	} else if errors.Cause(err) != services.ErrNotFound {
		return nil, err
	}

	user := &entities.User{
		ID:        primitive.NewObjectID(),
		AuthID:    authID,
		Name:      name,
		Email:     email,
		AvatarURL: avatarURL,
	}

	_, err = s.userRepository.InsertOne(ctx, *user)
	if err != nil {
		return nil, errors.Wrap(err, "could not create new user")
	}

	return user, nil
}

func (s *mongoUserService) GetUsers(ctx context.Context) ([]entities.User, error) {
	cur, err := s.userRepository.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for users")
	}
	defer cur.Close(ctx)

	users, err := decodeUsersResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return users, nil
}

func (s *mongoUserService) GetUserWithAuthID(ctx context.Context, authID string) (*entities.User, error) {
	if len(authID) == 0 {
		return nil, services.ErrInvalidID
	}

	res := s.userRepository.FindOne(ctx, bson.M{
		string(entities.UserAuthID): authID,
	})

	user, err := decodeUserResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for user with auth ID")
	}

	return user, nil
}

func (s *mongoUserService) GetUserWithEmail(ctx context.Context, email string) (*entities.User, error) {
	res := s.userRepository.FindOne(ctx, bson.M{
		string(entities.UserEmail): email,
	})

	user, err := decodeUserResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for user with email")
	}

	return user, nil
}

func (s *mongoUserService) UpdateUserWithAuthID(ctx context.Context, authID string, params services.UserUpdateParams) error {
	if len(authID) == 0 {
		return services.ErrInvalidID
	}

	res, err := s.userRepository.UpdateOne(ctx, bson.M{
		string(entities.UserAuthID): authID,
	}, bson.M{
		"$set": params,
	})
	if err != nil {
		return errors.Wrap(err, "could not update user")
	} else if res.MatchedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func (s *mongoUserService) DeleteUserWithAuthID(ctx context.Context, authID string) error {
	if len(authID) == 0 {
		return services.ErrInvalidID
	}

	res, err := s.userRepository.DeleteOne(ctx, bson.M{
		string(entities.UserAuthID): authID,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete user")
	} else if res.DeletedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func decodeUserResult(res *mongo.SingleResult) (*entities.User, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var user entities.User
	err = res.Decode(&user)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode user")
	}

	return &user, nil
}

func decodeUsersResult(ctx context.Context, cur *mongo.Cursor) ([]entities.User, error) {
	var users []entities.User
	for cur.Next(ctx) {
		var user entities.User
		err := cur.Decode(&user)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode user")
		}
		users = append(users, user)
	}

	return users, nil
}
