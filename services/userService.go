package services

import (
	"context"

	"github.com/speakerdesk/sd_backend/entities"
)

type UserUpdateParams map[entities.UserField]interface{}

// UserService is the service for interactions with the user directory
type UserService interface {
	// SyncUser creates or updates the profile for a verified identity.
	// The boundary reconciles pending team invites for the identity's
	// email after a sync.
	SyncUser(ctx context.Context, authID, name, email, avatarURL string) (*entities.User, error)

	GetUsers(ctx context.Context) ([]entities.User, error)
	GetUserWithAuthID(ctx context.Context, authID string) (*entities.User, error)
	GetUserWithEmail(ctx context.Context, email string) (*entities.User, error)

	UpdateUserWithAuthID(ctx context.Context, authID string, params UserUpdateParams) error

	DeleteUserWithAuthID(ctx context.Context, authID string) error
}
