package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserField string

const (
	UserID        UserField = "_id"
	UserAuthID    UserField = "auth_id"
	UserName      UserField = "name"
	UserEmail     UserField = "email"
	UserAvatarURL UserField = "avatar_url"
)

// User is the struct to store registered users
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	AuthID    string             `json:"auth_id" bson:"auth_id" validate:"required"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" validate:"required,email"`
	AvatarURL string             `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
}
