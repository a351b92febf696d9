package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SessionField string

const (
	SessionID              SessionField = "_id"
	SessionEventID         SessionField = "event_id"
	SessionTitle           SessionField = "title"
	SessionAbstract        SessionField = "abstract"
	SessionSpeakers        SessionField = "speakers"
	SessionFormat          SessionField = "format"
	SessionLevel           SessionField = "level"
	SessionDurationMinutes SessionField = "duration_minutes"
	SessionStatus          SessionField = "status"
)

// Session is the struct to store talk sessions submitted to an event
type Session struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	EventID         primitive.ObjectID `json:"event_id" bson:"event_id" validate:"required"`
	Title           string             `json:"title" bson:"title" validate:"required"`
	Abstract        string             `json:"abstract,omitempty" bson:"abstract,omitempty"`
	Speakers        []string           `json:"speakers,omitempty" bson:"speakers,omitempty"`
	Format          string             `json:"format,omitempty" bson:"format,omitempty"`
	Level           string             `json:"level,omitempty" bson:"level,omitempty"`
	DurationMinutes int                `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty"`
	Status          string             `json:"status,omitempty" bson:"status,omitempty"`
}
