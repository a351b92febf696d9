package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventField string

const (
	EventID          EventField = "_id"
	EventTeamID      EventField = "team_id"
	EventName        EventField = "name"
	EventURL         EventField = "url"
	EventDescription EventField = "description"
	EventStartDate   EventField = "start_date"
	EventEndDate     EventField = "end_date"
)

// Event is the struct to store events run by a team
type Event struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	TeamID      primitive.ObjectID `json:"team_id" bson:"team_id" validate:"required"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	URL         string             `json:"url" bson:"url"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	StartDate   time.Time          `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate     time.Time          `json:"end_date,omitempty" bson:"end_date,omitempty"`
}
