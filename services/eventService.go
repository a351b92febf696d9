package services

import (
	"context"

	"github.com/speakerdesk/sd_backend/entities"
)

type EventUpdateParams map[entities.EventField]interface{}

// EventService is the service for interactions with the events collection.
// Write operations require the acting user to be a member of the team
// that owns the event.
type EventService interface {
	CreateEvent(ctx context.Context, teamID, actingAuthID string, event entities.Event) (*entities.Event, error)

	GetEventWithID(ctx context.Context, id string) (*entities.Event, error)
	GetEventWithURL(ctx context.Context, url string) (*entities.Event, error)
	GetEventsWithTeamID(ctx context.Context, teamID string) ([]entities.Event, error)

	UpdateEventWithID(ctx context.Context, id, actingAuthID string, params EventUpdateParams) error
	DeleteEventWithID(ctx context.Context, id, actingAuthID string) error
}
