package services

import (
	"context"

	"github.com/speakerdesk/sd_backend/entities"
)

type SessionUpdateParams map[entities.SessionField]interface{}

// SessionExport is the document produced by ExportSessions and consumed
// by ImportSessions
type SessionExport struct {
	EventID  string             `json:"event_id"`
	Sessions []entities.Session `json:"sessions"`
}

// SessionService is the service for interactions with the sessions
// collection. Write operations require the acting user to be a member
// of the team that owns the event.
type SessionService interface {
	CreateSession(ctx context.Context, eventID, actingAuthID string, session entities.Session) (*entities.Session, error)

	GetSessionWithID(ctx context.Context, id string) (*entities.Session, error)
	GetSessionsWithEventID(ctx context.Context, eventID string) ([]entities.Session, error)

	UpdateSessionWithID(ctx context.Context, id, actingAuthID string, params SessionUpdateParams) error
	DeleteSessionWithID(ctx context.Context, id, actingAuthID string) error

	// ExportSessions serializes an event's sessions to a JSON document
	ExportSessions(ctx context.Context, eventID, actingAuthID string) (*SessionExport, error)
	// ImportSessions upserts sessions from an export document into the
	// event; sessions with a matching title are updated in place
	ImportSessions(ctx context.Context, eventID, actingAuthID string, export SessionExport) ([]entities.Session, error)
}
