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

type mongoSessionService struct {
	logger            *zap.Logger
	env               *environment.Env
	sessionRepository *repositories.SessionRepository
	eventService      services.EventService
	teamService       services.TeamService
}

// NewMongoSessionService creates a new SessionService that uses MongoDB as the storage technology
func NewMongoSessionService(logger *zap.Logger, env *environment.Env, sessionRepository *repositories.SessionRepository,
	eventService services.EventService, teamService services.TeamService) services.SessionService {
	return &mongoSessionService{
		logger:            logger,
		env:               env,
		sessionRepository: sessionRepository,
		eventService:      eventService,
		teamService:       teamService,
	}
}

func (s *mongoSessionService) CreateSession(ctx context.Context, eventID, actingAuthID string, session entities.Session) (*entities.Session, error) {
	event, err := s.requireEventTeamMembership(ctx, eventID, actingAuthID)
	if err != nil {
		return nil, err
	}

	session.ID = primitive.NewObjectID()
	session.EventID = event.ID

	_, err = s.sessionRepository.InsertOne(ctx, session)
	if err != nil {
		return nil, errors.Wrap(err, "could not create session")
	}

	return &session, nil
}

func (s *mongoSessionService) GetSessionWithID(ctx context.Context, id string) (*entities.Session, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.sessionRepository.FindOne(ctx, bson.M{
		string(entities.SessionID): mongoID,
	})

	session, err := decodeSessionResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for session with ID")
	}

	return session, nil
}

func (s *mongoSessionService) GetSessionsWithEventID(ctx context.Context, eventID string) ([]entities.Session, error) {
	mongoID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	cur, err := s.sessionRepository.Find(ctx, bson.M{
		string(entities.SessionEventID): mongoID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for sessions with event")
	}
	defer cur.Close(ctx)

	return decodeSessionsResult(ctx, cur)
}

func (s *mongoSessionService) UpdateSessionWithID(ctx context.Context, id, actingAuthID string, params services.SessionUpdateParams) error {
	session, err := s.GetSessionWithID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.requireEventTeamMembership(ctx, session.EventID.Hex(), actingAuthID); err != nil {
		return err
	}

	_, err = s.sessionRepository.UpdateOne(ctx, bson.M{
		string(entities.SessionID): session.ID,
	}, bson.M{
		"$set": params,
	})
	if err != nil {
		return errors.Wrap(err, "could not update session")
	}

	return nil
}

func (s *mongoSessionService) DeleteSessionWithID(ctx context.Context, id, actingAuthID string) error {
	session, err := s.GetSessionWithID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.requireEventTeamMembership(ctx, session.EventID.Hex(), actingAuthID); err != nil {
		return err
	}

	_, err = s.sessionRepository.DeleteOne(ctx, bson.M{
		string(entities.SessionID): session.ID,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete session")
	}

	return nil
}

func (s *mongoSessionService) ExportSessions(ctx context.Context, eventID, actingAuthID string) (*services.SessionExport, error) {
	event, err := s.requireEventTeamMembership(ctx, eventID, actingAuthID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.GetSessionsWithEventID(ctx, event.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &services.SessionExport{
		EventID:  event.ID.Hex(),
		Sessions: sessions,
	}, nil
}

func (s *mongoSessionService) ImportSessions(ctx context.Context, eventID, actingAuthID string, export services.SessionExport) ([]entities.Session, error) {
	event, err := s.requireEventTeamMembership(ctx, eventID, actingAuthID)
	if err != nil {
		return nil, err
	}

	existing, err := s.GetSessionsWithEventID(ctx, event.ID.Hex())
	if err != nil {
		return nil, err
	}
	existingByTitle := make(map[string]entities.Session, len(existing))
	for _, session := range existing {
		existingByTitle[session.Title] = session
	}

	imported := make([]entities.Session, 0, len(export.Sessions))
	for _, session := range export.Sessions {
		session.EventID = event.ID

		if current, ok := existingByTitle[session.Title]; ok {
			// same title updates the stored session in place
			session.ID = current.ID
			_, err = s.sessionRepository.ReplaceOne(ctx, bson.M{
				string(entities.SessionID): current.ID,
			}, session)
		} else {
			session.ID = primitive.NewObjectID()
			_, err = s.sessionRepository.InsertOne(ctx, session)
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not import session")
		}

		imported = append(imported, session)
	}

	s.logger.Info("imported sessions",
		zap.String("event", event.ID.Hex()),
		zap.Int("count", len(imported)))

	return imported, nil
}

func (s *mongoSessionService) requireEventTeamMembership(ctx context.Context, eventID, actingAuthID string) (*entities.Event, error) {
	event, err := s.eventService.GetEventWithID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	team, err := s.teamService.GetTeamWithID(ctx, event.TeamID.Hex())
	if err != nil {
		return nil, err
	}
	if !team.HasMember(actingAuthID) {
		return nil, services.ErrAccessDenied
	}

	return event, nil
}

func decodeSessionResult(res *mongo.SingleResult) (*entities.Session, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var session entities.Session
	err = res.Decode(&session)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode session")
	}

	return &session, nil
}

func decodeSessionsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Session, error) {
	var sessions []entities.Session
	for cur.Next(ctx) {
		var session entities.Session
		err := cur.Decode(&session)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode session")
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}
