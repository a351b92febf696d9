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

type mongoEventService struct {
	logger          *zap.Logger
	env             *environment.Env
	eventRepository *repositories.EventRepository
	teamService     services.TeamService
}

// NewMongoEventService creates a new EventService that uses MongoDB as the storage technology
func NewMongoEventService(logger *zap.Logger, env *environment.Env, eventRepository *repositories.EventRepository,
	teamService services.TeamService) services.EventService {
	return &mongoEventService{
		logger:          logger,
		env:             env,
		eventRepository: eventRepository,
		teamService:     teamService,
	}
}

func (s *mongoEventService) CreateEvent(ctx context.Context, teamID, actingAuthID string, event entities.Event) (*entities.Event, error) {
	team, err := s.teamService.GetTeamWithID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.HasMember(actingAuthID) {
		return nil, services.ErrAccessDenied
	}

	event.ID = primitive.NewObjectID()
	event.TeamID = team.ID
	if len(event.URL) == 0 {
		event.URL = slugify(event.Name)
	}

	_, err = s.eventRepository.InsertOne(ctx, event)
	if mongo.IsDuplicateKeyError(err) {
		return nil, services.ErrURLTaken
	} else if err != nil {
		return nil, errors.Wrap(err, "could not create event")
	}

	return &event, nil
}

func (s *mongoEventService) GetEventWithID(ctx context.Context, id string) (*entities.Event, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.eventRepository.FindOne(ctx, bson.M{
		string(entities.EventID): mongoID,
	})

	event, err := decodeEventResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for event with ID")
	}

	return event, nil
}

func (s *mongoEventService) GetEventWithURL(ctx context.Context, url string) (*entities.Event, error) {
	res := s.eventRepository.FindOne(ctx, bson.M{
		string(entities.EventURL): url,
	})

	event, err := decodeEventResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for event with URL")
	}

	return event, nil
}

func (s *mongoEventService) GetEventsWithTeamID(ctx context.Context, teamID string) ([]entities.Event, error) {
	mongoID, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	cur, err := s.eventRepository.Find(ctx, bson.M{
		string(entities.EventTeamID): mongoID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for events with team")
	}
	defer cur.Close(ctx)

	var events []entities.Event
	for cur.Next(ctx) {
		var event entities.Event
		if err := cur.Decode(&event); err != nil {
			return nil, errors.Wrap(err, "could not decode event")
		}
		events = append(events, event)
	}

	return events, nil
}

func (s *mongoEventService) UpdateEventWithID(ctx context.Context, id, actingAuthID string, params services.EventUpdateParams) error {
	event, err := s.requireTeamMembership(ctx, id, actingAuthID)
	if err != nil {
		return err
	}

	// the URL slug is immutable once set
	delete(params, entities.EventURL)

	_, err = s.eventRepository.UpdateOne(ctx, bson.M{
		string(entities.EventID): event.ID,
	}, bson.M{
		"$set": params,
	})
	if err != nil {
		return errors.Wrap(err, "could not update event")
	}

	return nil
}

func (s *mongoEventService) DeleteEventWithID(ctx context.Context, id, actingAuthID string) error {
	event, err := s.requireTeamMembership(ctx, id, actingAuthID)
	if err != nil {
		return err
	}

	_, err = s.eventRepository.DeleteOne(ctx, bson.M{
		string(entities.EventID): event.ID,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete event")
	}

	return nil
}

// requireTeamMembership loads the event and checks the acting user is a
// member of the owning team
func (s *mongoEventService) requireTeamMembership(ctx context.Context, eventID, actingAuthID string) (*entities.Event, error) {
	event, err := s.GetEventWithID(ctx, eventID)
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

func decodeEventResult(res *mongo.SingleResult) (*entities.Event, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var event entities.Event
	err = res.Decode(&event)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode event")
	}

	return &event, nil
}
