package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/speakerdesk/sd_backend/entities"
	"github.com/speakerdesk/sd_backend/routers/api/models"
	"github.com/speakerdesk/sd_backend/services"
	"go.uber.org/zap"
)

// POST: /api/v1/teams/:id/events
// Request:  createEventReq (JSON)
// Response: event entities.Event
// Headers:  Authorization -> token
func (r *apiV1Router) CreateEvent(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	var req createEventReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		r.logger.Debug("could not parse event request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "event name must be provided")
		return
	}

	event := entities.Event{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
	}
	var err error
	if event.StartDate, err = parseEventDate(req.StartDate); err != nil {
		models.SendAPIError(ctx, http.StatusBadRequest, "start_date must be an RFC 3339 timestamp")
		return
	}
	if event.EndDate, err = parseEventDate(req.EndDate); err != nil {
		models.SendAPIError(ctx, http.StatusBadRequest, "end_date must be an RFC 3339 timestamp")
		return
	}

	created, err := r.eventService.CreateEvent(ctx, ctx.Param("id"), identity.AuthID, event)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		case services.ErrAccessDenied:
			r.logger.Debug("user is not a member of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "you are not a member of this team")
		case services.ErrURLTaken:
			r.logger.Debug("event url taken", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "an event with a similar name already exists")
		default:
			r.logger.Error("could not create event", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, createEventRes{
		Event: *created,
	})
}

// GET: /api/v1/teams/:id/events
// Response: events []entities.Event
// Headers:  Authorization -> token
func (r *apiV1Router) GetTeamEvents(ctx *gin.Context) {
	events, err := r.eventService.GetEventsWithTeamID(ctx, ctx.Param("id"))
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		default:
			r.logger.Error("could not fetch events", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getEventsRes{
		Events: events,
	})
}

// GET: /api/v1/events/:id
// Response: event entities.Event
// Headers:  Authorization -> token
func (r *apiV1Router) GetEvent(ctx *gin.Context) {
	event, err := r.eventService.GetEventWithID(ctx, ctx.Param("id"))
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid event id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid event id")
		case services.ErrNotFound:
			r.logger.Debug("event not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusNotFound, "event not found")
		default:
			r.logger.Error("could not fetch event", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getEventRes{
		Event: *event,
	})
}

// PUT: /api/v1/events/:id
// Request:  updateEventReq (JSON)
// Headers:  Authorization -> token
func (r *apiV1Router) UpdateEvent(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	var req updateEventReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		r.logger.Debug("could not parse event request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "could not parse request")
		return
	}

	params := services.EventUpdateParams{}
	if req.Name != nil {
		params[entities.EventName] = *req.Name
	}
	if req.Description != nil {
		params[entities.EventDescription] = *req.Description
	}
	if req.StartDate != nil {
		startDate, err := parseEventDate(*req.StartDate)
		if err != nil {
			models.SendAPIError(ctx, http.StatusBadRequest, "start_date must be an RFC 3339 timestamp")
			return
		}
		params[entities.EventStartDate] = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseEventDate(*req.EndDate)
		if err != nil {
			models.SendAPIError(ctx, http.StatusBadRequest, "end_date must be an RFC 3339 timestamp")
			return
		}
		params[entities.EventEndDate] = endDate
	}
	if len(params) == 0 {
		models.SendAPIError(ctx, http.StatusBadRequest, "no fields to update")
		return
	}

	err := r.eventService.UpdateEventWithID(ctx, ctx.Param("id"), identity.AuthID, params)
	if err != nil {
		r.handleEventError(ctx, err, "could not update event")
		return
	}

	ctx.Status(http.StatusOK)
}

// DELETE: /api/v1/events/:id
// Headers:  Authorization -> token
func (r *apiV1Router) DeleteEvent(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	err := r.eventService.DeleteEventWithID(ctx, ctx.Param("id"), identity.AuthID)
	if err != nil {
		r.handleEventError(ctx, err, "could not delete event")
		return
	}

	ctx.Status(http.StatusOK)
}

func (r *apiV1Router) handleEventError(ctx *gin.Context, err error, logMsg string) {
	switch errors.Cause(err) {
	case services.ErrInvalidID:
		r.logger.Debug("invalid event id", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid event id")
	case services.ErrNotFound:
		r.logger.Debug("event not found", zap.Error(err))
		models.SendAPIError(ctx, http.StatusNotFound, "event not found")
	case services.ErrAccessDenied:
		r.logger.Debug("user is not a member of the team", zap.Error(err))
		models.SendAPIError(ctx, http.StatusForbidden, "you are not a member of this team")
	default:
		r.logger.Error(logMsg, zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
	}
}

func parseEventDate(raw string) (time.Time, error) {
	if len(raw) == 0 {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
