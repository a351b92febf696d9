package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/speakerdesk/sd_backend/entities"
	"github.com/speakerdesk/sd_backend/routers/api/models"
	"github.com/speakerdesk/sd_backend/services"
	"go.uber.org/zap"
)

// POST: /api/v1/events/:id/sessions
// Request:  sessionReq (JSON)
// Response: session entities.Session
// Headers:  Authorization -> token
func (r *apiV1Router) CreateSession(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	var req sessionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		r.logger.Debug("could not parse session request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "session title must be provided")
		return
	}

	session, err := r.sessionService.CreateSession(ctx, ctx.Param("id"), identity.AuthID, entities.Session{
		Title:           req.Title,
		Abstract:        req.Abstract,
		Speakers:        req.Speakers,
		Format:          req.Format,
		Level:           req.Level,
		DurationMinutes: req.DurationMinutes,
		Status:          req.Status,
	})
	if err != nil {
		r.handleSessionError(ctx, err, "could not create session")
		return
	}

	ctx.JSON(http.StatusOK, createSessionRes{
		Session: *session,
	})
}

// GET: /api/v1/events/:id/sessions
// Response: sessions []entities.Session
// Headers:  Authorization -> token
func (r *apiV1Router) GetEventSessions(ctx *gin.Context) {
	sessions, err := r.sessionService.GetSessionsWithEventID(ctx, ctx.Param("id"))
	if err != nil {
		r.handleSessionError(ctx, err, "could not fetch sessions")
		return
	}

	ctx.JSON(http.StatusOK, getSessionsRes{
		Sessions: sessions,
	})
}

// GET: /api/v1/sessions/:id
// Response: session entities.Session
// Headers:  Authorization -> token
func (r *apiV1Router) GetSession(ctx *gin.Context) {
	session, err := r.sessionService.GetSessionWithID(ctx, ctx.Param("id"))
	if err != nil {
		r.handleSessionError(ctx, err, "could not fetch session")
		return
	}

	ctx.JSON(http.StatusOK, getSessionRes{
		Session: *session,
	})
}

// PUT: /api/v1/sessions/:id
// Request:  updateSessionReq (JSON)
// Headers:  Authorization -> token
func (r *apiV1Router) UpdateSession(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	var req updateSessionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		r.logger.Debug("could not parse session request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "could not parse request")
		return
	}

	params := services.SessionUpdateParams{}
	if req.Title != nil {
		params[entities.SessionTitle] = *req.Title
	}
	if req.Abstract != nil {
		params[entities.SessionAbstract] = *req.Abstract
	}
	if req.Speakers != nil {
		params[entities.SessionSpeakers] = *req.Speakers
	}
	if req.Format != nil {
		params[entities.SessionFormat] = *req.Format
	}
	if req.Level != nil {
		params[entities.SessionLevel] = *req.Level
	}
	if req.DurationMinutes != nil {
		params[entities.SessionDurationMinutes] = *req.DurationMinutes
	}
	if req.Status != nil {
		params[entities.SessionStatus] = *req.Status
	}
	if len(params) == 0 {
		models.SendAPIError(ctx, http.StatusBadRequest, "no fields to update")
		return
	}

	err := r.sessionService.UpdateSessionWithID(ctx, ctx.Param("id"), identity.AuthID, params)
	if err != nil {
		r.handleSessionError(ctx, err, "could not update session")
		return
	}

	ctx.Status(http.StatusOK)
}

// DELETE: /api/v1/sessions/:id
// Headers:  Authorization -> token
func (r *apiV1Router) DeleteSession(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	err := r.sessionService.DeleteSessionWithID(ctx, ctx.Param("id"), identity.AuthID)
	if err != nil {
		r.handleSessionError(ctx, err, "could not delete session")
		return
	}

	ctx.Status(http.StatusOK)
}

// GET: /api/v1/events/:id/sessions/export
// Response: services.SessionExport
// Headers:  Authorization -> token
func (r *apiV1Router) ExportSessions(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	export, err := r.sessionService.ExportSessions(ctx, ctx.Param("id"), identity.AuthID)
	if err != nil {
		r.handleSessionError(ctx, err, "could not export sessions")
		return
	}

	ctx.JSON(http.StatusOK, export)
}

// POST: /api/v1/events/:id/sessions/import
// Request:  services.SessionExport (JSON)
// Response: sessions []entities.Session
// Headers:  Authorization -> token
func (r *apiV1Router) ImportSessions(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	var export services.SessionExport
	if err := ctx.ShouldBindJSON(&export); err != nil {
		r.logger.Debug("could not parse import request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "could not parse import document")
		return
	}

	sessions, err := r.sessionService.ImportSessions(ctx, ctx.Param("id"), identity.AuthID, export)
	if err != nil {
		r.handleSessionError(ctx, err, "could not import sessions")
		return
	}

	ctx.JSON(http.StatusOK, importSessionsRes{
		Sessions: sessions,
	})
}

func (r *apiV1Router) handleSessionError(ctx *gin.Context, err error, logMsg string) {
	switch errors.Cause(err) {
	case services.ErrInvalidID:
		r.logger.Debug("invalid id", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid id")
	case services.ErrNotFound:
		r.logger.Debug("not found", zap.Error(err))
		models.SendAPIError(ctx, http.StatusNotFound, "event or session not found")
	case services.ErrAccessDenied:
		r.logger.Debug("user is not a member of the team", zap.Error(err))
		models.SendAPIError(ctx, http.StatusForbidden, "you are not a member of this team")
	default:
		r.logger.Error(logMsg, zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
	}
}
