package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/speakerdesk/sd_backend/authorization"
	"github.com/speakerdesk/sd_backend/config"
	"github.com/speakerdesk/sd_backend/routers/api/models"
	"github.com/speakerdesk/sd_backend/services"
	"go.uber.org/zap"
)

const authTokenHeader = "Authorization"

// APIV1Router is the router for v1 of the API
type APIV1Router interface {
	models.Router

	SyncUser(ctx *gin.Context)
	GetUsers(ctx *gin.Context)
	GetMe(ctx *gin.Context)
	GetUser(ctx *gin.Context)

	CreateTeam(ctx *gin.Context)
	GetTeams(ctx *gin.Context)
	GetTeam(ctx *gin.Context)
	DeleteTeam(ctx *gin.Context)

	GetTeamMembers(ctx *gin.Context)
	AddTeamMember(ctx *gin.Context)
	InviteTeamMember(ctx *gin.Context)
	UpdateTeamMemberRole(ctx *gin.Context)
	RemoveTeamMember(ctx *gin.Context)

	CreateEvent(ctx *gin.Context)
	GetTeamEvents(ctx *gin.Context)
	GetEvent(ctx *gin.Context)
	UpdateEvent(ctx *gin.Context)
	DeleteEvent(ctx *gin.Context)

	CreateSession(ctx *gin.Context)
	GetEventSessions(ctx *gin.Context)
	GetSession(ctx *gin.Context)
	UpdateSession(ctx *gin.Context)
	DeleteSession(ctx *gin.Context)
	ExportSessions(ctx *gin.Context)
	ImportSessions(ctx *gin.Context)
}

type apiV1Router struct {
	models.BaseRouter
	logger         *zap.Logger
	cfg            *config.AppConfig
	verifier       authorization.Verifier
	userService    services.UserService
	teamService    services.TeamService
	eventService   services.EventService
	sessionService services.SessionService
}

// NewAPIV1Router creates a APIV1Router
func NewAPIV1Router(logger *zap.Logger, cfg *config.AppConfig, verifier authorization.Verifier,
	userService services.UserService, teamService services.TeamService,
	eventService services.EventService, sessionService services.SessionService) APIV1Router {
	return &apiV1Router{
		logger:         logger,
		cfg:            cfg,
		verifier:       verifier,
		userService:    userService,
		teamService:    teamService,
		eventService:   eventService,
		sessionService: sessionService,
	}
}

// RegisterRoutes registers all of the API's (v1) routes to the given router group
func (r *apiV1Router) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	usersGroup := routerGroup.Group("/users")
	usersGroup.POST("/sync", r.verifier.WithAuthMiddleware(r, r.SyncUser))
	usersGroup.GET("/", r.verifier.WithAuthMiddleware(r, r.GetUsers))
	usersGroup.GET("/me", r.verifier.WithAuthMiddleware(r, r.GetMe))
	usersGroup.GET("/:id", r.verifier.WithAuthMiddleware(r, r.GetUser))

	teamsGroup := routerGroup.Group("/teams")
	teamsGroup.POST("/", r.verifier.WithAuthMiddleware(r, r.CreateTeam))
	teamsGroup.GET("/", r.verifier.WithAuthMiddleware(r, r.GetTeams))
	teamsGroup.GET("/:id", r.verifier.WithAuthMiddleware(r, r.GetTeam))
	teamsGroup.DELETE("/:id", r.verifier.WithAuthMiddleware(r, r.DeleteTeam))

	teamsGroup.GET("/:id/members", r.verifier.WithAuthMiddleware(r, r.GetTeamMembers))
	teamsGroup.POST("/:id/members", r.verifier.WithAuthMiddleware(r, r.AddTeamMember))
	teamsGroup.POST("/:id/members/invite", r.verifier.WithAuthMiddleware(r, r.InviteTeamMember))
	teamsGroup.PUT("/:id/members/:userId/role", r.verifier.WithAuthMiddleware(r, r.UpdateTeamMemberRole))
	teamsGroup.DELETE("/:id/members/:userId", r.verifier.WithAuthMiddleware(r, r.RemoveTeamMember))

	teamsGroup.POST("/:id/events", r.verifier.WithAuthMiddleware(r, r.CreateEvent))
	teamsGroup.GET("/:id/events", r.verifier.WithAuthMiddleware(r, r.GetTeamEvents))

	eventsGroup := routerGroup.Group("/events")
	eventsGroup.GET("/:id", r.verifier.WithAuthMiddleware(r, r.GetEvent))
	eventsGroup.PUT("/:id", r.verifier.WithAuthMiddleware(r, r.UpdateEvent))
	eventsGroup.DELETE("/:id", r.verifier.WithAuthMiddleware(r, r.DeleteEvent))
	eventsGroup.POST("/:id/sessions", r.verifier.WithAuthMiddleware(r, r.CreateSession))
	eventsGroup.GET("/:id/sessions", r.verifier.WithAuthMiddleware(r, r.GetEventSessions))
	eventsGroup.GET("/:id/sessions/export", r.verifier.WithAuthMiddleware(r, r.ExportSessions))
	eventsGroup.POST("/:id/sessions/import", r.verifier.WithAuthMiddleware(r, r.ImportSessions))

	sessionsGroup := routerGroup.Group("/sessions")
	sessionsGroup.GET("/:id", r.verifier.WithAuthMiddleware(r, r.GetSession))
	sessionsGroup.PUT("/:id", r.verifier.WithAuthMiddleware(r, r.UpdateSession))
	sessionsGroup.DELETE("/:id", r.verifier.WithAuthMiddleware(r, r.DeleteSession))
}

// GetAuthToken extracts the bearer token from the Authorization header
func (r *apiV1Router) GetAuthToken(ctx *gin.Context) string {
	header := ctx.GetHeader(authTokenHeader)
	return strings.TrimPrefix(header, "Bearer ")
}

func (r *apiV1Router) HandleUnauthorized(ctx *gin.Context) {
	models.SendAPIError(ctx, http.StatusUnauthorized, "invalid auth token")
}
