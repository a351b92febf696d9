package routers

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/speakerdesk/sd_backend/routers/api/v1"
	"go.uber.org/zap"
)

// MainRouter is the top-level router for the service
type MainRouter interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
}

type mainRouter struct {
	logger      *zap.Logger
	apiV1Router v1.APIV1Router
}

// NewMainRouter creates a MainRouter
func NewMainRouter(logger *zap.Logger, apiV1Router v1.APIV1Router) MainRouter {
	return &mainRouter{
		logger:      logger,
		apiV1Router: apiV1Router,
	}
}

func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.apiV1Router.Heartbeat)

	apiV1 := routerGroup.Group("/api/v1")
	r.apiV1Router.RegisterRoutes(apiV1)
}
