package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is the interface for an API router
type Router interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
	Heartbeat(ctx *gin.Context)
}

// BaseRouter provides the handlers every API router shares
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r *BaseRouter) Heartbeat(c *gin.Context) {
	message := fmt.Sprintf("request to %s received", c.Request.URL.String())

	c.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
