package main

import (
	"github.com/gin-gonic/gin"
	"github.com/speakerdesk/sd_backend/environment"
	"github.com/speakerdesk/sd_backend/routers"
)

// Server wraps the gin engine with the environment it was built for
type Server struct {
	*gin.Engine
	Port string
}

func NewServer(mainRouter routers.MainRouter, env *environment.Env) Server {
	engine := gin.Default()

	mainRouter.RegisterRoutes(engine.Group("/"))

	return Server{
		Engine: engine,
		Port:   env.Get(environment.Port),
	}
}
