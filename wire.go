//+build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/speakerdesk/sd_backend/authorization"
	"github.com/speakerdesk/sd_backend/config"
	"github.com/speakerdesk/sd_backend/environment"
	"github.com/speakerdesk/sd_backend/repositories"
	"github.com/speakerdesk/sd_backend/routers"
	v1 "github.com/speakerdesk/sd_backend/routers/api/v1"
	"github.com/speakerdesk/sd_backend/services/mongo"
	"github.com/speakerdesk/sd_backend/services/sendgrid"
	"github.com/speakerdesk/sd_backend/utils"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		v1.NewAPIV1Router,
		authorization.NewVerifier,
		mongo.NewMongoUserService,
		mongo.NewMongoTeamService,
		mongo.NewMongoEventService,
		mongo.NewMongoSessionService,
		sendgrid.NewSendgridEmailService,
		repositories.NewUserRepository,
		repositories.NewTeamRepository,
		repositories.NewEventRepository,
		repositories.NewSessionRepository,
		utils.NewDatabase,
		utils.NewSendgridClient,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
