package utils

import (
	"github.com/sendgrid/sendgrid-go"
	"github.com/speakerdesk/sd_backend/environment"
)

func NewSendgridClient(env *environment.Env) *sendgrid.Client {
	return sendgrid.NewSendClient(env.Get(environment.SendgridAPIKey))
}
