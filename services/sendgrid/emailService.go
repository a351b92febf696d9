package sendgrid

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/speakerdesk/sd_backend/utils"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/speakerdesk/sd_backend/config"
	"github.com/speakerdesk/sd_backend/entities"
	"github.com/speakerdesk/sd_backend/services"
	"go.uber.org/zap"
)

var teamInviteEmailTemplatePath = "templates/emails/teamInvite_email.gohtml"

const teamInviteEmailSubjTemplate = "You have been invited to join %s"

type sendgridEmailService struct {
	*sendgrid.Client
	logger *zap.Logger
	cfg    *config.AppConfig

	teamInviteEmailTemplate *template.Template
}

type inviteEmailDataModel struct {
	TeamName    string
	InviterName string
	Link        string
	SenderName  string
}

// NewSendgridEmailService creates a new EmailService that uses Sendgrid to deliver emails
func NewSendgridEmailService(logger *zap.Logger, cfg *config.AppConfig, client *sendgrid.Client) (services.EmailService, error) {
	teamInviteEmailTemplate, err := utils.LoadTemplate("team invite", teamInviteEmailTemplatePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not load team invite template")
	}

	return &sendgridEmailService{
		Client:                  client,
		logger:                  logger,
		cfg:                     cfg,
		teamInviteEmailTemplate: teamInviteEmailTemplate,
	}, nil
}

func (s *sendgridEmailService) SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error {
	from := mail.NewEmail(senderName, senderEmail)
	to := mail.NewEmail(recipientName, recipientEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)
	response, err := s.Send(message)

	if err != nil {
		s.logger.Error("could not issue email request",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.String("sender", senderEmail),
			zap.Error(err))
		return errors.Wrap(err, "could not send email request to SendGrid")
	}

	if response.StatusCode != http.StatusAccepted {
		s.logger.Error("email request was rejected by Sendgrid",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.String("sender", senderEmail),
			zap.Int("response status code", response.StatusCode),
			zap.String("response body", response.Body))
		return services.ErrSendgridRejectedRequest
	}

	s.logger.Info("email request sent successfully",
		zap.String("subject", subject),
		zap.String("recipient", recipientEmail),
		zap.String("sender", senderEmail))
	return nil
}

func (s *sendgridEmailService) SendTeamInviteEmail(team entities.Team, inviterName, recipientEmail string) error {
	inviteURL := fmt.Sprintf("http://%s/teams/%s/join", s.cfg.AppURL, team.URL)

	var contentBuff bytes.Buffer
	err := s.teamInviteEmailTemplate.Execute(&contentBuff, inviteEmailDataModel{
		TeamName:    team.Name,
		InviterName: inviterName,
		Link:        inviteURL,
		SenderName:  s.cfg.Email.NoreplyEmailName,
	})
	if err != nil {
		return errors.Wrap(err, "could not construct email")
	}

	return s.SendEmail(
		fmt.Sprintf(teamInviteEmailSubjTemplate, team.Name),
		contentBuff.String(),
		contentBuff.String(),
		s.cfg.Email.NoreplyEmailName,
		s.cfg.Email.NoreplyEmailAddr,
		recipientEmail,
		recipientEmail)
}
