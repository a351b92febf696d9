package services

import (
	"github.com/speakerdesk/sd_backend/entities"
)

// EmailService is the service for sending emails
type EmailService interface {
	SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error
	// SendTeamInviteEmail notifies recipientEmail that they have been
	// invited to join team by inviterName
	SendTeamInviteEmail(team entities.Team, inviterName, recipientEmail string) error
}
