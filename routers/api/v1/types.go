package v1

import (
	"github.com/speakerdesk/sd_backend/entities"
	"github.com/speakerdesk/sd_backend/services"
)

type getUsersRes struct {
	Users []entities.User `json:"users"`
}

type getUserRes struct {
	User entities.User `json:"user"`
}

type createTeamRes struct {
	Team entities.Team `json:"team"`
}

type getTeamsRes struct {
	Teams []entities.Team `json:"teams"`
}

type getTeamRes struct {
	Team entities.Team `json:"team"`
}

type getTeamMembersRes struct {
	Members []services.MemberView `json:"members"`
}

type teamMemberRes struct {
	Member services.MemberView `json:"member"`
}

type removeTeamMemberRes struct {
	Removed bool `json:"removed"`
}

type createEventRes struct {
	Event entities.Event `json:"event"`
}

type getEventsRes struct {
	Events []entities.Event `json:"events"`
}

type getEventRes struct {
	Event entities.Event `json:"event"`
}

type createSessionRes struct {
	Session entities.Session `json:"session"`
}

type getSessionsRes struct {
	Sessions []entities.Session `json:"sessions"`
}

type getSessionRes struct {
	Session entities.Session `json:"session"`
}

type importSessionsRes struct {
	Sessions []entities.Session `json:"sessions"`
}

// Team and user endpoints read x-www-form-urlencoded fields straight
// off the request; event and session endpoints bind the JSON request
// types below.
type createEventReq struct {
	Name        string `json:"name" binding:"required"`
	URL         string `json:"url"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type updateEventReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

type sessionReq struct {
	Title           string   `json:"title" binding:"required"`
	Abstract        string   `json:"abstract"`
	Speakers        []string `json:"speakers"`
	Format          string   `json:"format"`
	Level           string   `json:"level"`
	DurationMinutes int      `json:"duration_minutes"`
	Status          string   `json:"status"`
}

type updateSessionReq struct {
	Title           *string   `json:"title"`
	Abstract        *string   `json:"abstract"`
	Speakers        *[]string `json:"speakers"`
	Format          *string   `json:"format"`
	Level           *string   `json:"level"`
	DurationMinutes *int      `json:"duration_minutes"`
	Status          *string   `json:"status"`
}
