package services

import (
	"context"

	"github.com/speakerdesk/sd_backend/entities"
)

// MemberView is a membership record enriched with display data from
// the user directory
type MemberView struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Email     string `json:"email,omitempty"`
	Status    string `json:"status"`
}

// TeamService is the service for interactions with the teams collection.
// Membership-changing operations require the acting user to hold the
// Owner role; all operations require the acting user to be a member.
type TeamService interface {
	CreateTeam(ctx context.Context, name, creatorAuthID string) (*entities.Team, error)

	GetTeamWithID(ctx context.Context, id string) (*entities.Team, error)
	GetTeamWithURL(ctx context.Context, url string) (*entities.Team, error)
	GetTeamsWithMemberID(ctx context.Context, authID string) ([]entities.Team, error)
	GetTeamsWithCreatorID(ctx context.Context, authID string) ([]entities.Team, error)

	DeleteTeamWithID(ctx context.Context, id, actingAuthID string) error

	GetTeamMembers(ctx context.Context, teamID, actingAuthID string) ([]MemberView, error)
	AddTeamMember(ctx context.Context, teamID, actingAuthID, targetAuthID, role string) (*MemberView, error)
	InviteMemberByEmail(ctx context.Context, teamID, actingAuthID, email string) (*MemberView, error)
	UpdateTeamMemberRole(ctx context.Context, teamID, actingAuthID, targetAuthID, newRole string) (*MemberView, error)
	RemoveTeamMember(ctx context.Context, teamID, actingAuthID, targetAuthID string) (bool, error)

	// invite reconciliation primitives, called when a new account
	// registers with an email that has pending invites
	GetTeamsWithPendingInvite(ctx context.Context, email string) ([]entities.Team, error)
	ReconcileInvites(ctx context.Context, email, authID string) error
}
