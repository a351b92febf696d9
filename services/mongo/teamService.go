package mongo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/speakerdesk/sd_backend/entities"
	"github.com/speakerdesk/sd_backend/environment"
	"github.com/speakerdesk/sd_backend/repositories"
	"github.com/speakerdesk/sd_backend/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const invitedIDPrefix = "invited_"

type mongoTeamService struct {
	logger         *zap.Logger
	env            *environment.Env
	teamRepository *repositories.TeamRepository
	userService    services.UserService
	emailService   services.EmailService
}

// NewMongoTeamService creates a new TeamService that uses MongoDB as the storage technology
func NewMongoTeamService(logger *zap.Logger, env *environment.Env, teamRepository *repositories.TeamRepository,
	userService services.UserService, emailService services.EmailService) services.TeamService {
	return &mongoTeamService{
		logger:         logger,
		env:            env,
		teamRepository: teamRepository,
		userService:    userService,
		emailService:   emailService,
	}
}

func (s *mongoTeamService) CreateTeam(ctx context.Context, name, creatorAuthID string) (*entities.Team, error) {
	if len(creatorAuthID) == 0 {
		return nil, services.ErrInvalidID
	}

	creator := entities.TeamMember{
		UserID:    creatorAuthID,
		Role:      entities.RoleOwner,
		Status:    entities.MemberStatusActive,
		IsCreator: true,
	}
	if user, err := s.userService.GetUserWithAuthID(ctx, creatorAuthID); err == nil {
		creator.Email = user.Email
	}

	team := &entities.Team{
		ID:           primitive.NewObjectID(),
		Name:         name,
		URL:          slugify(name),
		UserCreateID: creatorAuthID,
	}
	team.UpsertMember(creator)

	_, err := s.teamRepository.InsertOne(ctx, *team)
	if mongo.IsDuplicateKeyError(err) {
		return nil, services.ErrURLTaken
	} else if err != nil {
		return nil, errors.Wrap(err, "could not create team")
	}

	return team, nil
}

func (s *mongoTeamService) GetTeamWithID(ctx context.Context, id string) (*entities.Team, error) {
	mongoID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrInvalidID
	}

	res := s.teamRepository.FindOne(ctx, bson.M{
		string(entities.TeamID): mongoID,
	})

	team, err := decodeTeamResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for team with ID")
	}

	return team, nil
}

func (s *mongoTeamService) GetTeamWithURL(ctx context.Context, url string) (*entities.Team, error) {
	res := s.teamRepository.FindOne(ctx, bson.M{
		string(entities.TeamURL): url,
	})

	team, err := decodeTeamResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for team with URL")
	}

	return team, nil
}

func (s *mongoTeamService) GetTeamsWithMemberID(ctx context.Context, authID string) ([]entities.Team, error) {
	// equality match on an array field is an array-contains query
	cur, err := s.teamRepository.Find(ctx, bson.M{
		string(entities.TeamMemberIDs): authID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for teams with member")
	}
	defer cur.Close(ctx)

	return decodeTeamsResult(ctx, cur)
}

func (s *mongoTeamService) GetTeamsWithCreatorID(ctx context.Context, authID string) ([]entities.Team, error) {
	cur, err := s.teamRepository.Find(ctx, bson.M{
		string(entities.TeamUserCreateID): authID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for teams with creator")
	}
	defer cur.Close(ctx)

	return decodeTeamsResult(ctx, cur)
}

func (s *mongoTeamService) DeleteTeamWithID(ctx context.Context, id, actingAuthID string) error {
	team, err := s.loadTeamForMember(ctx, id, actingAuthID)
	if err != nil {
		return err
	}
	if err := requireOwner(team, actingAuthID); err != nil {
		return err
	}

	_, err = s.teamRepository.DeleteOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	})
	if err != nil {
		return errors.Wrap(err, "could not delete team")
	}

	return nil
}

func (s *mongoTeamService) GetTeamMembers(ctx context.Context, teamID, actingAuthID string) ([]services.MemberView, error) {
	team, err := s.loadTeamForMember(ctx, teamID, actingAuthID)
	if err != nil {
		return nil, err
	}

	views := make([]services.MemberView, 0, len(team.Members))
	for _, member := range team.Members {
		views = append(views, s.memberView(ctx, member))
	}

	return views, nil
}

func (s *mongoTeamService) AddTeamMember(ctx context.Context, teamID, actingAuthID, targetAuthID, role string) (*services.MemberView, error) {
	team, err := s.loadTeamForMember(ctx, teamID, actingAuthID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(team, actingAuthID); err != nil {
		return nil, err
	}

	targetUser, err := s.userService.GetUserWithAuthID(ctx, targetAuthID)
	if errors.Cause(err) == services.ErrNotFound {
		return nil, services.ErrUserNotRegistered
	} else if err != nil {
		return nil, errors.Wrap(err, "could not look up target user")
	}

	if team.HasMember(targetAuthID) {
		return nil, services.ErrAlreadyMember
	}

	if len(role) == 0 {
		role = entities.RoleMember
	}

	team.UpsertMember(entities.TeamMember{
		UserID: targetAuthID,
		Role:   role,
		Email:  targetUser.Email,
		Status: entities.MemberStatusActive,
	})

	if err := s.saveTeam(ctx, team); err != nil {
		return nil, err
	}

	view := s.memberView(ctx, *team.MemberWithID(targetAuthID))
	return &view, nil
}

func (s *mongoTeamService) InviteMemberByEmail(ctx context.Context, teamID, actingAuthID, email string) (*services.MemberView, error) {
	team, err := s.loadTeamForMember(ctx, teamID, actingAuthID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(team, actingAuthID); err != nil {
		return nil, err
	}

	targetUser, err := s.userService.GetUserWithEmail(ctx, email)
	if err == nil {
		// invitee already has an account, a regular add applies
		view, err := s.AddTeamMember(ctx, teamID, actingAuthID, targetUser.AuthID, entities.RoleMember)
		if err != nil {
			return nil, err
		}
		s.sendInviteEmail(ctx, team, actingAuthID, email)
		return view, nil
	} else if errors.Cause(err) != services.ErrNotFound {
		return nil, errors.Wrap(err, "could not look up user with email")
	}

	// a repeat invite keeps the existing placeholder instead of
	// appending a second member record for the same person
	if pending := team.PendingInviteForEmail(email); pending != nil {
		s.sendInviteEmail(ctx, team, actingAuthID, email)
		view := s.memberView(ctx, *team.MemberWithID(pending.PlaceholderID))
		return &view, nil
	}

	// no account yet, record a placeholder identity to be reconciled
	// when the invitee registers with this email
	placeholderID := invitedIDPrefix + uuid.New().String()
	team.UpsertMember(entities.TeamMember{
		UserID: placeholderID,
		Role:   entities.RoleMember,
		Email:  email,
		Status: entities.MemberStatusInvited,
	})
	team.PendingInvites = append(team.PendingInvites, entities.PendingInvite{
		Email:         email,
		PlaceholderID: placeholderID,
	})

	if err := s.saveTeam(ctx, team); err != nil {
		return nil, err
	}

	s.sendInviteEmail(ctx, team, actingAuthID, email)

	return &services.MemberView{
		UserID: placeholderID,
		Role:   entities.RoleMember,
		Email:  email,
		Status: entities.MemberStatusInvited,
	}, nil
}

func (s *mongoTeamService) UpdateTeamMemberRole(ctx context.Context, teamID, actingAuthID, targetAuthID, newRole string) (*services.MemberView, error) {
	team, err := s.loadTeamForMember(ctx, teamID, actingAuthID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(team, actingAuthID); err != nil {
		return nil, err
	}

	if targetAuthID == actingAuthID {
		return nil, services.ErrSelfRoleChange
	}

	target := team.MemberWithID(targetAuthID)
	if target == nil {
		return nil, services.ErrNotFound
	}

	// promoting is always allowed; demoting must not leave the team
	// without an Owner
	if newRole != entities.RoleOwner && target.Role == entities.RoleOwner && team.OwnerCount() <= 1 {
		return nil, services.ErrLastOwnerDemotion
	}

	target.Role = newRole

	if err := s.saveTeam(ctx, team); err != nil {
		return nil, err
	}

	view := s.memberView(ctx, *target)
	return &view, nil
}

func (s *mongoTeamService) RemoveTeamMember(ctx context.Context, teamID, actingAuthID, targetAuthID string) (bool, error) {
	team, err := s.loadTeamForMember(ctx, teamID, actingAuthID)
	if err != nil {
		return false, err
	}
	if err := requireOwner(team, actingAuthID); err != nil {
		return false, err
	}

	target := team.MemberWithID(targetAuthID)
	if target == nil {
		return false, nil
	}

	// Owners must be demoted before removal, regardless of how many
	// other Owners exist
	if target.Role == entities.RoleOwner {
		return false, services.ErrOwnerRemoval
	}

	team.RemoveMember(targetAuthID)
	if len(target.Email) > 0 {
		team.RemovePendingInvite(target.Email)
	}

	if err := s.saveTeam(ctx, team); err != nil {
		return false, err
	}

	return true, nil
}

func (s *mongoTeamService) GetTeamsWithPendingInvite(ctx context.Context, email string) ([]entities.Team, error) {
	cur, err := s.teamRepository.Find(ctx, bson.M{
		fmt.Sprintf("%s.email", entities.TeamPendingInvites): email,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not query for teams with pending invite")
	}
	defer cur.Close(ctx)

	return decodeTeamsResult(ctx, cur)
}

func (s *mongoTeamService) ReconcileInvites(ctx context.Context, email, authID string) error {
	teams, err := s.GetTeamsWithPendingInvite(ctx, email)
	if err != nil {
		return err
	}

	for i := range teams {
		team := &teams[i]
		invite := team.PendingInviteForEmail(email)
		if invite == nil {
			continue
		}

		placeholder := team.MemberWithID(invite.PlaceholderID)
		if placeholder != nil {
			role := placeholder.Role
			team.RemoveMember(invite.PlaceholderID)
			team.UpsertMember(entities.TeamMember{
				UserID: authID,
				Role:   role,
				Email:  email,
				Status: entities.MemberStatusActive,
			})
		}
		team.RemovePendingInvite(email)

		if err := s.saveTeam(ctx, team); err != nil {
			return err
		}

		s.logger.Info("reconciled pending invite",
			zap.String("team", team.ID.Hex()),
			zap.String("user", authID))
	}

	return nil
}

// loadTeamForMember loads the team and checks the acting user is a
// current member. A missing team is ErrNotFound; an existing team the
// acting user does not belong to is ErrAccessDenied.
func (s *mongoTeamService) loadTeamForMember(ctx context.Context, teamID, actingAuthID string) (*entities.Team, error) {
	team, err := s.GetTeamWithID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if !team.HasMember(actingAuthID) {
		return nil, services.ErrAccessDenied
	}

	return team, nil
}

func requireOwner(team *entities.Team, actingAuthID string) error {
	member := team.MemberWithID(actingAuthID)
	if member == nil || member.Role != entities.RoleOwner {
		return services.ErrNotAnOwner
	}
	return nil
}

// saveTeam writes the whole aggregate back. There is no version check:
// concurrent writers to the same team are last-writer-wins.
func (s *mongoTeamService) saveTeam(ctx context.Context, team *entities.Team) error {
	_, err := s.teamRepository.ReplaceOne(ctx, bson.M{
		string(entities.TeamID): team.ID,
	}, *team)
	if err != nil {
		return errors.Wrap(err, "could not save team")
	}
	return nil
}

// memberView enriches a membership record with current display data
// from the user directory. Enrichment is best-effort: when the lookup
// returns nothing the stored record is returned as-is.
func (s *mongoTeamService) memberView(ctx context.Context, member entities.TeamMember) services.MemberView {
	view := services.MemberView{
		UserID: member.UserID,
		Role:   member.Role,
		Email:  member.Email,
		Status: member.Status,
	}

	user, err := s.userService.GetUserWithAuthID(ctx, member.UserID)
	if err != nil {
		if errors.Cause(err) != services.ErrNotFound {
			s.logger.Warn("could not enrich team member",
				zap.String("user", member.UserID), zap.Error(err))
		}
		return view
	}

	view.Name = user.Name
	view.AvatarURL = user.AvatarURL
	view.Email = user.Email
	return view
}

func (s *mongoTeamService) sendInviteEmail(ctx context.Context, team *entities.Team, inviterAuthID, recipientEmail string) {
	inviterName := ""
	if inviter, err := s.userService.GetUserWithAuthID(ctx, inviterAuthID); err == nil {
		inviterName = inviter.Name
	}

	// delivery failure does not fail the invite
	if err := s.emailService.SendTeamInviteEmail(*team, inviterName, recipientEmail); err != nil {
		s.logger.Warn("could not send team invite email",
			zap.String("team", team.ID.Hex()),
			zap.String("recipient", recipientEmail),
			zap.Error(err))
	}
}

func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func decodeTeamResult(res *mongo.SingleResult) (*entities.Team, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var team entities.Team
	err = res.Decode(&team)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode team")
	}

	return &team, nil
}

func decodeTeamsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Team, error) {
	var teams []entities.Team
	for cur.Next(ctx) {
		var team entities.Team
		err := cur.Decode(&team)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode team")
		}
		teams = append(teams, team)
	}

	return teams, nil
}
