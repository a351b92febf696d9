package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/speakerdesk/sd_backend/routers/api/models"
	"github.com/speakerdesk/sd_backend/services"
	"go.uber.org/zap"
)

// POST: /api/v1/teams
// x-www-form-urlencoded
// Request:  name string
// Response: team entities.Team
// Headers:  Authorization -> token
func (r *apiV1Router) CreateTeam(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	teamName := ctx.PostForm("name")
	if len(teamName) == 0 {
		r.logger.Debug("team name not provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "team name must be provided")
		return
	}

	team, err := r.teamService.CreateTeam(ctx, teamName, identity.AuthID)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid user id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid user id")
		case services.ErrURLTaken:
			r.logger.Debug("team url taken", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "a team with a similar name already exists")
		default:
			r.logger.Error("could not create team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, createTeamRes{
		Team: *team,
	})
}

// GET: /api/v1/teams
// Response: teams []entities.Team
// Headers:  Authorization -> token
//
// Returns the teams the caller is a member of.
func (r *apiV1Router) GetTeams(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	teams, err := r.teamService.GetTeamsWithMemberID(ctx, identity.AuthID)
	if err != nil {
		r.logger.Error("could not fetch teams", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.JSON(http.StatusOK, getTeamsRes{
		Teams: teams,
	})
}

// GET: /api/v1/teams/:id
// Response: team entities.Team
// Headers:  Authorization -> token
func (r *apiV1Router) GetTeam(ctx *gin.Context) {
	team, err := r.teamService.GetTeamWithID(ctx, ctx.Param("id"))
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		default:
			r.logger.Error("could not fetch team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getTeamRes{
		Team: *team,
	})
}

// DELETE: /api/v1/teams/:id
// Headers:  Authorization -> token
func (r *apiV1Router) DeleteTeam(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	err := r.teamService.DeleteTeamWithID(ctx, ctx.Param("id"), identity.AuthID)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		case services.ErrAccessDenied:
			r.logger.Debug("user is not a member of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "you are not a member of this team")
		case services.ErrNotAnOwner:
			r.logger.Debug("user is not an owner of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "Only Owners can delete a team")
		default:
			r.logger.Error("could not delete team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.Status(http.StatusOK)
}

// GET: /api/v1/teams/:id/members
// Response: members []services.MemberView
// Headers:  Authorization -> token
func (r *apiV1Router) GetTeamMembers(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	members, err := r.teamService.GetTeamMembers(ctx, ctx.Param("id"), identity.AuthID)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		case services.ErrAccessDenied:
			r.logger.Debug("user is not a member of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "you are not a member of this team")
		default:
			r.logger.Error("could not fetch team members", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getTeamMembersRes{
		Members: members,
	})
}

// POST: /api/v1/teams/:id/members
// x-www-form-urlencoded
// Request:  user_id string
//           role    string (optional, defaults to Member)
// Response: member services.MemberView
// Headers:  Authorization -> token
func (r *apiV1Router) AddTeamMember(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	targetID := ctx.PostForm("user_id")
	if len(targetID) == 0 {
		r.logger.Debug("target user id not provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "user_id must be provided")
		return
	}

	role := ctx.PostForm("role")
	if len(role) == 0 {
		role = r.cfg.DefaultRole
	}

	member, err := r.teamService.AddTeamMember(ctx, ctx.Param("id"), identity.AuthID, targetID, role)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		case services.ErrAccessDenied:
			r.logger.Debug("user is not a member of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "you are not a member of this team")
		case services.ErrNotAnOwner:
			r.logger.Debug("user is not an owner of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "Only Owners can add members")
		case services.ErrUserNotRegistered:
			r.logger.Debug("target user does not exist", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "User does not exist")
		case services.ErrAlreadyMember:
			r.logger.Debug("target user is already a member", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "User is already a member of this team")
		default:
			r.logger.Error("could not add team member", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, teamMemberRes{
		Member: *member,
	})
}

// POST: /api/v1/teams/:id/members/invite
// x-www-form-urlencoded
// Request:  email string
// Response: member services.MemberView
// Headers:  Authorization -> token
func (r *apiV1Router) InviteTeamMember(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	email := ctx.PostForm("email")
	if len(email) == 0 {
		r.logger.Debug("email not provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "email must be provided")
		return
	}

	member, err := r.teamService.InviteMemberByEmail(ctx, ctx.Param("id"), identity.AuthID, email)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		case services.ErrAccessDenied:
			r.logger.Debug("user is not a member of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "you are not a member of this team")
		case services.ErrNotAnOwner:
			r.logger.Debug("user is not an owner of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "Only Owners can invite members")
		case services.ErrAlreadyMember:
			r.logger.Debug("target user is already a member", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "User is already a member of this team")
		default:
			r.logger.Error("could not invite team member", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, teamMemberRes{
		Member: *member,
	})
}

// PUT: /api/v1/teams/:id/members/:userId/role
// x-www-form-urlencoded
// Request:  role string
// Response: member services.MemberView
// Headers:  Authorization -> token
func (r *apiV1Router) UpdateTeamMemberRole(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	newRole := ctx.PostForm("role")
	if len(newRole) == 0 {
		r.logger.Debug("role not provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "role must be provided")
		return
	}

	member, err := r.teamService.UpdateTeamMemberRole(ctx, ctx.Param("id"), identity.AuthID, ctx.Param("userId"), newRole)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team or member not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusNotFound, "team or member not found")
		case services.ErrAccessDenied:
			r.logger.Debug("user is not a member of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "you are not a member of this team")
		case services.ErrNotAnOwner:
			r.logger.Debug("user is not an owner of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "Only Owners can change member roles")
		case services.ErrSelfRoleChange:
			r.logger.Debug("user attempted to change their own role")
			models.SendAPIError(ctx, http.StatusBadRequest, "You cannot change your own role")
		case services.ErrLastOwnerDemotion:
			r.logger.Debug("attempted to demote the last owner")
			models.SendAPIError(ctx, http.StatusBadRequest, "Cannot demote the last Owner. Promote another member to Owner first.")
		default:
			r.logger.Error("could not update member role", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, teamMemberRes{
		Member: *member,
	})
}

// DELETE: /api/v1/teams/:id/members/:userId
// Response: removed bool
// Headers:  Authorization -> token
func (r *apiV1Router) RemoveTeamMember(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	removed, err := r.teamService.RemoveTeamMember(ctx, ctx.Param("id"), identity.AuthID, ctx.Param("userId"))
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid team id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid team id")
		case services.ErrNotFound:
			r.logger.Debug("team not found", zap.Error(err))
			models.SendAPIError(ctx, http.StatusNotFound, "team not found")
		case services.ErrAccessDenied:
			r.logger.Debug("user is not a member of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "you are not a member of this team")
		case services.ErrNotAnOwner:
			r.logger.Debug("user is not an owner of the team", zap.Error(err))
			models.SendAPIError(ctx, http.StatusForbidden, "Only Owners can remove members")
		case services.ErrOwnerRemoval:
			r.logger.Debug("attempted to remove an owner")
			models.SendAPIError(ctx, http.StatusBadRequest, "Cannot remove an Owner. Change their role to Member first.")
		default:
			r.logger.Error("could not remove team member", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, removeTeamMemberRes{
		Removed: removed,
	})
}
