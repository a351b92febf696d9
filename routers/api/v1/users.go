package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/speakerdesk/sd_backend/routers/api/models"
	"github.com/speakerdesk/sd_backend/services"
	"go.uber.org/zap"
)

// POST: /api/v1/users/sync
// Response: user entities.User
// Headers:  Authorization -> token
//
// Creates or refreshes the caller's profile from the verified identity,
// then claims any team invites pending on the identity's email.
func (r *apiV1Router) SyncUser(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	user, err := r.userService.SyncUser(ctx, identity.AuthID, identity.Name, identity.Email, identity.AvatarURL)
	if err != nil {
		r.logger.Error("could not sync user", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	if len(identity.Email) > 0 {
		err = r.teamService.ReconcileInvites(ctx, identity.Email, identity.AuthID)
		if err != nil {
			r.logger.Error("could not reconcile pending invites",
				zap.String("user", identity.AuthID), zap.Error(err))
		}
	}

	ctx.JSON(http.StatusOK, getUserRes{
		User: *user,
	})
}

// GET: /api/v1/users
// Response: users []entities.User
// Headers:  Authorization -> token
func (r *apiV1Router) GetUsers(ctx *gin.Context) {
	users, err := r.userService.GetUsers(ctx)
	if err != nil {
		r.logger.Error("could not fetch users", zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.JSON(http.StatusOK, getUsersRes{
		Users: users,
	})
}

// GET: /api/v1/users/me
// Response: user entities.User
// Headers:  Authorization -> token
func (r *apiV1Router) GetMe(ctx *gin.Context) {
	identity := r.identityFromCtx(ctx)
	if identity == nil {
		return
	}

	r.getUser(ctx, identity.AuthID)
}

// GET: /api/v1/users/:id
// Response: user entities.User
// Headers:  Authorization -> token
func (r *apiV1Router) GetUser(ctx *gin.Context) {
	userID := ctx.Param("id")
	if len(userID) == 0 {
		r.logger.Debug("user id not provided")
		models.SendAPIError(ctx, http.StatusBadRequest, "user id must be provided")
		return
	}

	r.getUser(ctx, userID)
}

func (r *apiV1Router) getUser(ctx *gin.Context, authID string) {
	user, err := r.userService.GetUserWithAuthID(ctx, authID)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrInvalidID:
			r.logger.Debug("invalid user id", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, "invalid user id")
		case services.ErrNotFound:
			r.logger.Debug("user not found", zap.String("id", authID))
			models.SendAPIError(ctx, http.StatusNotFound, "user not found")
		default:
			r.logger.Error("could not fetch user", zap.Error(err))
			models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	ctx.JSON(http.StatusOK, getUserRes{
		User: *user,
	})
}
