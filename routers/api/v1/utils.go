package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/speakerdesk/sd_backend/authorization"
	"github.com/speakerdesk/sd_backend/routers/api/models"
)

// identityFromCtx returns the identity attached by the auth middleware.
// Aborts with a 500 when the identity is missing, which means a route
// was registered without the middleware.
func (r *apiV1Router) identityFromCtx(ctx *gin.Context) *authorization.Identity {
	identity := authorization.IdentityFromCtx(ctx)
	if identity == nil {
		r.logger.Error("request context has no verified identity")
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return nil
	}
	return identity
}
