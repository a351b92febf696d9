package resources

import "github.com/gin-gonic/gin"

// RouterResource is a resource interface for API routers
type RouterResource interface {
	// GetAuthToken extracts the authorization token from given request
	GetAuthToken(ctx *gin.Context) string
	// HandleUnauthorized handles an unauthorized request
	HandleUnauthorized(ctx *gin.Context)
}
