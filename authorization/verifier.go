package authorization

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/speakerdesk/sd_backend/authorization/resources"
	"github.com/speakerdesk/sd_backend/environment"
)

// ErrInvalidToken is returned when the bearer token cannot be verified
var ErrInvalidToken = errors.New("token is invalid")

var jwtSigningMethod = jwt.SigningMethodHS256

const identityKeyInCtx = "sd_auth_identity"

// Identity is the verified subject extracted from a bearer token
type Identity struct {
	AuthID    string
	Name      string
	Email     string
	AvatarURL string
}

type identityClaims struct {
	jwt.StandardClaims
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// Verifier validates bearer tokens issued by the identity provider and
// yields the verified subject
type Verifier interface {
	// VerifyToken validates the given token and returns the identity it
	// asserts. Returns ErrInvalidToken when verification fails.
	VerifyToken(token string) (*Identity, error)
	// WithAuthMiddleware wraps handler with bearer-token verification,
	// attaching the verified identity to the request context
	WithAuthMiddleware(router resources.RouterResource, handler gin.HandlerFunc) gin.HandlerFunc
}

func NewVerifier(env *environment.Env) Verifier {
	return &verifier{
		env: env,
	}
}

type verifier struct {
	env *environment.Env
}

func (v *verifier) VerifyToken(token string) (*Identity, error) {
	if len(token) == 0 {
		return nil, ErrInvalidToken
	}

	var claims identityClaims
	parsedToken, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwtSigningMethod {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(v.env.Get(environment.AuthTokenSecret)), nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !parsedToken.Valid || len(claims.Subject) == 0 {
		return nil, ErrInvalidToken
	}

	return &Identity{
		AuthID:    claims.Subject,
		Name:      claims.Name,
		Email:     claims.Email,
		AvatarURL: claims.Picture,
	}, nil
}

func (v *verifier) WithAuthMiddleware(router resources.RouterResource, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, err := v.VerifyToken(router.GetAuthToken(ctx))
		if err != nil {
			router.HandleUnauthorized(ctx)
			return
		}

		ctx.Set(identityKeyInCtx, identity)
		handler(ctx)
	}
}

// IdentityFromCtx returns the identity attached by WithAuthMiddleware,
// or nil when the request was not authenticated
func IdentityFromCtx(ctx *gin.Context) *Identity {
	identityEncoded, exists := ctx.Get(identityKeyInCtx)
	if !exists {
		return nil
	}
	identity, ok := identityEncoded.(*Identity)
	if !ok {
		return nil
	}
	return identity
}

// SetIdentityInCtx attaches an identity to the context. Used by tests
// to simulate an authenticated request.
func SetIdentityInCtx(ctx *gin.Context, identity *Identity) {
	ctx.Set(identityKeyInCtx, identity)
}
