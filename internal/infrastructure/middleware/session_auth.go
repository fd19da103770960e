package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/photostrip-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
)

const (
	SessionIDKey = "session_id"
	BearerPrefix = "Bearer "
	// TokenQueryParam carries the token for WebSocket upgrades, where
	// browsers cannot set headers.
	TokenQueryParam = "token"
)

type SessionAuth struct {
	jwtSvc *auth.JWTService
}

func NewSessionAuth(jwtSvc *auth.JWTService) *SessionAuth {
	return &SessionAuth{jwtSvc: jwtSvc}
}

// RequireSession admits a request only when its token was issued for the
// session named by the :id path parameter.
func (m *SessionAuth) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "session token required")
			c.Abort()
			return
		}

		sessionID, err := m.jwtSvc.ValidateSessionToken(token)
		if err != nil {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token")
			c.Abort()
			return
		}

		if sessionID.String() != c.Param("id") {
			httputil.ErrorWithCode(c, http.StatusForbidden, "FORBIDDEN", "token does not grant access to this session")
			c.Abort()
			return
		}

		c.Set(SessionIDKey, sessionID.String())
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		if !strings.HasPrefix(header, BearerPrefix) {
			return "", false
		}
		return strings.TrimPrefix(header, BearerPrefix), true
	}

	if token := c.Query(TokenQueryParam); token != "" {
		return token, true
	}

	return "", false
}
