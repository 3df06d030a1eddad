package middleware

import (
	"net/http"

	"barberia_backend/internal/auth"
	"barberia_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the HTTP-only cookie carrying the session token.
const TokenCookie = "token"

// identityKey is the gin context key holding the verified *auth.Claims.
const identityKey = "identity"

// AccessGate authenticates and authorizes every request to a protected
// path. It is stateless, touches no storage, and decides purely from the
// token's claims and the static route policy:
//
//   - no cookie            -> redirect to /login
//   - invalid/expired token -> redirect to /login
//   - valid token, role not allowed for the path -> redirect to /
//   - valid token targeting /dashboard exactly   -> forward by role
//
// An authorized-but-wrong-role request never goes back to /login: the
// credential itself is valid, re-prompting for it would be wrong.
func AccessGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		path := c.Request.URL.Path

		tokenStr, err := c.Cookie(TokenCookie)
		if err != nil || tokenStr == "" {
			logger.CtxDebug(ctx, "access gate: no token", "path", path)
			redirect(c, "/login")
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			logger.CtxWarn(ctx, "access gate: invalid token", "path", path)
			redirect(c, "/login")
			return
		}

		// Routing convenience, not a security boundary: the generic
		// dashboard entry forwards to the role-specific area. It runs
		// before the role check because it never denies.
		if path == "/dashboard" || path == "/dashboard/" {
			redirect(c, auth.HomePath(claims.Role))
			return
		}

		if !auth.Authorize(path, claims.Role) {
			logger.CtxInfo(ctx, "access gate: insufficient role",
				"path", path, "role", string(claims.Role))
			redirect(c, "/")
			return
		}

		// Identity is resolved once per request; handlers read it from
		// the context instead of re-decoding the token.
		c.Set(identityKey, claims)
		c.Next()
	}
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}

// CurrentUser returns the claims stored by AccessGate.
func CurrentUser(c *gin.Context) (*auth.Claims, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*auth.Claims)
	return claims, ok
}
