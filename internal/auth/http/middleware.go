package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/mailadmin/internal/auth/usecase"
	"github.com/allisson/mailadmin/internal/httputil"
)

// AuthenticationMiddleware resolves the bearer token of the inbound request to
// an Identity and stores it in the request context.
//
// Resolution is the mandatory gate in front of every domain-scoped operation:
// a missing credential fails with the no-token error, an unknown one with the
// bad-token error, and in both cases the request never reaches a handler.
// Handlers retrieve the Identity via GetIdentity and pass it onward as an
// explicit argument; nothing below this middleware reads ambient auth state.
func AuthenticationMiddleware(
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))

		// Resolve handles the empty-token case itself so the "no token at
		// all" failure kind comes from one place.
		identity, err := tokenUseCase.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.Int64("user_id", identity.UserID),
			slog.String("username", identity.Username),
		)

		c.Next()
	}
}

// extractBearerToken pulls the token out of an "Authorization: Bearer <token>"
// header. The scheme keyword is matched case-insensitively; anything malformed
// yields the empty string, which the token authority reports as a missing
// credential.
func extractBearerToken(header string) string {
	const bearerPrefix = "bearer "
	if len(header) < len(bearerPrefix) ||
		!strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
