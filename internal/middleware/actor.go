package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorIDKey = contextKey("actorID")

// AnonymousActorID is recorded in audit fields when no identity is
// attached to the request.
const AnonymousActorID = "anonymous"

// ActorMiddleware creates a Gin middleware handler that extracts the acting
// user's id from an optional JWT bearer token. Requests without a token (or
// with an invalid one) proceed as anonymous; the actor id only feeds audit
// fields, it never gates an operation.
func ActorMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		actorID := AnonymousActorID
		if subject, err := bearerSubject(c.GetHeader("Authorization"), jwtSecret); err == nil && subject != "" {
			actorID = subject
		} else if err != nil && !errors.Is(err, errNoBearer) {
			logger.Warn("Ignoring invalid bearer token", slog.String("error", err.Error()))
		}

		ctx := context.WithValue(c.Request.Context(), actorIDKey, actorID)
		if actorID != AnonymousActorID {
			enriched := logger.With(slog.String("actor_id", actorID))
			ctx = context.WithValue(ctx, loggerCtxKey, enriched)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

var errNoBearer = errors.New("no bearer token")

func bearerSubject(authHeader, jwtSecret string) (string, error) {
	if authHeader == "" {
		return "", errNoBearer
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errNoBearer
	}

	token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}

// GetActorIDFromCtx retrieves the acting user's id from the context,
// falling back to the anonymous actor.
func GetActorIDFromCtx(ctx context.Context) string {
	actorID, ok := ctx.Value(actorIDKey).(string)
	if !ok || actorID == "" {
		return AnonymousActorID
	}
	return actorID
}
