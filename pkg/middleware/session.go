package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agriportal/entities"
	"agriportal/pkg/auth/session"
)

const actorKey = "actor"

// Session decodes the auth cookie into an Actor on the context. Requests
// without a valid cookie pass through unauthenticated; gating happens in
// RequireSession.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ck, err := c.Cookie(session.CookieName); err == nil && ck.Value != "" {
				if actor, err := session.Parse(ck.Value, secret); err == nil {
					c.Set(actorKey, *actor)
				}
			}
			return next(c)
		}
	}
}

// RequireSession rejects unauthenticated requests.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := ActorFrom(c); !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "requires login"})
			}
			return next(c)
		}
	}
}

// ActorFrom reads the Actor the session middleware placed on the context.
func ActorFrom(c echo.Context) (entities.Actor, bool) {
	actor, ok := c.Get(actorKey).(entities.Actor)
	return actor, ok
}
