package httputil

import (
	"github.com/gin-gonic/gin"
)

// ActorKey is the gin context key under which the authentication middleware
// stores the acting administrator's name.
const ActorKey = "actor"

// ActorFromGin returns the authenticated administrator's name from the gin
// context. Falls back to "unknown" when no middleware has set one, which only
// happens on misconfigured routes.
func ActorFromGin(c *gin.Context) string {
	if value, ok := c.Get(ActorKey); ok {
		if actor, ok := value.(string); ok && actor != "" {
			return actor
		}
	}
	return "unknown"
}
