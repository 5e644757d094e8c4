// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripper/internal/http/handlers"
	"tripper/internal/http/middleware"
	"tripper/internal/modules/planner"
	"tripper/internal/modules/share"
)

// NewRouter wires middleware and handlers into a gin engine.
// corsOrigin "*" allows any origin; anything else is an exact allow-list entry.
func NewRouter(plannerSvc *planner.Service, shareSvc *share.Service, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())

	corsCfg := cors.DefaultConfig()
	if corsOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{corsOrigin}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	tripHandler := handlers.NewTripHandler(plannerSvc)
	r.POST("/api/generate", tripHandler.Generate)

	shareHandler := handlers.NewShareHandler(shareSvc)
	r.POST("/api/share", shareHandler.Create)
	r.GET("/api/share/:id", shareHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
