package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ginmongo/app"
	"ginmongo/handlers"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r gin.IRouter, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterDateRoutes registers the date utility endpoints.
func RegisterDateRoutes(r gin.IRouter, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dates")
	{
		api.GET("/now", hb.NowHandler)
		api.GET("/normalize", hb.NormalizeHandler)
		api.POST("/normalize", hb.NormalizeBatchHandler)
		api.GET("/days-since", hb.DaysSinceHandler)
		api.GET("/weekday", hb.WeekdayHandler)
		api.POST("/weekdays", hb.WeekdaysHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(a *app.App, hb *handlers.HandlerBundle, allowOrigins []string) error {
	if err := app.RegisterValidators(); err != nil {
		return err
	}
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	a.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: !containsWildcard(allowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(a, hb)
	RegisterDateRoutes(a, hb)
	return nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
