// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"ginmongo/app"
	"ginmongo/utils"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	HealthHandler gin.HandlerFunc

	// Date endpoints
	NowHandler            gin.HandlerFunc
	NormalizeHandler      gin.HandlerFunc
	NormalizeBatchHandler gin.HandlerFunc
	DaysSinceHandler      gin.HandlerFunc
	WeekdayHandler        gin.HandlerFunc
	WeekdaysHandler       gin.HandlerFunc
}

// NewHandlerBundle wires every handler. monitor may be nil.
func NewHandlerBundle(monitor *utils.HealthMonitor) *HandlerBundle {
	return &HandlerBundle{
		HealthHandler: HealthHandler(monitor),

		NowHandler:            app.Handle(NowHandler),
		NormalizeHandler:      app.Handle(NormalizeHandler),
		NormalizeBatchHandler: app.Handle(NormalizeBatchHandler),
		DaysSinceHandler:      app.Handle(DaysSinceHandler),
		WeekdayHandler:        app.Handle(WeekdayHandler),
		WeekdaysHandler:       app.Handle(WeekdaysHandler),
	}
}
