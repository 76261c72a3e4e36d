package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ginmongo/utils"
)

// HealthHandler reports liveness plus the monitor's latest snapshot.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if monitor == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := monitor.GetHealthStatus()
		state := "ok"
		if !status.Healthy() {
			state = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{"status": state, "dependencies": status})
	}
}
