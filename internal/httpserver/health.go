package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"review-srv/config"
	"review-srv/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Review search and analytics API"
	HealthVersion = "1.0.0"
	ServiceName   = "review-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Report service identity and the search engine it talks to
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	engine := gin.H{"driver": srv.config.SearchEngine.Driver, "index": srv.config.SearchEngine.Index}
	if srv.config.SearchEngine.Driver == config.DriverElasticsearch {
		info, err := srv.es.Info(c.Request.Context())
		if err != nil {
			engine["status"] = "unreachable"
		} else {
			engine["status"] = "reachable"
			engine["cluster"] = info.ClusterName
			engine["version"] = info.Version.Number
		}
	}

	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"engine":  engine,
	})
}

// readyCheck handles readiness check requests (search engine + Redis).
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if srv.es != nil {
		if err := srv.es.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Search engine connection failed",
				"error":   err.Error(),
			})
			return
		}
	}
	redisStatus := "disabled"
	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Redis connection failed",
				"error":   err.Error(),
			})
			return
		}
		redisStatus = "connected"
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"engine":  "connected",
		"redis":   redisStatus,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
