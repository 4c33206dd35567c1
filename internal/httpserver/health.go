package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Smap API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "insight-srv"
)

var errRabbitMQNotReady = errors.New("rabbitmq connection not ready")

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// dependency is one backing service the API needs before it takes traffic.
type dependency struct {
	name  string
	check func(ctx context.Context) error
}

func (srv *HTTPServer) readinessChecks() []dependency {
	return []dependency{
		{name: "database", check: srv.postgresDB.PingContext},
		{name: "redis", check: srv.redisClient.Ping},
		{name: "minio", check: srv.minioClient.HealthCheck},
		{name: "kafka", check: func(context.Context) error { return srv.kafkaProducer.HealthCheck() }},
		{name: "rabbitmq", check: func(context.Context) error {
			if !srv.rabbitConn.IsReady() {
				return errRabbitMQNotReady
			}
			return nil
		}},
	}
}

// readyCheck handles readiness check requests for every backing service.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	body := gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
	for _, dep := range srv.readiness {
		if err := dep.check(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": fmt.Sprintf("%s connection failed", dep.name),
				"error":   err.Error(),
			})
			return
		}
		body[dep.name] = "connected"
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
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
