package api

import (
	"net/http"

	"book-manager/internal/infra/kvs"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	pool *pgxpool.Pool
	kvs  *kvs.Client
}

func NewHealthHandler(pool *pgxpool.Pool, kvsClient *kvs.Client) *HealthHandler {
	return &HealthHandler{pool: pool, kvs: kvsClient}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// @Summary Database health check
// @Description Check database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/db [get]
func (h *HealthHandler) CheckDB(c *gin.Context) {
	if err := h.pool.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "ng", "message": "Database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Redis health check
// @Description Check session store connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/redis [get]
func (h *HealthHandler) CheckRedis(c *gin.Context) {
	if err := h.kvs.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "ng", "message": "Redis unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
