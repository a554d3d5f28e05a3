package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopcore/user-orders-api/pkg/response"
)

// HealthModule exposes a liveness probe under /api/health.
type HealthModule struct{}

func NewHealthModule() *HealthModule {
	return &HealthModule{}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		response.OK(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
	})
}
