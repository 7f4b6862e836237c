package controller

import (
	"context"
	"net/http"
	"time"

	"exam_client/internal/util"

	"github.com/gin-gonic/gin"
)

// Pinger 后端连通性检查
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Backend Pinger
}

func NewHealthController(backend Pinger) *HealthController {
	return &HealthController{Backend: backend}
}

// @Summary 健康检查
// @Description 检查服务状态以及后端是否可达
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	if err := c.Backend.Ping(pingCtx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "Backend unavailable",
			Data: gin.H{
				"status":     "degraded",
				"components": gin.H{"backend": "down"},
			},
		})
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"backend": "up",
		},
	})
}
