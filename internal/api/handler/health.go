package handler

import (
	"net/http"

	"mf-api/internal/api/constant"
	"mf-api/internal/api/dto"

	"github.com/gin-gonic/gin"
)

func (hd *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthRes{
		Status:  "healthy",
		Service: constant.ServiceName,
		Version: constant.ServiceVersion,
	})
}

// Ready reports whether MongoDB answers a ping.
func (hd *Handler) Ready(ctx *gin.Context) {
	if err := hd.uc.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.ReadyRes{
			Status:   "not ready",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ReadyRes{
		Status:   "ready",
		Database: "connected",
	})
}

func (hd *Handler) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.RootRes{
		Service:     constant.ServiceTitle,
		Version:     constant.ServiceVersion,
		Status:      "running",
		CORSOrigins: hd.corsOrigins,
		Endpoints: map[string]string{
			"health": "/health",
			"ready":  "/ready",
			"docs":   "See README.md",
		},
	})
}
