package controller

import (
	"context"
	"net/http"
	"skillerset/internal/repository"
	"skillerset/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB           *gorm.DB
	States       repository.StateRepository
	TutorialRepo *repository.TutorialRepository
	ProblemRepo  *repository.PracticeProblemRepository
}

func NewHealthController(
	db *gorm.DB,
	states repository.StateRepository,
	tutorialRepo *repository.TutorialRepository,
	problemRepo *repository.PracticeProblemRepository,
) *HealthController {
	return &HealthController{
		DB:           db,
		States:       states,
		TutorialRepo: tutorialRepo,
		ProblemRepo:  problemRepo,
	}
}

// @Summary 健康检查
// @Description 检查数据库、会话状态存储与内容注册表
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if err := sqlDB.PingContext(pingCtx); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	if err := c.States.Ping(pingCtx); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "State store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database":   "up",
			"stateStore": "up",
		},
		"content": gin.H{
			"tutorials": c.TutorialRepo.Count(),
			"problems":  c.ProblemRepo.Count(),
		},
	})
}
