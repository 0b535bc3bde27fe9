package controller

import (
	"errors"
	"motorkeys_backend/internal/service"
	"motorkeys_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LearnerController struct {
	Service *service.LearnerService
}

func NewLearnerController(s *service.LearnerService) *LearnerController {
	return &LearnerController{Service: s}
}

// CreateLearnerRequest 新建学习者
// swagger:model CreateLearnerRequest
type CreateLearnerRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateLearner godoc
// @Summary 新建学习者
// @Tags 学习者
// @Accept json
// @Produce json
// @Param learner body CreateLearnerRequest true "学习者信息"
// @Success 201 {object} util.Response{data=model.Learner}
// @Failure 400 {object} util.Response
// @Router /api/learners [post]
func (c *LearnerController) CreateLearner(ctx *gin.Context) {
	var req CreateLearnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	learner, err := c.Service.Create(req.Name)
	if err != nil {
		handleLearnerError(ctx, err)
		return
	}
	util.Created(ctx, learner)
}

// ListLearners godoc
// @Summary 学习者列表
// @Tags 学习者
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Learner}
// @Router /api/learners [get]
func (c *LearnerController) ListLearners(ctx *gin.Context) {
	learners, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, learners)
}

// GetLearner godoc
// @Summary 获取学习者及其运动画像
// @Tags 学习者
// @Produce json
// @Param id path string true "学习者ID"
// @Success 200 {object} util.Response{data=model.Learner}
// @Failure 404 {object} util.Response
// @Router /api/learners/{id} [get]
func (c *LearnerController) GetLearner(ctx *gin.Context) {
	learner, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		handleLearnerError(ctx, err)
		return
	}
	util.Success(ctx, learner)
}

// RecordAttempt godoc
// @Summary 记录一次单词输入
// @Description 统计按键错误和换行速度并合并进学习者画像
// @Tags 学习者
// @Accept json
// @Produce json
// @Param id path string true "学习者ID"
// @Param attempt body service.AttemptInput true "按键序列"
// @Success 201 {object} util.Response{data=service.AttemptResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learners/{id}/attempts [post]
func (c *LearnerController) RecordAttempt(ctx *gin.Context) {
	var req service.AttemptInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.RecordAttempt(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		handleLearnerError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// GetMotorStats godoc
// @Summary 运动技能概览
// @Tags 学习者
// @Produce json
// @Param id path string true "学习者ID"
// @Success 200 {object} util.Response{data=service.MotorStats}
// @Failure 404 {object} util.Response
// @Router /api/learners/{id}/motor [get]
func (c *LearnerController) GetMotorStats(ctx *gin.Context) {
	stats, err := c.Service.MotorStats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleLearnerError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

func handleLearnerError(ctx *gin.Context, err error) {
	switch {
	case service.IsInvalidAttempt(err):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrLearnerNotFound):
		util.Error(ctx, http.StatusNotFound, "Learner not found")
	case errors.Is(err, util.ErrWordNotFound):
		util.Error(ctx, http.StatusNotFound, "Word not found")
	default:
		util.LogInternalError(ctx, err)
	}
}
