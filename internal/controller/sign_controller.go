package controller

import (
	"motorkeys_backend/internal/service"
	"motorkeys_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SignController 手语视频录制
type SignController struct {
	Service *service.SignService
}

func NewSignController(s *service.SignService) *SignController {
	return &SignController{Service: s}
}

// UpdateSignStatusRequest 修改录像状态
// swagger:model UpdateSignStatusRequest
type UpdateSignStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Upload godoc
// @Summary 上传手语视频
// @Description videoData 为 base64 webm，转码为 720x720、30fps、无音轨的循环 mp4
// @Tags 手语
// @Accept json
// @Produce json
// @Param sign body service.UploadSignRequest true "录像"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 413 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/signs/upload [post]
func (c *SignController) Upload(ctx *gin.Context) {
	var req service.UploadSignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		flatBindError(ctx, err)
		return
	}

	sign, err := c.Service.Upload(ctx.Request.Context(), req)
	if err != nil {
		handleFlatError(ctx, err)
		return
	}
	util.Flat(ctx, http.StatusCreated, gin.H{
		"word":     sign.Word,
		"videoUrl": sign.LoopPath,
		"metadata": sign,
	})
}

// List godoc
// @Summary 已录制的手语视频
// @Tags 手语
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/signs/list [get]
func (c *SignController) List(ctx *gin.Context) {
	signs, err := c.Service.List()
	if err != nil {
		util.LogFlatInternalError(ctx, err)
		return
	}
	util.Flat(ctx, http.StatusOK, gin.H{"count": len(signs), "signs": signs})
}

// UpdateStatus godoc
// @Summary 修改手语视频状态
// @Tags 手语
// @Accept json
// @Produce json
// @Param word path string true "单词"
// @Param body body UpdateSignStatusRequest true "approved / pending / deleted"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/signs/{word} [patch]
func (c *SignController) UpdateStatus(ctx *gin.Context) {
	var req UpdateSignStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.FlatError(ctx, http.StatusBadRequest, "Invalid or missing status field. Must be one of: approved, pending, deleted")
		return
	}

	word, err := c.Service.UpdateStatus(ctx.Param("word"), req.Status)
	if err != nil {
		handleFlatError(ctx, err)
		return
	}
	util.Flat(ctx, http.StatusOK, gin.H{"word": word, "status": req.Status})
}
