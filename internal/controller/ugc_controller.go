package controller

import (
	"errors"
	"motorkeys_backend/internal/service"
	"motorkeys_backend/internal/util"
	"motorkeys_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UGCController 用户自建单词，响应保持前端使用的 {success, ...} 格式
type UGCController struct {
	Service *service.UGCService
}

func NewUGCController(s *service.UGCService) *UGCController {
	return &UGCController{Service: s}
}

// SetActiveRequest 启用或停用自建单词
// swagger:model SetActiveRequest
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SaveWord godoc
// @Summary 保存自建单词
// @Description imageData 为 base64 data URI，同名单词会被覆盖
// @Tags 自建单词
// @Accept json
// @Produce json
// @Param word body service.SaveUGCWordRequest true "单词与图片"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 413 {object} map[string]interface{}
// @Router /api/ugc/word [post]
func (c *UGCController) SaveWord(ctx *gin.Context) {
	var req service.SaveUGCWordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		flatBindError(ctx, err)
		return
	}

	word, err := c.Service.SaveWord(ctx.Request.Context(), req)
	if err != nil {
		handleFlatError(ctx, err)
		return
	}
	util.Flat(ctx, http.StatusCreated, gin.H{"word": word.Word, "data": word})
}

// ListWords godoc
// @Summary 自建单词列表
// @Tags 自建单词
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/ugc/words [get]
func (c *UGCController) ListWords(ctx *gin.Context) {
	words, err := c.Service.List()
	if err != nil {
		util.LogFlatInternalError(ctx, err)
		return
	}
	util.Flat(ctx, http.StatusOK, gin.H{"count": len(words), "words": words})
}

// GetWord godoc
// @Summary 获取自建单词
// @Tags 自建单词
// @Produce json
// @Param id path string true "单词"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/ugc/word/{id} [get]
func (c *UGCController) GetWord(ctx *gin.Context) {
	word, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		handleFlatError(ctx, err)
		return
	}
	util.Flat(ctx, http.StatusOK, gin.H{"data": word})
}

// SetActive godoc
// @Summary 启用或停用自建单词
// @Tags 自建单词
// @Accept json
// @Produce json
// @Param id path string true "单词"
// @Param body body SetActiveRequest true "启用状态"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/ugc/word/{id} [patch]
func (c *UGCController) SetActive(ctx *gin.Context) {
	var req SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.FlatError(ctx, http.StatusBadRequest, "active must be a boolean")
		return
	}

	word := util.SanitizeWord(ctx.Param("id"))
	if err := c.Service.SetActive(word, *req.Active); err != nil {
		handleFlatError(ctx, err)
		return
	}
	util.Flat(ctx, http.StatusOK, gin.H{"word": word, "active": *req.Active})
}

// DeleteWord godoc
// @Summary 删除自建单词
// @Tags 自建单词
// @Produce json
// @Param id path string true "单词"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/ugc/word/{id} [delete]
func (c *UGCController) DeleteWord(ctx *gin.Context) {
	word := util.SanitizeWord(ctx.Param("id"))
	if err := c.Service.Delete(ctx.Request.Context(), word); err != nil {
		handleFlatError(ctx, err)
		return
	}
	util.Flat(ctx, http.StatusOK, gin.H{"word": word})
}

// flatBindError 请求体超过 MaxBody 限制时返回 413
func flatBindError(ctx *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		util.FlatError(ctx, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	util.FlatError(ctx, http.StatusBadRequest, err.Error())
}

// handleFlatError 上传类接口的错误映射
func handleFlatError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPayloadTooLarge):
		util.FlatError(ctx, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, util.ErrInvalidInput),
		errors.Is(err, util.ErrInvalidFileType),
		errors.Is(err, util.ErrInvalidDataURI):
		util.FlatError(ctx, http.StatusBadRequest, err.Error())
	case util.IsNotFound(err):
		util.FlatError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrVideoProcessing):
		logger.Log.Error("Video processing failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		util.FlatError(ctx, http.StatusInternalServerError, "Failed to process video")
	case errors.Is(err, util.ErrStorageUnavailable):
		util.FlatError(ctx, http.StatusServiceUnavailable, "Storage unavailable")
	default:
		util.LogFlatInternalError(ctx, err)
	}
}
