package controller

import (
	"errors"
	"motorkeys_backend/internal/service"
	"motorkeys_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// WordController 词库查询接口
type WordController struct {
	Catalog *service.CatalogService
}

func NewWordController(catalog *service.CatalogService) *WordController {
	return &WordController{Catalog: catalog}
}

// ListWords godoc
// @Summary 获取词汇列表
// @Description 查询内置词库与启用的用户词汇，多个筛选条件取交集
// @Tags 词库
// @Produce json
// @Param category query string false "语义分类，如 animal"
// @Param pos query string false "词性，如 noun"
// @Param grade query string false "年级段：PreK, K, 1, 2, 3"
// @Param tag query string false "兴趣标签，如 silly_potential"
// @Param sight query bool false "是否为视觉词"
// @Param highFrequency query bool false "只返回高频词"
// @Success 200 {object} util.Response{data=[]catalog.Word}
// @Failure 400 {object} util.Response
// @Router /api/words [get]
func (c *WordController) ListWords(ctx *gin.Context) {
	filter := service.WordFilter{
		Category:     ctx.Query("category"),
		PartOfSpeech: ctx.Query("pos"),
		GradeBand:    ctx.Query("grade"),
		Tag:          ctx.Query("tag"),
	}
	if s := ctx.Query("sight"); s != "" {
		sight, err := strconv.ParseBool(s)
		if err != nil {
			util.BadRequest(ctx, "sight must be true or false")
			return
		}
		filter.SightWord = &sight
	}
	if s := ctx.Query("highFrequency"); s != "" {
		hf, err := strconv.ParseBool(s)
		if err != nil {
			util.BadRequest(ctx, "highFrequency must be true or false")
			return
		}
		filter.HighFrequency = hf
	}

	words, err := c.Catalog.Words(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, words)
}

// GetWord godoc
// @Summary 获取单个词汇
// @Tags 词库
// @Produce json
// @Param id path string true "词汇ID，用户词汇为 user:<word>"
// @Success 200 {object} util.Response{data=catalog.Word}
// @Failure 404 {object} util.Response
// @Router /api/words/{id} [get]
func (c *WordController) GetWord(ctx *gin.Context) {
	word, err := c.Catalog.Word(ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, word)
}

// GetWordLists godoc
// @Summary 获取包含该词汇的词表
// @Tags 词库
// @Produce json
// @Param id path string true "词汇ID"
// @Success 200 {object} util.Response{data=[]catalog.WordList}
// @Failure 404 {object} util.Response
// @Router /api/words/{id}/lists [get]
func (c *WordController) GetWordLists(ctx *gin.Context) {
	lists, err := c.Catalog.ListsForWord(ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, lists)
}

// Stats godoc
// @Summary 词库统计
// @Tags 词库
// @Produce json
// @Success 200 {object} util.Response{data=catalog.RepositoryStats}
// @Router /api/words/stats [get]
func (c *WordController) Stats(ctx *gin.Context) {
	stats, err := c.Catalog.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// ListWordLists godoc
// @Summary 获取全部词表
// @Tags 词库
// @Produce json
// @Success 200 {object} util.Response{data=[]catalog.WordList}
// @Router /api/word-lists [get]
func (c *WordController) ListWordLists(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Lists())
}

// GetWordList godoc
// @Summary 获取词表信息
// @Tags 词库
// @Produce json
// @Param id path string true "词表ID"
// @Success 200 {object} util.Response{data=catalog.WordList}
// @Failure 404 {object} util.Response
// @Router /api/word-lists/{id} [get]
func (c *WordController) GetWordList(ctx *gin.Context) {
	list, err := c.Catalog.List(ctx.Param("id"))
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// GetWordListWords godoc
// @Summary 获取词表中的词汇
// @Description 按词表顺序返回，无序条目排在最后；missingWordIds 为词表引用但词库中不存在的词
// @Tags 词库
// @Produce json
// @Param id path string true "词表ID"
// @Param core query bool false "只返回核心词"
// @Success 200 {object} util.Response{data=catalog.ListMembers}
// @Failure 404 {object} util.Response
// @Router /api/word-lists/{id}/words [get]
func (c *WordController) GetWordListWords(ctx *gin.Context) {
	coreOnly, _ := strconv.ParseBool(ctx.DefaultQuery("core", "false"))
	members, err := c.Catalog.ListWords(ctx.Param("id"), coreOnly)
	if err != nil {
		c.handleError(ctx, err)
		return
	}
	util.Success(ctx, members)
}

func (c *WordController) handleError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrWordNotFound) || errors.Is(err, util.ErrNotFound) {
		util.NotFound(ctx)
		return
	}
	util.LogInternalError(ctx, err)
}
