package controller

import (
	"skillerset/internal/service"
	"skillerset/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TutorialController struct {
	TutorialService    *service.TutorialService
	InteractionService *service.InteractionService
	AttemptService     *service.QuizAttemptService
}

func NewTutorialController(
	tutorialService *service.TutorialService,
	interactionService *service.InteractionService,
	attemptService *service.QuizAttemptService,
) *TutorialController {
	return &TutorialController{
		TutorialService:    tutorialService,
		InteractionService: interactionService,
		AttemptService:     attemptService,
	}
}

// ScoreRequest 键为题目下标，值为选项下标
type ScoreRequest struct {
	Selections map[int]int `json:"selections" binding:"required"`
}

// ListTutorials godoc
// @Summary 教程列表
// @Description 返回教程摘要，可按分类精确过滤
// @Tags tutorials
// @Produce json
// @Param category query string false "分类名称"
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Router /tutorials [get]
func (c *TutorialController) ListTutorials(ctx *gin.Context) {
	list := c.TutorialService.ListSummaries(ctx.Query("category"))
	util.Success(ctx, util.ListResponse{List: list, Total: len(list)})
}

// GetCategories godoc
// @Summary 分类列表
// @Description 按首次出现顺序返回分类及教程数量
// @Tags tutorials
// @Produce json
// @Success 200 {object} util.Response{data=[]service.CategorySummary}
// @Router /categories [get]
func (c *TutorialController) GetCategories(ctx *gin.Context) {
	util.Success(ctx, c.TutorialService.Categories())
}

// GetTutorial godoc
// @Summary 教程详情
// @Tags tutorials
// @Produce json
// @Param id path string true "教程 id"
// @Success 200 {object} util.Response{data=model.Tutorial}
// @Failure 404 {object} util.Response
// @Router /tutorials/{id} [get]
func (c *TutorialController) GetTutorial(ctx *gin.Context) {
	t, err := c.TutorialService.Get(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, t)
}

// RenderTutorial godoc
// @Summary 渲染正文
// @Description 每个片段对应一个节点，无效片段为 null；输出展开状态取自当前会话
// @Tags tutorials
// @Produce json
// @Param id path string true "教程 id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /tutorials/{id}/render [get]
func (c *TutorialController) RenderTutorial(ctx *gin.Context) {
	nodes, err := c.InteractionService.RenderNodes(ctx.Request.Context(), util.GetSessionID(ctx), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nodes)
}

// GetTableOfContents godoc
// @Summary 目录
// @Tags tutorials
// @Produce json
// @Param id path string true "教程 id"
// @Success 200 {object} util.Response{data=[]render.TOCEntry}
// @Failure 404 {object} util.Response
// @Router /tutorials/{id}/toc [get]
func (c *TutorialController) GetTableOfContents(ctx *gin.Context) {
	toc, err := c.TutorialService.TableOfContents(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, toc)
}

// ScoreQuiz godoc
// @Summary 测验计分
// @Description 无状态计分，未作答的题目不计为正确
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "教程 id"
// @Param body body ScoreRequest true "选择"
// @Success 200 {object} util.Response{data=quiz.Score}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /tutorials/{id}/quiz/score [post]
func (c *TutorialController) ScoreQuiz(ctx *gin.Context) {
	var req ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	score, err := c.TutorialService.Score(ctx.Param("id"), req.Selections)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, score)
}

// ListAttempts godoc
// @Summary 当前会话的答题记录
// @Tags quiz
// @Produce json
// @Param id path string true "教程 id"
// @Param limit query int false "条数上限" default(20)
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Failure 404 {object} util.Response
// @Router /tutorials/{id}/quiz/attempts [get]
func (c *TutorialController) ListAttempts(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.TutorialService.Get(id); err != nil {
		util.HandleError(ctx, err)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(service.DefaultAttemptLimit)))
	attempts, err := c.AttemptService.History(ctx.Request.Context(), util.GetSessionID(ctx), id, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: attempts, Total: len(attempts)})
}

// GetAttemptStats godoc
// @Summary 教程测验统计
// @Description 所有会话的答题次数与平均得分率
// @Tags quiz
// @Produce json
// @Param id path string true "教程 id"
// @Success 200 {object} util.Response{data=repository.TutorialAttemptStats}
// @Failure 404 {object} util.Response
// @Router /tutorials/{id}/quiz/stats [get]
func (c *TutorialController) GetAttemptStats(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.TutorialService.Get(id); err != nil {
		util.HandleError(ctx, err)
		return
	}

	stats, err := c.AttemptService.Stats(ctx.Request.Context(), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
