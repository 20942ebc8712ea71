package controller

import (
	"fmt"
	"net/http"
	"skillerset/internal/service"
	"skillerset/internal/util"
	"skillerset/internal/view"
	"strconv"

	"github.com/gin-gonic/gin"
)

// InteractionController 表单提交后重定向回页面对应位置
type InteractionController struct {
	InteractionService *service.InteractionService
	pages              *PageController
}

func NewInteractionController(interactionService *service.InteractionService, pages *PageController) *InteractionController {
	return &InteractionController{InteractionService: interactionService, pages: pages}
}

type SelectOptionRequest struct {
	Question *int `form:"question" binding:"required"`
	Option   *int `form:"option" binding:"required"`
}

func indexParam(ctx *gin.Context) (int, bool) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "index must be an integer")
		return 0, false
	}
	return index, true
}

func (c *InteractionController) finish(ctx *gin.Context, target string, err error) {
	if err != nil {
		c.pages.renderError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, target)
}

func tutorialURL(id, anchor string) string {
	return fmt.Sprintf("/tutorials/%s#%s", id, anchor)
}

func (c *InteractionController) ToggleOutput(ctx *gin.Context) {
	index, ok := indexParam(ctx)
	if !ok {
		return
	}
	id := ctx.Param("id")
	_, err := c.InteractionService.ToggleOutput(ctx.Request.Context(), util.GetSessionID(ctx), id, index)
	c.finish(ctx, tutorialURL(id, fmt.Sprintf("section-%d", index)), err)
}

func (c *InteractionController) SelectOption(ctx *gin.Context) {
	var req SelectOptionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	id := ctx.Param("id")
	_, err := c.InteractionService.SelectOption(ctx.Request.Context(), util.GetSessionID(ctx), id, *req.Question, *req.Option)
	c.finish(ctx, tutorialURL(id, "quiz"), err)
}

func (c *InteractionController) ToggleGrading(ctx *gin.Context) {
	id := ctx.Param("id")
	_, err := c.InteractionService.ToggleGrading(ctx.Request.Context(), util.GetSessionID(ctx), id)
	c.finish(ctx, tutorialURL(id, "quiz"), err)
}

func (c *InteractionController) ResetQuiz(ctx *gin.Context) {
	id := ctx.Param("id")
	_, err := c.InteractionService.ResetQuiz(ctx.Request.Context(), util.GetSessionID(ctx), id)
	c.finish(ctx, tutorialURL(id, "quiz"), err)
}

func (c *InteractionController) exercise(ctx *gin.Context, toggle func(ctx *gin.Context, id string, index int) (view.PageState, error)) {
	index, ok := indexParam(ctx)
	if !ok {
		return
	}
	id := ctx.Param("id")
	_, err := toggle(ctx, id, index)
	c.finish(ctx, tutorialURL(id, fmt.Sprintf("exercise-%d", index)), err)
}

func (c *InteractionController) ToggleExerciseHints(ctx *gin.Context) {
	c.exercise(ctx, func(ctx *gin.Context, id string, index int) (view.PageState, error) {
		return c.InteractionService.ToggleExerciseHints(ctx.Request.Context(), util.GetSessionID(ctx), id, index)
	})
}

func (c *InteractionController) ToggleExerciseSolution(ctx *gin.Context) {
	c.exercise(ctx, func(ctx *gin.Context, id string, index int) (view.PageState, error) {
		return c.InteractionService.ToggleExerciseSolution(ctx.Request.Context(), util.GetSessionID(ctx), id, index)
	})
}

func (c *InteractionController) ToggleProblemHints(ctx *gin.Context) {
	id := ctx.Param("id")
	_, err := c.InteractionService.ToggleProblemHints(ctx.Request.Context(), util.GetSessionID(ctx), id)
	c.finish(ctx, "/practice/"+id, err)
}

func (c *InteractionController) ToggleProblemSolution(ctx *gin.Context) {
	id := ctx.Param("id")
	_, err := c.InteractionService.ToggleProblemSolution(ctx.Request.Context(), util.GetSessionID(ctx), id)
	c.finish(ctx, "/practice/"+id, err)
}
