package controller

import (
	"skillerset/internal/service"
	"skillerset/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// ListProblems godoc
// @Summary 练习题列表
// @Tags practice
// @Produce json
// @Param category query string false "分类"
// @Param difficulty query string false "难度" Enums(Easy, Medium, Hard)
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Failure 400 {object} util.Response
// @Router /practice [get]
func (c *PracticeController) ListProblems(ctx *gin.Context) {
	var filter service.ProblemFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	list, err := c.PracticeService.ListSummaries(filter)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, util.ListResponse{List: list, Total: len(list)})
}

// GetProblem godoc
// @Summary 练习题详情
// @Tags practice
// @Produce json
// @Param id path string true "题目 id"
// @Success 200 {object} util.Response{data=model.PracticeProblem}
// @Failure 404 {object} util.Response
// @Router /practice/{id} [get]
func (c *PracticeController) GetProblem(ctx *gin.Context) {
	p, err := c.PracticeService.Get(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, p)
}
