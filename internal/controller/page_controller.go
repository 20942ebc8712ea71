package controller

import (
	"errors"
	"fmt"
	"net/http"
	"skillerset/internal/model"
	"skillerset/internal/service"
	"skillerset/internal/util"
	"skillerset/internal/web"

	"github.com/gin-gonic/gin"
)

type PageController struct {
	TutorialService    *service.TutorialService
	PracticeService    *service.PracticeService
	InteractionService *service.InteractionService
}

func NewPageController(
	tutorialService *service.TutorialService,
	practiceService *service.PracticeService,
	interactionService *service.InteractionService,
) *PageController {
	return &PageController{
		TutorialService:    tutorialService,
		PracticeService:    practiceService,
		InteractionService: interactionService,
	}
}

type HomeData struct {
	Featured      []service.TutorialSummary
	Categories    []service.CategorySummary
	TutorialCount int
	ProblemCount  int
}

type TutorialListData struct {
	Category   string
	Categories []service.CategorySummary
	Tutorials  []service.TutorialSummary
}

type PracticeListData struct {
	Filter       service.ProblemFilter
	Categories   []string
	Difficulties []model.ProblemDifficulty
	Problems     []service.ProblemSummary
	Error        string
}

type NotFoundData struct {
	Heading   string
	Message   string
	BackURL   string
	BackLabel string
}

func (c *PageController) Home(ctx *gin.Context) {
	featured := c.TutorialService.Featured()
	data := HomeData{
		Categories:    c.TutorialService.Categories(),
		TutorialCount: c.TutorialService.TutorialRepo.Count(),
		ProblemCount:  c.PracticeService.ProblemRepo.Count(),
	}
	for _, t := range featured {
		data.Featured = append(data.Featured, service.Summarize(t))
	}

	ctx.HTML(http.StatusOK, "home", web.Page{
		Title:       "Learn to Code",
		Description: "Master programming with comprehensive tutorials, code examples, and hands-on practice problems.",
		Data:        data,
	})
}

func (c *PageController) Tutorials(ctx *gin.Context) {
	category := ctx.Query("category")
	ctx.HTML(http.StatusOK, "tutorials", web.Page{
		Title: "All Tutorials",
		Nav:   "tutorials",
		Data: TutorialListData{
			Category:   category,
			Categories: c.TutorialService.Categories(),
			Tutorials:  c.TutorialService.ListSummaries(category),
		},
	})
}

func (c *PageController) Tutorial(ctx *gin.Context) {
	page, err := c.InteractionService.TutorialPage(ctx.Request.Context(), util.GetSessionID(ctx), ctx.Param("id"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	t := page.Tutorial
	ctx.HTML(http.StatusOK, "tutorial", web.Page{
		Title:       t.Title,
		Description: t.MetaDescription,
		Nav:         "tutorials",
		Data:        page,
	})
}

func (c *PageController) Practice(ctx *gin.Context) {
	var filter service.ProblemFilter
	bindErr := ctx.ShouldBindQuery(&filter)

	data := PracticeListData{
		Filter:       filter,
		Categories:   c.PracticeService.Categories(),
		Difficulties: []model.ProblemDifficulty{model.Easy, model.Medium, model.Hard},
	}
	if bindErr != nil {
		data.Error = fmt.Sprintf("Invalid filter (category %q, difficulty %q)", filter.Category, filter.Difficulty)
		ctx.HTML(http.StatusBadRequest, "practice", web.Page{Title: "Practice Problems", Nav: "practice", Data: data})
		return
	}

	status := http.StatusOK
	problems, err := c.PracticeService.ListSummaries(filter)
	if err != nil {
		status = util.ErrorStatus(err)
		data.Error = err.Error()
	}
	data.Problems = problems

	ctx.HTML(status, "practice", web.Page{Title: "Practice Problems", Nav: "practice", Data: data})
}

func (c *PageController) Problem(ctx *gin.Context) {
	page, err := c.InteractionService.ProblemPage(ctx.Request.Context(), util.GetSessionID(ctx), ctx.Param("id"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "problem", web.Page{
		Title:       page.Problem.Title,
		Description: page.Problem.Description,
		Nav:         "practice",
		Data:        page,
	})
}

func (c *PageController) About(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "about", web.Page{Title: "About", Nav: "about"})
}

func (c *PageController) Courses(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "courses", web.Page{Title: "Courses", Nav: "courses"})
}

func (c *PageController) Playground(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "playground", web.Page{Title: "Code Playground", Nav: "playground"})
}

// NotFound 未匹配路由
func (c *PageController) NotFound(ctx *gin.Context) {
	ctx.HTML(http.StatusNotFound, "not_found", web.Page{
		Title: "Page Not Found",
		Data: NotFoundData{
			Heading:   "Page Not Found",
			Message:   "The page you're looking for doesn't exist.",
			BackURL:   "/",
			BackLabel: "Back to Home",
		},
	})
}

func (c *PageController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTutorialNotFound):
		ctx.HTML(http.StatusNotFound, "not_found", web.Page{
			Title: "Tutorial Not Found",
			Nav:   "tutorials",
			Data: NotFoundData{
				Heading:   "Tutorial Not Found",
				Message:   "The tutorial you're looking for doesn't exist.",
				BackURL:   "/tutorials",
				BackLabel: "Back to Tutorials",
			},
		})
	case errors.Is(err, util.ErrProblemNotFound):
		ctx.HTML(http.StatusNotFound, "not_found", web.Page{
			Title: "Problem Not Found",
			Nav:   "practice",
			Data: NotFoundData{
				Heading:   "Problem Not Found",
				Message:   "The practice problem you're looking for doesn't exist.",
				BackURL:   "/practice",
				BackLabel: "Back to Practice",
			},
		})
	default:
		util.HandleError(ctx, err)
	}
}
