package app

import (
	"skillerset/docs"
	"skillerset/internal/config"
	"skillerset/internal/middleware"
	"skillerset/pkg/monitoring"
	"skillerset/pkg/security"
	"skillerset/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.Session(cfg.Session.CookieName, sessionMaxAge(cfg)))
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 页面
	a.registerPageRoutes(router, c)

	// 2. 页面交互（表单提交后重定向）
	a.registerInteractionRoutes(router, c)

	// 3. JSON 接口
	a.registerAPIRoutes(router, c)

	router.NoRoute(c.page.NotFound)
}

func (a *App) registerPageRoutes(router *gin.Engine, c *controllers) {
	router.GET("/", c.page.Home)
	router.GET("/tutorials", c.page.Tutorials)
	router.GET("/tutorials/:id", c.page.Tutorial)
	router.GET("/practice", c.page.Practice)
	router.GET("/practice/:id", c.page.Problem)
	router.GET("/about", c.page.About)
	router.GET("/courses", c.page.Courses)
	router.GET("/playground", c.page.Playground)
}

func (a *App) registerInteractionRoutes(router *gin.Engine, c *controllers) {
	tutorials := router.Group("/tutorials/:id")
	{
		tutorials.POST("/outputs/:index/toggle", c.interaction.ToggleOutput)
		tutorials.POST("/quiz/select", c.interaction.SelectOption)
		tutorials.POST("/quiz/toggle", c.interaction.ToggleGrading)
		tutorials.POST("/quiz/reset", c.interaction.ResetQuiz)
		tutorials.POST("/exercises/:index/hints", c.interaction.ToggleExerciseHints)
		tutorials.POST("/exercises/:index/solution", c.interaction.ToggleExerciseSolution)
	}

	practice := router.Group("/practice/:id")
	{
		practice.POST("/hints", c.interaction.ToggleProblemHints)
		practice.POST("/solution", c.interaction.ToggleProblemSolution)
	}
}

func (a *App) registerAPIRoutes(router *gin.Engine, c *controllers) {
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/categories", c.tutorial.GetCategories)
		api.GET("/tutorials", c.tutorial.ListTutorials)
		api.GET("/tutorials/:id", c.tutorial.GetTutorial)
		api.GET("/tutorials/:id/render", c.tutorial.RenderTutorial)
		api.GET("/tutorials/:id/toc", c.tutorial.GetTableOfContents)
		api.POST("/tutorials/:id/quiz/score", c.tutorial.ScoreQuiz)
		api.GET("/tutorials/:id/quiz/attempts", c.tutorial.ListAttempts)
		api.GET("/tutorials/:id/quiz/stats", c.tutorial.GetAttemptStats)

		api.GET("/practice", c.practice.ListProblems)
		api.GET("/practice/:id", c.practice.GetProblem)
	}
}
