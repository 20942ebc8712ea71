package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"skillerset/internal/config"
	"skillerset/internal/content"
	"skillerset/internal/controller"
	"skillerset/internal/repository"
	"skillerset/internal/service"
	"skillerset/internal/web"
	"skillerset/pkg/configwatcher"
	"skillerset/pkg/database"
	"skillerset/pkg/logger"
	"skillerset/pkg/monitoring"
	"skillerset/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	States          repository.StateRepository
	ContentStats    *content.Stats
	tracer          *sdktrace.TracerProvider
	cancel          context.CancelFunc
	configCallbacks []func(*config.Config)
}

type repositories struct {
	tutorial    *repository.TutorialRepository
	problem     *repository.PracticeProblemRepository
	quizAttempt *repository.QuizAttemptRepository
	state       repository.StateRepository
}

type services struct {
	tutorial    *service.TutorialService
	practice    *service.PracticeService
	pageState   *service.PageStateService
	quizAttempt *service.QuizAttemptService
	interaction *service.InteractionService
}

type controllers struct {
	page        *controller.PageController
	interaction *controller.InteractionController
	tutorial    *controller.TutorialController
	practice    *controller.PracticeController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, states repository.StateRepository) *repositories {
	return &repositories{
		tutorial:    repository.NewTutorialRepository(),
		problem:     repository.NewPracticeProblemRepository(),
		quizAttempt: repository.NewQuizAttemptRepository(db),
		state:       states,
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{
		tutorial:    service.NewTutorialService(repos.tutorial),
		practice:    service.NewPracticeService(repos.problem),
		pageState:   service.NewPageStateService(repos.state, sessionMaxAge(cfg)),
		quizAttempt: service.NewQuizAttemptService(repos.quizAttempt),
	}
	s.interaction = service.NewInteractionService(s.tutorial, s.practice, s.pageState, s.quizAttempt)
	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	pages := controller.NewPageController(s.tutorial, s.practice, s.interaction)
	return &controllers{
		page:        pages,
		interaction: controller.NewInteractionController(s.interaction, pages),
		tutorial:    controller.NewTutorialController(s.tutorial, s.interaction, s.quizAttempt),
		practice:    controller.NewPracticeController(s.practice),
		health:      controller.NewHealthController(db, repos.state, repos.tutorial, repos.problem),
	}
}

func sessionMaxAge(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Session.MaxAgeHours) * time.Hour
}

// initStateStore 启用 Redis 时使用 Redis，否则退回进程内存储
func (a *App) initStateStore(ctx context.Context, cfg *config.Config) (repository.StateRepository, error) {
	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
		return repository.NewRedisStateRepository(rdb), nil
	}

	logger.Log.Warn("Redis disabled, page state is kept in process memory")
	mem := repository.NewMemoryStateRepository()
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := mem.Sweep(); n > 0 {
					logger.Log.Debug("Expired page states removed", zap.Int("count", n))
				}
			}
		}
	}()
	return mem, nil
}

// build 加载内容并组装路由，DB 与状态存储须已就绪
func (a *App) build() error {
	cfg := a.Config
	repos := a.initRepositories(a.DB, a.States)
	stats, err := content.Load(content.Source(cfg.Content.Dir), repos.tutorial, repos.problem)
	if err != nil {
		return err
	}
	a.ContentStats = stats

	monitoring.Init()
	monitoring.SetContentCounts(repos.tutorial.Count(), repos.problem.Count())

	services := a.initServices(repos, cfg)
	controllers := a.initControllers(services, repos, a.DB)

	// 中间件必须先于静态资源路由注册，gin 在注册路由时绑定处理链
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	a.setupMiddlewares(router, cfg)
	if err := web.Mount(router); err != nil {
		return err
	}
	a.registerRoutes(router, controllers)
	a.Router = router

	return nil
}

// CheckContent 只校验内容目录，不连接任何外部依赖
func CheckContent(cfg *config.Config) (*content.Stats, error) {
	return content.Load(
		content.Source(cfg.Content.Dir),
		repository.NewTutorialRepository(),
		repository.NewPracticeProblemRepository(),
	)
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	gin.SetMode(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, DB: db}
	if err := a.init(cfg); err != nil {
		// 释放已经打开的连接、追踪器与后台协程
		a.Close(context.Background())
		return nil, err
	}
	return a, nil
}

// init 依次打开各项资源，失败时已打开的部分留在 a 上由 Close 释放
func (a *App) init(cfg *config.Config) error {
	if err := database.Migrate(a.DB); err != nil {
		return err
	}
	if cfg.MigrateOnly {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	states, err := a.initStateStore(ctx, cfg)
	if err != nil {
		return err
	}
	a.States = states

	// 分布式追踪
	if cfg.Tracing.Enabled {
		a.tracer, err = tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return err
		}
	}

	if err := a.build(); err != nil {
		return err
	}

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
	})
	go func() {
		w := configwatcher.New(filepath.Join(cfg.ConfigDir, "config.yaml"), a.applyConfig)
		if err := w.Run(ctx); err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()

	logger.Log.Info("Content loaded",
		zap.Int("files", a.ContentStats.Files),
		zap.Int("tutorials", a.ContentStats.Tutorials),
		zap.Int("problems", a.ContentStats.Problems),
		zap.Int("warnings", len(a.ContentStats.Warnings)),
	)
	return nil
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close(ctx)

	logger.Log.Info("Server exiting")
}

// Close 释放后台任务与外部连接
func (a *App) Close(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
