package app

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"exam_client/internal/client"
	"exam_client/internal/config"
	"exam_client/internal/controller"
	"exam_client/internal/exam"
	"exam_client/internal/service"
	"exam_client/pkg/configwatcher"
	"exam_client/pkg/logger"
	"exam_client/pkg/monitoring"
	"exam_client/pkg/security"
	"exam_client/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const serviceName = "exam-client"

type App struct {
	Config *config.Config
	Router *gin.Engine
	Client *client.Client
	Exam   *exam.Controller

	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []configwatcher.Reloader
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	question *service.QuestionService
	imports  *service.ImportService
	history  *service.HistoryService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	exam     *controller.ExamController
	question *controller.QuestionController
	imports  *controller.ImportController
	history  *controller.HistoryController
	health   *controller.HealthController
}

// RegisterConfigCallback 配置文件变化后依次调用
func (a *App) RegisterConfigCallback(callback configwatcher.Reloader) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initServices(cl *client.Client, cfg *config.Config) *services {
	auth := service.NewAuthService(cl, cfg)
	return &services{
		auth:     auth,
		user:     service.NewUserService(cl, auth),
		question: service.NewQuestionService(cl),
		imports:  service.NewImportService(cl),
		history:  service.NewHistoryService(cl),
	}
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, cfg),
		user:     controller.NewUserController(s.user),
		exam:     controller.NewExamController(a.Exam),
		question: controller.NewQuestionController(s.question, s.user),
		imports:  controller.NewImportController(s.imports),
		history:  controller.NewHistoryController(s.history),
		health:   controller.NewHealthController(a.Client),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
	router.Use(monitoring.MetricsMiddleware())
}

// build 组装依赖与路由，不做任何 I/O
func build(cfg *config.Config, cl *client.Client, router *gin.Engine) *App {
	app := &App{
		Config: cfg,
		Router: router,
		Client: cl,
	}

	app.services = app.initServices(cl, cfg)
	app.Exam = exam.NewController(cl, app.services.auth)
	app.services.auth.AttachSession(app.Exam)
	ctrls := app.initControllers(app.services, cfg)

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	app.RegisterConfigCallback(logger.SetLevel)
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		cl.SetTimeout(newCfg.Backend.Timeout())
		logger.Log.Info("backend timeout updated", zap.Duration("timeout", newCfg.Backend.Timeout()))
	})
	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	cl, err := client.New(cfg.Backend)
	if err != nil {
		logger.Log.Fatal("Failed to initialize backend client", zap.Error(err))
	}

	monitoring.Init()

	app := build(cfg, cl, gin.Default())

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(serviceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.restoreSession()
	return app
}

// restoreSession 后端会话仍有效时恢复登录状态，失败只记录日志
func (a *App) restoreSession() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	user, ok, err := a.services.auth.Restore(ctx)
	switch {
	case err != nil:
		logger.Log.Warn("check login status failed", zap.String("backend", a.Client.BaseURL()), zap.Error(err))
	case ok:
		logger.Log.Info("session restored", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.Config.Path != "" {
		go func() {
			if err := configwatcher.Watch(ctx, a.Config.Path, a.configCallbacks...); err != nil {
				logger.Log.Error("config watcher stopped", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Log.Info("Server running",
			zap.String("port", a.Config.Server.Port),
			zap.String("backend", a.Client.BaseURL()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	_ = logger.Log.Sync()
	logger.Log.Info("Server exiting")
}
