package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"exam_client/docs"
	"exam_client/internal/config"
	"exam_client/internal/middleware"
	"exam_client/internal/util"
	"exam_client/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(api, c)

	// 2. 需要登录的路由
	authorized := api.Group("")
	authorized.Use(middleware.SessionGuard(a.services.auth), middleware.AuthMiddleware(cfg, a.services.auth))
	{
		a.registerUserRoutes(authorized, c)
		a.registerExamRoutes(authorized, c)

		// 3. 管理员路由
		admin := authorized.Group("/admin")
		admin.Use(middleware.AdminMiddleware())
		a.registerAdminRoutes(admin, c)
	}

	if cfg.Server.StaticDir != "" {
		router.NoRoute(staticHandler(cfg.Server.StaticDir))
	}
}

func (a *App) registerPublicRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/health", c.health.HealthCheck)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", c.auth.Login)
		auth.POST("/register", c.auth.Register)
		auth.GET("/status", c.auth.Status)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/auth/logout", c.auth.Logout)

	profile := rg.Group("/profile")
	{
		profile.GET("", c.user.GetProfile)
		profile.PUT("", c.user.UpdateProfile)
		profile.POST("/password", c.user.ChangePassword)
	}

	history := rg.Group("/history")
	{
		history.GET("/exams", c.history.Exams)
		history.GET("/wrong-questions", c.history.WrongQuestions)
		history.POST("/wrong-questions/:id/master", c.history.MarkMastered)
	}
}

func (a *App) registerExamRoutes(rg *gin.RouterGroup, c *controllers) {
	ex := rg.Group("/exam")
	{
		ex.GET("", c.exam.Current)
		ex.DELETE("", c.exam.Abandon)
		ex.POST("/start", c.exam.Start)
		ex.GET("/questions/:position", c.exam.Render)
		ex.POST("/answers", c.exam.Select)
		ex.POST("/advance", c.exam.Advance)
		ex.POST("/submit", c.exam.Submit)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/overview", c.question.Overview)

	users := rg.Group("/users")
	{
		users.GET("", c.user.ListUsers)
		users.POST("", c.user.CreateUser)
		users.PUT("/:id", c.user.UpdateUser)
		users.DELETE("/:id", c.user.DeleteUser)
		users.POST("/:id/reset-password", c.user.ResetPassword)
	}

	questions := rg.Group("/questions")
	{
		questions.GET("", c.question.List)
		questions.POST("", c.question.Add)
		questions.GET("/stats", c.question.Stats)
		questions.POST("/clear", c.question.Clear)
		questions.PUT("/:id", c.question.Update)
		questions.DELETE("/:id", c.question.Delete)
	}

	imports := rg.Group("/import")
	{
		imports.POST("", c.imports.Upload)
		imports.POST("/preview", c.imports.Preview)
		imports.GET("/log", c.imports.Log)
	}
}

// staticHandler 静态资源原样返回，其余路径回退到 index.html 交给前端路由
func staticHandler(dir string) gin.HandlerFunc {
	root, _ := filepath.Abs(dir)
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			util.NotFound(c)
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			util.NotFound(c)
			return
		}

		rel := filepath.FromSlash(strings.TrimPrefix(filepath.Clean("/"+c.Request.URL.Path), "/"))
		if rel != "" && rel != "." {
			full := filepath.Join(root, rel)
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				c.File(full)
				return
			}
		}

		index := filepath.Join(root, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.String(http.StatusNotFound, "index.html not found")
			return
		}
		c.File(index)
	}
}
