package app

import (
	"github.com/gustavokauee/TaskFlex/internal/cache"
	"github.com/gustavokauee/TaskFlex/internal/config"
	"github.com/gustavokauee/TaskFlex/internal/handlers"
	"github.com/gustavokauee/TaskFlex/internal/repo"
	"github.com/gustavokauee/TaskFlex/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api")

	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(userSvc)
	registerAuthRoutes(api, authHandler)

	taskRepo := repo.NewPGTaskRepo(db)
	var taskCache *cache.TaskCache
	if rdb != nil {
		taskCache = cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}
	taskSvc := service.NewTaskService(taskRepo, userRepo, taskCache)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	registerTaskRoutes(api, taskHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "TaskFlex API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/users/:userId/tasks", h.ListForUser)
	api.PUT("/tasks/:taskId", h.Update)
	api.DELETE("/tasks/:taskId", h.Delete)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
}
