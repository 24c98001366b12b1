package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chunponglai/tricks-planner/config"
	"github.com/chunponglai/tricks-planner/controllers"
	"github.com/chunponglai/tricks-planner/middlewares"
	"github.com/chunponglai/tricks-planner/services"
	"github.com/chunponglai/tricks-planner/utils"
)

func SetupRouter(cfg config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log), middlewares.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	tokens := utils.NewTokenMaker(cfg.JWTSecret, cfg.TokenTTL)

	authCtl := controllers.NewAuthController(services.NewAuthService(db, tokens))
	userCtl := controllers.NewUserController()
	trickCtl := controllers.NewTrickController(services.NewTrickService(db))
	templateCtl := controllers.NewTemplateController(services.NewTemplateService(db))
	challengeCtl := controllers.NewChallengeController(services.NewChallengeService(db))
	planCtl := controllers.NewPlanController(services.NewPlanService(db))
	syncCtl := controllers.NewSyncController(services.NewSyncService(db))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Everything else requires a bearer token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(tokens, db))
	{
		api.GET("/me", userCtl.Me)

		api.GET("/tricks", trickCtl.List)
		api.POST("/tricks", trickCtl.Create)
		api.DELETE("/tricks/:id", trickCtl.Delete)

		api.GET("/templates", templateCtl.List)
		api.POST("/templates", templateCtl.Create)
		api.DELETE("/templates/:id", templateCtl.Delete)

		api.GET("/challenges", challengeCtl.List)
		api.POST("/challenges", challengeCtl.Create)

		api.GET("/training-plans", planCtl.List)
		api.POST("/training-plans", planCtl.Create)

		api.GET("/sync", syncCtl.Pull)
		api.PUT("/sync", syncCtl.Push)
	}

	return r
}
