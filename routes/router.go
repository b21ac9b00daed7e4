package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cppla/quoramock/config"
	"github.com/cppla/quoramock/controllers"
	"github.com/cppla/quoramock/middleware"
	"github.com/cppla/quoramock/store"
	"github.com/cppla/quoramock/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, gw *store.Gateway) *gin.Engine {
	switch strings.ToLower(cfg.App.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())

	// Access log goes to its own rolling file when configured, otherwise to the app logger.
	accessLog := utils.Logger.Named("access")
	if cfg.Log.GinPath != "" {
		gl, err := utils.NewRollingFileLogger(cfg.Log.GinPath, cfg.Log)
		if err == nil {
			accessLog = gl
		} else {
			utils.Sugar.Warnf("gin log file unavailable, using app logger: %v", err)
		}
	}
	r.Use(utils.Ginzap(accessLog, time.RFC3339, true))
	r.Use(utils.RecoveryWithZap(accessLog, true))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.App.AllowedOrigins) == 0 || (len(cfg.App.AllowedOrigins) == 1 && cfg.App.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.App.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	healthController := controllers.NewHealthController(gw)
	questionController := controllers.NewQuestionController(gw)
	answerController := controllers.NewAnswerController(gw)
	voteController := controllers.NewVoteController(gw)

	r.GET("/health", healthController.Health)
	r.GET("/test", healthController.Ping)

	questions := r.Group("/questions")
	questions.POST("", questionController.CreateQuestion)
	questions.GET("", questionController.ListQuestions)
	// Static segment: always preferred over /questions/:id.
	questions.GET("/search", questionController.SearchQuestions)
	questions.GET("/:id", questionController.GetQuestion)
	questions.PUT("/:id", questionController.UpdateQuestion)
	questions.DELETE("/:id", questionController.DeleteQuestion)

	questions.POST("/:id/answers", answerController.CreateAnswer)
	questions.GET("/:id/answers", answerController.ListAnswers)
	questions.DELETE("/:id/answers", answerController.DeleteAnswers)

	questions.POST("/:id/vote", voteController.VoteQuestion)
	r.POST("/answers/:id/vote", voteController.VoteAnswer)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
