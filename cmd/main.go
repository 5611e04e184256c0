package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/revufeed/api/config"
	"github.com/revufeed/api/database"
	_ "github.com/revufeed/api/docs" // Swagger docs - auto-generated
	apictrl "github.com/revufeed/api/internal/controller/api"
	webctrl "github.com/revufeed/api/internal/controller/web"
	"github.com/revufeed/api/internal/logger"
	"github.com/revufeed/api/internal/middleware"
	"github.com/revufeed/api/internal/repository"
	"github.com/revufeed/api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Review Feedback Tracker API
// @version 1.0
// @description CRUD service tracking review feedback comments against document sections, with bulk operations, statistics and flat-file archival.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewFeedbackRepository,
		),

		fx.Provide(
			service.NewFeedbackService,
			service.NewArchiveService,
		),

		fx.Provide(
			webctrl.NewFeedbackWebController,
			apictrl.NewFeedbackAPIController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(database.Migrate),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("templates/*.html")

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures the routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	webController *webctrl.FeedbackWebController,
	apiController *apictrl.FeedbackAPIController,
) {
	router.GET("/", webController.Home)

	feedbackGroup := router.Group("/feedback")
	{
		// Browser-facing pages
		feedbackGroup.GET("/", webController.ViewFeedback)
		feedbackGroup.GET("/add", webController.AddFeedbackForm)
		feedbackGroup.POST("/add", webController.AddFeedback)
		feedbackGroup.GET("/counts", webController.Counts)
		feedbackGroup.GET("/edit/:id", webController.EditFeedbackForm)
		feedbackGroup.POST("/edit/:id", webController.EditFeedback)
		feedbackGroup.POST("/delete/:id", webController.DeleteFeedback)

		// Programmatic JSON endpoints
		feedbackGroup.POST("/bulk-upload", apiController.BulkUpload)
		feedbackGroup.GET("/search", apiController.Search)
		feedbackGroup.GET("/by-max-length", apiController.ByMaxLength)
		feedbackGroup.PUT("/update-category", apiController.UpdateCategory)
		feedbackGroup.PATCH("/update-category", apiController.UpdateCategory)
		feedbackGroup.DELETE("/delete-by-category", apiController.DeleteByCategory)
		feedbackGroup.GET("/summary-statistics", apiController.SummaryStatistics)
		feedbackGroup.POST("/archive", apiController.Archive)
		feedbackGroup.PUT("/archive", apiController.Archive)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Review feedback tracker starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
