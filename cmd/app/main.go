package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"ruralplanner/cmd/fx/ai_fx"
	"ruralplanner/cmd/fx/catalog_fx"
	"ruralplanner/cmd/fx/db_fx"
	"ruralplanner/cmd/fx/feedback_fx"
	"ruralplanner/cmd/fx/recommend_fx"
	"ruralplanner/cmd/fx/slots_fx"
	"ruralplanner/internal/api/controllers"
	"ruralplanner/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		catalog_fx.Module,
		slots_fx.Module,
		recommend_fx.Module,
		feedback_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := ai_fx.GetEnvWithDefault("PORT", "8000")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	slotsController *controllers.SlotsController,
	recommendController *controllers.RecommendController,
	feedbackController *controllers.FeedbackController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, slotsController, recommendController, feedbackController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	slotsController *controllers.SlotsController,
	recommendController *controllers.RecommendController,
	feedbackController *controllers.FeedbackController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/slots", slotsController.GetSlotsPreviewHandler)
	r.POST("/recommend", recommendController.RecommendHandler)
	r.POST("/feedback", feedbackController.RecordFeedbackHandler)
}
