package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"talentflow/cmd/fx/assessments_fx"
	"talentflow/cmd/fx/candidates_fx"
	"talentflow/cmd/fx/controllers_fx"
	"talentflow/cmd/fx/db_fx"
	"talentflow/cmd/fx/jobs_fx"
	"talentflow/cmd/fx/seed_fx"
	"talentflow/internal/api/controllers"
	"talentflow/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as is")
	}

	app := fx.New(
		db_fx.Module,
		jobs_fx.Module,
		candidates_fx.Module,
		assessments_fx.Module,
		controllers_fx.Module,
		seed_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
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
	jobsController *controllers.JobsController,
	candidatesController *controllers.CandidatesController,
	assessmentsController *controllers.AssessmentsController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ChaosMiddleware(middleware.ChaosConfigFromEnv()))

	RegisterRoutes(r, jobsController, candidatesController, assessmentsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jobsController *controllers.JobsController,
	candidatesController *controllers.CandidatesController,
	assessmentsController *controllers.AssessmentsController) {

	jobsGroup := r.Group("/jobs")
	jobsGroup.GET("", jobsController.ListJobs)
	jobsGroup.POST("", jobsController.CreateJob)
	jobsGroup.PATCH("/reorder", jobsController.ReorderJobs)
	jobsGroup.GET("/:id", jobsController.GetJob)
	jobsGroup.PATCH("/:id", jobsController.UpdateJob)

	jobsGroup.GET("/:id/assessment", assessmentsController.GetAssessment)
	jobsGroup.PUT("/:id/assessment", assessmentsController.PutAssessment)
	jobsGroup.PATCH("/:id/assessment", assessmentsController.EditAssessment)
	jobsGroup.DELETE("/:id/assessment", assessmentsController.DeleteAssessment)
	jobsGroup.POST("/:id/assessment/preview", assessmentsController.PreviewAssessment)
	jobsGroup.POST("/:id/assessment/submit", assessmentsController.SubmitAssessment)
	jobsGroup.PUT("/:id/assessment/draft/:candidateId", assessmentsController.SaveDraft)
	jobsGroup.GET("/:id/assessment/draft/:candidateId", assessmentsController.GetDraft)

	candidatesGroup := r.Group("/candidates")
	candidatesGroup.GET("", candidatesController.ListCandidates)
	candidatesGroup.POST("", candidatesController.CreateCandidate)
	candidatesGroup.GET("/:id", candidatesController.GetCandidate)
	candidatesGroup.PATCH("/:id", candidatesController.UpdateCandidate)
	candidatesGroup.POST("/:id/notes", candidatesController.AddNote)
	candidatesGroup.GET("/:id/timeline", candidatesController.GetTimeline)
}
