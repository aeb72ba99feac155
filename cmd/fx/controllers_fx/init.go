package controllers_fx

import (
	"go.uber.org/fx"

	"talentflow/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewJobsController),
	fx.Provide(controllers.NewCandidatesController),
	fx.Provide(controllers.NewAssessmentsController))
