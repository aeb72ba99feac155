package seed_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"talentflow/internal/repositories"
	"talentflow/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideSeedService),
	fx.Invoke(runSeed),
)

func provideSeedService(
	jobRepo repositories.JobRepositoryInterface,
	candidateRepo repositories.CandidateRepositoryInterface,
	assessmentRepo repositories.AssessmentRepositoryInterface,
) services.SeedServiceInterface {
	return services.NewSeedService(jobRepo, candidateRepo, assessmentRepo)
}

func runSeed(seedService services.SeedServiceInterface) {
	if err := seedService.SeedDatabase(context.Background()); err != nil {
		log.Printf("Error seeding database: %v", err)
	}
}
