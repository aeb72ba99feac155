package candidates_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"talentflow/internal/repositories"
	"talentflow/internal/services"
)

var Module = fx.Provide(
	provideCandidateRepo, provideTimelineRepo, provideCandidateService)

func provideCandidateRepo(db *gorm.DB) repositories.CandidateRepositoryInterface {
	return repositories.NewCandidateRepository(db)
}

func provideTimelineRepo(db *gorm.DB) repositories.TimelineRepositoryInterface {
	return repositories.NewTimelineRepository(db)
}

func provideCandidateService(
	candidateRepo repositories.CandidateRepositoryInterface,
	timelineRepo repositories.TimelineRepositoryInterface,
) services.CandidateServiceInterface {
	return services.NewCandidateService(candidateRepo, timelineRepo)
}
