package assessments_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"talentflow/internal/repositories"
	"talentflow/internal/services"
	"talentflow/pkg/memcache"
)

var Module = fx.Provide(
	provideAssessmentRepo, provideDraftStore, provideAssessmentService)

func provideAssessmentRepo(db *gorm.DB) repositories.AssessmentRepositoryInterface {
	return repositories.NewAssessmentRepository(db)
}

func provideDraftStore() memcache.DraftStore {
	return memcache.NewDrafts()
}

func provideAssessmentService(
	assessmentRepo repositories.AssessmentRepositoryInterface,
	jobRepo repositories.JobRepositoryInterface,
	candidateRepo repositories.CandidateRepositoryInterface,
	timelineRepo repositories.TimelineRepositoryInterface,
	drafts memcache.DraftStore,
) services.AssessmentServiceInterface {
	return services.NewAssessmentService(assessmentRepo, jobRepo, candidateRepo, timelineRepo, drafts)
}
