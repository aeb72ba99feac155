package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"talentflow/internal/models/db_models"
	"talentflow/internal/repositories"
	"talentflow/pkg/assessment"
	"talentflow/pkg/utils"
)

const (
	numSeedJobs       = 25
	numSeedCandidates = 1000
)

var (
	seedRoles       = []string{"Engineer", "Designer", "Product Manager", "Analyst", "Recruiter", "Developer", "Architect", "Researcher"}
	seedSpecialties = []string{"Frontend", "Backend", "Platform", "Data", "Mobile", "Security", "QA", "Infrastructure"}
	seedLevels      = []string{"Junior", "Senior", "Staff", "Lead", "Principal"}
	seedTags        = []string{"Remote", "Full-time", "Engineering"}
	seedFirstNames  = []string{"Alex", "Sam", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery", "Quinn", "Dana", "Robin", "Lee", "Kim", "Pat", "Noor", "Ravi", "Mina", "Oscar", "Ivy"}
	seedLastNames   = []string{"Smith", "Johnson", "Lee", "Garcia", "Chen", "Patel", "Kim", "Nguyen", "Brown", "Davis", "Khan", "Silva", "Novak", "Haas", "Costa", "Mori", "Olsen", "Reyes", "Fox", "Stone"}
)

type SeedServiceInterface interface {
	SeedDatabase(ctx context.Context) error
}

type SeedService struct {
	jobRepo        repositories.JobRepositoryInterface
	candidateRepo  repositories.CandidateRepositoryInterface
	assessmentRepo repositories.AssessmentRepositoryInterface
	rng            *rand.Rand
}

func NewSeedService(
	jobRepo repositories.JobRepositoryInterface,
	candidateRepo repositories.CandidateRepositoryInterface,
	assessmentRepo repositories.AssessmentRepositoryInterface,
) SeedServiceInterface {
	return &SeedService{
		jobRepo:        jobRepo,
		candidateRepo:  candidateRepo,
		assessmentRepo: assessmentRepo,
		// Fixed seed keeps the demo data stable across restarts.
		rng: rand.New(rand.NewSource(42)),
	}
}

// SeedDatabase fills an empty database with demo data: 25 jobs, 1000
// candidates spread across the pipeline stages, and three example
// assessments. A database that already has jobs is left alone.
func (s *SeedService) SeedDatabase(ctx context.Context) error {
	count, err := s.jobRepo.Count(ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if count > 0 {
		log.Println("Database already seeded.")
		return nil
	}
	log.Println("Seeding database...")

	jobs := make([]db_models.Job, 0, numSeedJobs)
	usedSlugs := map[string]bool{}
	for i := 0; i < numSeedJobs; i++ {
		title := s.jobTitle()
		slug := utils.Slugify(title)
		for usedSlugs[slug] {
			slug = fmt.Sprintf("%s-%d", slug, s.rng.Intn(100))
		}
		usedSlugs[slug] = true

		status := db_models.JobStatusActive
		if s.rng.Intn(4) == 0 {
			status = db_models.JobStatusArchive
		}
		jobs = append(jobs, db_models.Job{
			Title:  title,
			Slug:   slug,
			Status: status,
			Tags:   s.pickTags(),
			Order:  i,
		})
	}
	if err := s.jobRepo.BulkCreate(ctx, jobs); err != nil {
		return utils.ErrDatabaseError
	}

	candidates := make([]db_models.Candidate, 0, numSeedCandidates)
	for i := 0; i < numSeedCandidates; i++ {
		first := seedFirstNames[s.rng.Intn(len(seedFirstNames))]
		last := seedLastNames[s.rng.Intn(len(seedLastNames))]
		candidates = append(candidates, db_models.Candidate{
			Name:  first + " " + last,
			Email: fmt.Sprintf("%s.%s.%d@example.com", utils.Slugify(first), utils.Slugify(last), i),
			Stage: db_models.Stages[s.rng.Intn(len(db_models.Stages))],
			JobID: jobs[s.rng.Intn(len(jobs))].ID,
		})
	}
	if err := s.candidateRepo.BulkCreate(ctx, candidates); err != nil {
		return utils.ErrDatabaseError
	}

	assessments := []db_models.Assessment{
		{
			JobID: jobs[0].ID,
			Document: assessment.Assessment{
				JobID: jobs[0].ID.String(),
				Title: "Frontend Developer Skills Assessment",
				Sections: []assessment.Section{{
					ID:    "sec1",
					Title: "Basic Information",
					Questions: []assessment.Question{
						{ID: "q1", Type: assessment.ShortText, Label: "What is your name?", Validations: &assessment.Validations{Required: true}},
						{ID: "q2", Type: assessment.SingleChoice, Label: "Legally authorized to work?", Options: []string{"Yes", "No"}, Validations: &assessment.Validations{Required: true}},
						{ID: "q3", Type: assessment.LongText, Label: "Provide work authorization details.", Condition: &assessment.Condition{QuestionID: "q2", Value: "Yes"}},
					},
				}},
			},
		},
		{
			JobID: jobs[1].ID,
			Document: assessment.Assessment{
				JobID: jobs[1].ID.String(),
				Title: "Backend Engineering Challenge",
				Sections: []assessment.Section{{
					ID:    "secA",
					Title: "Database Knowledge",
					Questions: []assessment.Question{
						{ID: "qA1", Type: assessment.LongText, Label: "Describe the difference between SQL and NoSQL databases."},
						{ID: "qA2", Type: assessment.Numeric, Label: "Years of production database experience?", Validations: &assessment.Validations{Min: floatPtr(0), Max: floatPtr(40)}},
					},
				}},
			},
		},
		{
			JobID: jobs[2].ID,
			Document: assessment.Assessment{
				JobID: jobs[2].ID.String(),
				Title: "UI/UX Design Portfolio Review",
				Sections: []assessment.Section{{
					ID:    "secB",
					Title: "Portfolio Submission",
					Questions: []assessment.Question{
						{ID: "qB1", Type: assessment.FileUpload, Label: "Please upload a link to your portfolio."},
					},
				}},
			},
		},
	}
	if err := s.assessmentRepo.BulkCreate(ctx, assessments); err != nil {
		return utils.ErrDatabaseError
	}

	log.Println("Database seeding complete.")
	return nil
}

func (s *SeedService) jobTitle() string {
	return fmt.Sprintf("%s %s %s",
		seedLevels[s.rng.Intn(len(seedLevels))],
		seedSpecialties[s.rng.Intn(len(seedSpecialties))],
		seedRoles[s.rng.Intn(len(seedRoles))])
}

func (s *SeedService) pickTags() []string {
	n := 1 + s.rng.Intn(len(seedTags))
	picked := make([]string, 0, n)
	perm := s.rng.Perm(len(seedTags))
	for _, i := range perm[:n] {
		picked = append(picked, seedTags[i])
	}
	return picked
}

func floatPtr(f float64) *float64 { return &f }
