package service

import (
	"context"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/repository"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const JobFilterAll = "all"

// JobFilters lists the moderation filters in display order.
var JobFilters = []string{
	models.JobStatusPending,
	models.JobStatusActive,
	models.JobStatusClosed,
	models.JobStatusRejected,
	JobFilterAll,
}

type JobService interface {
	List(ctx context.Context, token, filter string) ([]models.Job, error)
	Get(ctx context.Context, token, jobID string) (*models.Job, error)
	Approve(ctx context.Context, token, jobID string) error
	Reject(ctx context.Context, token, jobID, reason string) error
	Delete(ctx context.Context, token, jobID string) error
}

type jobService struct {
	jobRepo  repository.JobRepository
	validate *validator.Validate
}

func NewJobService(jobRepo repository.JobRepository, validate *validator.Validate) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		validate: validate,
	}
}

// NormalizeJobFilter maps anything unknown to the pending queue.
func NormalizeJobFilter(filter string) string {
	filter = strings.ToLower(strings.TrimSpace(filter))
	for _, known := range JobFilters {
		if filter == known {
			return filter
		}
	}
	return models.JobStatusPending
}

// JobsEmptyMessage is shown when a filter has no jobs.
func JobsEmptyMessage(filter string) string {
	filter = NormalizeJobFilter(filter)
	if filter == JobFilterAll {
		return "No jobs to review"
	}
	return fmt.Sprintf("No %s jobs to review", filter)
}

func (s *jobService) List(ctx context.Context, token, filter string) ([]models.Job, error) {
	status := NormalizeJobFilter(filter)
	if status == JobFilterAll {
		status = ""
	}
	return s.jobRepo.List(ctx, token, status)
}

func (s *jobService) Get(ctx context.Context, token, jobID string) (*models.Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, invalidInput("Job id is required")
	}
	return s.jobRepo.GetByID(ctx, token, jobID)
}

func (s *jobService) Approve(ctx context.Context, token, jobID string) error {
	return s.jobRepo.Approve(ctx, token, jobID)
}

type rejectInput struct {
	JobID  string `validate:"required"`
	Reason string `validate:"required,max=1000"`
}

func (s *jobService) Reject(ctx context.Context, token, jobID, reason string) error {
	input := rejectInput{JobID: jobID, Reason: strings.TrimSpace(reason)}
	if err := s.validate.Struct(input); err != nil {
		return invalidInput("Please give a rejection reason (at most 1000 characters)")
	}
	return s.jobRepo.Reject(ctx, token, input.JobID, input.Reason)
}

func (s *jobService) Delete(ctx context.Context, token, jobID string) error {
	return s.jobRepo.Delete(ctx, token, jobID)
}
