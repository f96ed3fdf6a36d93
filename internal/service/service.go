package service

import (
	"employabilityWeb/internal/config"
	"employabilityWeb/internal/repository"
	"employabilityWeb/internal/storage"

	"github.com/go-playground/validator/v10"
)

type Service struct {
	Auth      AuthService
	Job       JobService
	Post      PostService
	Course    CourseService
	Dashboard DashboardService
}

// NewService wires every service to the backend repositories. certificates may be nil.
func NewService(rep *repository.Repository, cfg *config.Config, certificates storage.CertificateStorage) *Service {
	validate := validator.New()

	return &Service{
		Auth:      NewAuthService(rep.User, validate),
		Job:       NewJobService(rep.Job, validate),
		Post:      NewPostService(rep.Post, cfg.PageSize),
		Course:    NewCourseService(rep.Course, validate),
		Dashboard: NewDashboardService(rep.User, rep.Enrollment, certificates),
	}
}
