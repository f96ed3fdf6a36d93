package repository

import (
	"context"
	"employabilityWeb/internal/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type PostsPage struct {
	Posts      []models.Post
	Pagination models.Pagination
}

type CourseFilter struct {
	Search   string
	Category string
	Level    string
}

type UserRepository interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, token string) (*models.Profile, error)
}

type JobRepository interface {
	List(ctx context.Context, token, status string) ([]models.Job, error)
	GetByID(ctx context.Context, token, jobID string) (*models.Job, error)
	Approve(ctx context.Context, token, jobID string) error
	Reject(ctx context.Context, token, jobID, reason string) error
	Delete(ctx context.Context, token, jobID string) error
}

type PostRepository interface {
	List(ctx context.Context, token string, page, limit int) (*PostsPage, error)
	ListReported(ctx context.Context, token string) ([]models.Post, error)
	SetHidden(ctx context.Context, token, postID string, hidden bool) error
	Delete(ctx context.Context, token, postID string) error
}

type CourseRepository interface {
	List(ctx context.Context, token string, filter CourseFilter) ([]models.Course, error)
}

type EnrollmentRepository interface {
	ListMine(ctx context.Context, token string) ([]models.Enrollment, error)
}

type Repository struct {
	User       UserRepository
	Job        JobRepository
	Post       PostRepository
	Course     CourseRepository
	Enrollment EnrollmentRepository
}

func NewRepository(client *Client) *Repository {
	return &Repository{
		User:       NewUserRepository(client),
		Job:        NewJobRepository(client),
		Post:       NewPostRepository(client),
		Course:     NewCourseRepository(client),
		Enrollment: NewEnrollmentRepository(client),
	}
}
