package repository

import (
	"context"
	"employabilityWeb/internal/models"
	"net/http"
	"net/url"
)

type courseRepository struct {
	client *Client
}

func NewCourseRepository(client *Client) CourseRepository {
	return &courseRepository{client: client}
}

// List passes the filter through as query params. Results are not filtered again here.
func (r *courseRepository) List(ctx context.Context, token string, filter CourseFilter) ([]models.Course, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Level != "" {
		query.Set("level", filter.Level)
	}

	raw, err := r.client.do(ctx, token, http.MethodGet, "/courses", query, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Course](raw, "courses")
}

type enrollmentRepository struct {
	client *Client
}

func NewEnrollmentRepository(client *Client) EnrollmentRepository {
	return &enrollmentRepository{client: client}
}

func (r *enrollmentRepository) ListMine(ctx context.Context, token string) ([]models.Enrollment, error) {
	raw, err := r.client.do(ctx, token, http.MethodGet, "/enrollments/my", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Enrollment](raw, "enrollments")
}
