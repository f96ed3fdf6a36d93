package service

import (
	"context"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/repository"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var CourseCategories = []string{
	"Development",
	"Design",
	"Business",
	"Marketing",
	"Data Science",
	"Soft Skills",
}

var CourseLevels = []string{"beginner", "intermediate", "advanced"}

type CourseService interface {
	List(ctx context.Context, token string, filter repository.CourseFilter) ([]models.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	validate   *validator.Validate
}

func NewCourseService(courseRepo repository.CourseRepository, validate *validator.Validate) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		validate:   validate,
	}
}

type courseFilterInput struct {
	Search   string `validate:"max=100"`
	Category string `validate:"max=50"`
	Level    string `validate:"omitempty,oneof=beginner intermediate advanced"`
}

// CoursesEmptyMessage names the active filters, if any.
func CoursesEmptyMessage(filter repository.CourseFilter) string {
	var parts []string
	if filter.Search != "" {
		parts = append(parts, fmt.Sprintf("matching %q", filter.Search))
	}
	if filter.Category != "" {
		parts = append(parts, "in "+filter.Category)
	}
	if filter.Level != "" {
		parts = append(parts, "at "+filter.Level+" level")
	}
	if len(parts) == 0 {
		return "No courses available yet"
	}
	return "No courses found " + strings.Join(parts, " ")
}

// List forwards the filter to the backend. Results are rendered as returned.
func (c *courseService) List(ctx context.Context, token string, filter repository.CourseFilter) ([]models.Course, error) {
	input := courseFilterInput{
		Search:   strings.TrimSpace(filter.Search),
		Category: strings.TrimSpace(filter.Category),
		Level:    strings.ToLower(strings.TrimSpace(filter.Level)),
	}
	if err := c.validate.Struct(input); err != nil {
		return nil, invalidInput("Unsupported course filter")
	}

	return c.courseRepo.List(ctx, token, repository.CourseFilter{
		Search:   input.Search,
		Category: input.Category,
		Level:    input.Level,
	})
}
