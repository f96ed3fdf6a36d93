package service

import (
	"context"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Login(ctx context.Context, req repository.LoginRequest) (*repository.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.LoginResponse), args.Error(1)
}

func (m *MockUserRepository) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockUserRepository) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) List(ctx context.Context, token, status string) ([]models.Job, error) {
	args := m.Called(ctx, token, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, token, jobID string) (*models.Job, error) {
	args := m.Called(ctx, token, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Approve(ctx context.Context, token, jobID string) error {
	return m.Called(ctx, token, jobID).Error(0)
}

func (m *MockJobRepository) Reject(ctx context.Context, token, jobID, reason string) error {
	return m.Called(ctx, token, jobID, reason).Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, token, jobID string) error {
	return m.Called(ctx, token, jobID).Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context, token string, page, limit int) (*repository.PostsPage, error) {
	args := m.Called(ctx, token, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PostsPage), args.Error(1)
}

func (m *MockPostRepository) ListReported(ctx context.Context, token string) ([]models.Post, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) SetHidden(ctx context.Context, token, postID string, hidden bool) error {
	return m.Called(ctx, token, postID, hidden).Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, token, postID string) error {
	return m.Called(ctx, token, postID).Error(0)
}

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) List(ctx context.Context, token string, filter repository.CourseFilter) ([]models.Course, error) {
	args := m.Called(ctx, token, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) ListMine(ctx context.Context, token string) ([]models.Enrollment, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Enrollment), args.Error(1)
}

type MockCertificateStorage struct {
	mock.Mock
}

func (m *MockCertificateStorage) CertificateURL(ctx context.Context, objectKey, fileName string) (string, error) {
	args := m.Called(ctx, objectKey, fileName)
	return args.String(0), args.Error(1)
}
