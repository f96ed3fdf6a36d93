package service

import (
	"context"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/repository"
	"employabilityWeb/internal/storage"
	"log"

	"golang.org/x/sync/errgroup"
)

type EnrollmentView struct {
	models.Enrollment
	CertificateURL string
}

type DashboardSummary struct {
	Enrolled        int
	Completed       int
	InProgress      int
	AverageProgress int
}

type Dashboard struct {
	Profile     *models.Profile
	Enrollments []EnrollmentView
	Summary     DashboardSummary
}

type DashboardService interface {
	Load(ctx context.Context, token string) (*Dashboard, error)
}

type dashboardService struct {
	userRepo       repository.UserRepository
	enrollmentRepo repository.EnrollmentRepository
	certificates   storage.CertificateStorage
}

func NewDashboardService(userRepo repository.UserRepository, enrollmentRepo repository.EnrollmentRepository, certificates storage.CertificateStorage) DashboardService {
	return &dashboardService{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		certificates:   certificates,
	}
}

// Load fetches the profile and the enrollments in parallel.
func (d *dashboardService) Load(ctx context.Context, token string) (*Dashboard, error) {
	var (
		profile     *models.Profile
		enrollments []models.Enrollment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = d.userRepo.GetProfile(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		enrollments, err = d.enrollmentRepo.ListMine(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]EnrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		views = append(views, EnrollmentView{Enrollment: e, CertificateURL: d.certificateURL(ctx, e)})
	}

	return &Dashboard{
		Profile:     profile,
		Enrollments: views,
		Summary:     summarize(enrollments),
	}, nil
}

func (d *dashboardService) certificateURL(ctx context.Context, e models.Enrollment) string {
	if d.certificates == nil || e.Certificate == nil || e.Certificate.ObjectKey == "" {
		return ""
	}
	link, err := d.certificates.CertificateURL(ctx, e.Certificate.ObjectKey, e.Course.Title+" certificate.pdf")
	if err != nil {
		log.Printf("certificate link for enrollment %s: %v", e.EnrollmentID, err)
		return ""
	}
	return link
}

func summarize(enrollments []models.Enrollment) DashboardSummary {
	summary := DashboardSummary{Enrolled: len(enrollments)}
	if len(enrollments) == 0 {
		return summary
	}

	total := 0
	for _, e := range enrollments {
		progress := min(max(e.Progress, 0), 100)
		total += progress
		if e.Completed {
			summary.Completed++
		} else {
			summary.InProgress++
		}
	}
	summary.AverageProgress = total / len(enrollments)
	return summary
}
