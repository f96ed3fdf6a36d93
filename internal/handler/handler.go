package handlers

import (
	"employabilityWeb/internal/config"
	"employabilityWeb/internal/service"
	"employabilityWeb/internal/session"
	"employabilityWeb/internal/view"
)

type Handlers struct {
	AuthService      service.AuthService
	JobService       service.JobService
	PostService      service.PostService
	CourseService    service.CourseService
	DashboardService service.DashboardService
	Guard            *session.Guard
	Sessions         *session.Store
	Cfg              *config.Config

	// dispatchers live as long as the server so busy flags cover concurrent requests
	jobActions  *view.Dispatcher
	postActions *view.Dispatcher
	pages       *renderer
}

func NewHandlers(service *service.Service, guard *session.Guard, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:      service.Auth,
		JobService:       service.Job,
		PostService:      service.Post,
		CourseService:    service.Course,
		DashboardService: service.Dashboard,
		Guard:            guard,
		Sessions:         guard.Store(),
		Cfg:              config,
		jobActions:       view.NewDispatcher(redirectInvalidator, nil),
		postActions:      view.NewDispatcher(redirectInvalidator, nil),
		pages:            newRenderer(),
	}
}
