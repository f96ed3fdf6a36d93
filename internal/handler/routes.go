package handlers

import (
	"employabilityWeb/internal/middleware"
	"employabilityWeb/internal/models"
	"net/http"

	"github.com/gorilla/mux"
)

// Router registers every page. Admin pages bounce other roles to /login,
// lower-privilege pages bounce them home.
func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(h.NotFoundHandler)

	r.HandleFunc("/", h.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/login", h.LoginPageHandler).Methods(http.MethodGet)
	r.HandleFunc("/login", h.LoginHandler).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.LogoutHandler).Methods(http.MethodPost)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.RequireRole(h.Guard, "/login", models.RoleAdmin)))
	admin.HandleFunc("/jobs", h.AdminJobsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/jobs/{id}", h.AdminJobDetailHandler).Methods(http.MethodGet)
	admin.HandleFunc("/jobs/{id}/{action}", h.AdminJobActionHandler).Methods(http.MethodPost)
	admin.HandleFunc("/posts", h.AdminPostsHandler).Methods(http.MethodGet)
	admin.HandleFunc("/posts/{id}/{action}", h.AdminPostActionHandler).Methods(http.MethodPost)

	student := middleware.RequireRole(h.Guard, "/", models.RoleStudent)
	r.Handle("/courses", student(http.HandlerFunc(h.CoursesHandler))).Methods(http.MethodGet)
	r.Handle("/student/dashboard", student(http.HandlerFunc(h.StudentDashboardHandler))).Methods(http.MethodGet)

	jobs := middleware.RequireRole(h.Guard, "/", models.RoleStudent, models.RoleEmployer)
	r.Handle("/jobs", jobs(http.HandlerFunc(h.JobsHandler))).Methods(http.MethodGet)

	return r
}
