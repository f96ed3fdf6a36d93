package handlers

import (
	"context"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/service"
	"employabilityWeb/internal/session"
	"employabilityWeb/internal/view"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const adminJobsPath = "/admin/jobs"

type filterLink struct {
	Label  string
	URL    string
	Active bool
}

type jobCard struct {
	models.Job
	Busy bool
}

type adminJobsData struct {
	Filter       string
	Filters      []filterLink
	Jobs         []jobCard
	CountLabel   string
	Empty        bool
	EmptyMessage string
	ReturnURL    string
}

func (h *Handlers) AdminJobsHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	q := view.ParseQuery(r.URL.Query(), view.Query{Filter: models.JobStatusPending})
	q.Filter = service.NormalizeJobFilter(q.Filter)

	list := view.NewListView(func(ctx context.Context, q view.Query) ([]models.Job, error) {
		return h.JobService.List(ctx, sess.Token, q.Filter)
	}, func(q view.Query) string {
		return service.JobsEmptyMessage(q.Filter)
	})

	controller := view.NewController(q)

	p := page{Title: "Job moderation"}
	if err := list.Load(r.Context(), controller.Query()); err != nil {
		p.Error = userMessage(err)
	}
	state := list.State()

	data := adminJobsData{
		Filter:       q.Filter,
		Empty:        state.Empty,
		EmptyMessage: state.EmptyMessage,
		CountLabel:   plural(state.Count, "job"),
		ReturnURL:    q.URL(adminJobsPath),
	}
	for _, f := range service.JobFilters {
		data.Filters = append(data.Filters, filterLink{
			Label:  strings.ToUpper(f[:1]) + f[1:],
			URL:    controller.FilterURL(adminJobsPath, f),
			Active: f == q.Filter,
		})
	}
	for _, job := range state.Items {
		data.Jobs = append(data.Jobs, jobCard{Job: job, Busy: h.jobActions.Busy(job.JobID)})
	}

	p.Data = data
	h.render(w, r, http.StatusOK, "admin_jobs.html", p)
}

type adminJobData struct {
	Job       *models.Job
	Busy      bool
	BackURL   string
	ReturnURL string
}

func (h *Handlers) AdminJobDetailHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	jobID := mux.Vars(r)["id"]
	back := returnURL(r.URL.Query().Get("return"), adminJobsPath)

	job, err := h.JobService.Get(r.Context(), sess.Token, jobID)
	if err != nil {
		h.render(w, r, statusFor(err), "admin_job.html", page{
			Title: "Job",
			Error: userMessage(err),
			Data:  adminJobData{BackURL: back, ReturnURL: back},
		})
		return
	}

	h.render(w, r, http.StatusOK, "admin_job.html", page{
		Title: job.Title,
		Data: adminJobData{
			Job:       job,
			Busy:      h.jobActions.Busy(job.JobID),
			BackURL:   back,
			ReturnURL: back,
		},
	})
}

// AdminJobActionHandler serves POST /admin/jobs/{id}/{action}.
func (h *Handlers) AdminJobActionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobID := vars["id"]

	var perform func(ctx context.Context, token, reason string) error
	kind := view.ActionKind(vars["action"])
	switch kind {
	case view.ActionApprove:
		perform = func(ctx context.Context, token, _ string) error {
			return h.JobService.Approve(ctx, token, jobID)
		}
	case view.ActionReject:
		perform = func(ctx context.Context, token, reason string) error {
			return h.JobService.Reject(ctx, token, jobID, reason)
		}
	case view.ActionDelete:
		perform = func(ctx context.Context, token, _ string) error {
			return h.JobService.Delete(ctx, token, jobID)
		}
	default:
		http.NotFound(w, r)
		return
	}

	h.runAction(w, r, itemAction{
		dispatcher: h.jobActions,
		kind:       kind,
		itemID:     jobID,
		noun:       "job",
		listPath:   adminJobsPath,
		perform:    perform,
	})
}

type jobsData struct {
	Jobs         []models.Job
	CountLabel   string
	Empty        bool
	EmptyMessage string
}

// JobsHandler lists the open positions for students and employers.
func (h *Handlers) JobsHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	list := view.NewListView(func(ctx context.Context, q view.Query) ([]models.Job, error) {
		return h.JobService.List(ctx, sess.Token, q.Filter)
	}, func(view.Query) string {
		return "No open positions right now"
	})

	p := page{Title: "Jobs"}
	if err := list.Load(r.Context(), view.Query{Filter: models.JobStatusActive, Page: 1}); err != nil {
		p.Error = userMessage(err)
	}
	state := list.State()

	p.Data = jobsData{
		Jobs:         state.Items,
		CountLabel:   plural(state.Count, "job"),
		Empty:        state.Empty,
		EmptyMessage: state.EmptyMessage,
	}
	h.render(w, r, http.StatusOK, "jobs.html", p)
}
