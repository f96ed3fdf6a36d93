package handlers

import (
	"employabilityWeb/internal/service"
	"employabilityWeb/internal/session"
	"net/http"
)

func (h *Handlers) StudentDashboardHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	dashboard, err := h.DashboardService.Load(r.Context(), sess.Token)
	if err != nil {
		h.render(w, r, http.StatusOK, "dashboard.html", page{
			Title: "My learning",
			Error: userMessage(err),
			Data:  &service.Dashboard{},
		})
		return
	}

	h.render(w, r, http.StatusOK, "dashboard.html", page{Title: "My learning", Data: dashboard})
}
