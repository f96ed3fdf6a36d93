package handlers

import (
	"context"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/repository"
	"employabilityWeb/internal/service"
	"employabilityWeb/internal/session"
	"employabilityWeb/internal/view"
	"net/http"
)

const coursesPath = "/courses"

type coursesData struct {
	Search       string
	Category     string
	Level        string
	Active       []filterLink
	Categories   []string
	Levels       []string
	Courses      []models.Course
	CountLabel   string
	Empty        bool
	EmptyMessage string
}

func courseFilter(q view.Query) repository.CourseFilter {
	return repository.CourseFilter{Search: q.Search, Category: q.Category, Level: q.Level}
}

// CoursesHandler renders the catalog exactly as the backend filtered it.
func (h *Handlers) CoursesHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	q := view.ParseQuery(r.URL.Query(), view.Query{})

	list := view.NewListView(func(ctx context.Context, q view.Query) ([]models.Course, error) {
		return h.CourseService.List(ctx, sess.Token, courseFilter(q))
	}, func(q view.Query) string {
		return service.CoursesEmptyMessage(courseFilter(q))
	})

	controller := view.NewController(q)

	p := page{Title: "Courses"}
	if err := list.Load(r.Context(), controller.Query()); err != nil {
		p.Error = userMessage(err)
	}
	state := list.State()

	data := coursesData{
		Search:       q.Search,
		Category:     q.Category,
		Level:        q.Level,
		Categories:   service.CourseCategories,
		Levels:       service.CourseLevels,
		Courses:      state.Items,
		CountLabel:   plural(state.Count, "course"),
		Empty:        state.Empty,
		EmptyMessage: state.EmptyMessage,
	}
	// each active filter gets a link that drops just that one
	if q.Search != "" {
		data.Active = append(data.Active, filterLink{Label: "Search: " + q.Search, URL: controller.SearchURL(coursesPath, "")})
	}
	if q.Category != "" {
		data.Active = append(data.Active, filterLink{Label: "Category: " + q.Category, URL: controller.CategoryURL(coursesPath, "")})
	}
	if q.Level != "" {
		data.Active = append(data.Active, filterLink{Label: "Level: " + q.Level, URL: controller.LevelURL(coursesPath, "")})
	}

	p.Data = data
	h.render(w, r, http.StatusOK, "courses.html", p)
}
