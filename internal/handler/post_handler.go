package handlers

import (
	"context"
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/service"
	"employabilityWeb/internal/session"
	"employabilityWeb/internal/view"
	"net/http"

	"github.com/gorilla/mux"
)

const adminPostsPath = "/admin/posts"

type postCard struct {
	models.Post
	Busy bool
}

type adminPostsData struct {
	Tab          string
	Tabs         []filterLink
	Posts        []postCard
	CountLabel   string
	Empty        bool
	EmptyMessage string
	ReturnURL    string
	Paged        bool
	Pager        pager
}

func (h *Handlers) AdminPostsHandler(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	q := view.ParseQuery(r.URL.Query(), view.Query{Tab: service.PostTabAll})
	q.Tab = service.NormalizePostTab(q.Tab)

	list := view.NewListView(func(ctx context.Context, q view.Query) ([]models.Post, error) {
		return h.PostService.List(ctx, sess.Token, q.Tab, q.Page)
	}, func(q view.Query) string {
		return service.PostsEmptyMessage(q.Tab, q.Page)
	})
	controller := view.NewController(q)

	p := page{Title: "Post moderation"}
	if err := list.Load(r.Context(), controller.Query()); err != nil {
		p.Error = userMessage(err)
	}
	state := list.State()

	data := adminPostsData{
		Tab:          q.Tab,
		CountLabel:   plural(state.Count, "post"),
		Empty:        state.Empty,
		EmptyMessage: state.EmptyMessage,
		ReturnURL:    q.URL(adminPostsPath),
		// the reported queue comes back whole
		Paged: q.Tab == service.PostTabAll,
		Pager: newPager(controller, adminPostsPath),
	}
	for _, tab := range []struct{ value, label string }{
		{service.PostTabAll, "All posts"},
		{service.PostTabReported, "Reported"},
	} {
		data.Tabs = append(data.Tabs, filterLink{
			Label:  tab.label,
			URL:    controller.TabURL(adminPostsPath, tab.value),
			Active: tab.value == q.Tab,
		})
	}
	for _, post := range state.Items {
		data.Posts = append(data.Posts, postCard{Post: post, Busy: h.postActions.Busy(post.PostID)})
	}

	p.Data = data
	h.render(w, r, http.StatusOK, "admin_posts.html", p)
}

// AdminPostActionHandler serves POST /admin/posts/{id}/{action}.
func (h *Handlers) AdminPostActionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID := vars["id"]

	var perform func(ctx context.Context, token, reason string) error
	kind := view.ActionKind(vars["action"])
	switch kind {
	case view.ActionHide, view.ActionUnhide:
		hidden := kind == view.ActionHide
		perform = func(ctx context.Context, token, _ string) error {
			return h.PostService.SetHidden(ctx, token, postID, hidden)
		}
	case view.ActionDelete:
		perform = func(ctx context.Context, token, _ string) error {
			return h.PostService.Delete(ctx, token, postID)
		}
	default:
		http.NotFound(w, r)
		return
	}

	h.runAction(w, r, itemAction{
		dispatcher: h.postActions,
		kind:       kind,
		itemID:     postID,
		noun:       "post",
		listPath:   adminPostsPath,
		perform:    perform,
	})
}
