package handlers

import (
	"employabilityWeb/internal/models"
	"employabilityWeb/internal/session"
	"log"
	"net/http"
	"strings"
)

type loginData struct {
	Email string
}

// HomeHandler sends a signed-in user to the page for their role.
func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	sess, outcome := h.Guard.Check(r)
	if outcome != session.Allowed {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, session.HomePath(sess), http.StatusSeeOther)
}

func (h *Handlers) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	if sess, outcome := h.Guard.Check(r); outcome == session.Allowed {
		http.Redirect(w, r, session.HomePath(sess), http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "login.html", page{Title: "Sign in", Data: loginData{}})
}

func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))

	sess, err := h.AuthService.Login(r.Context(), email, r.PostForm.Get("password"))
	if err != nil {
		log.Printf("login %s: %v", email, err)
		h.render(w, r, http.StatusUnauthorized, "login.html", page{
			Title: "Sign in",
			Error: userMessage(err),
			Data:  loginData{Email: email},
		})
		return
	}

	if err := h.Sessions.Save(w, r, *sess); err != nil {
		log.Printf("save session: %v", err)
		h.render(w, r, http.StatusInternalServerError, "login.html", page{
			Title: "Sign in",
			Error: "Could not start your session. Please try again.",
			Data:  loginData{Email: email},
		})
		return
	}

	http.Redirect(w, r, session.HomePath(sess), http.StatusSeeOther)
}

// LogoutHandler clears both session entries. The backend logout is best effort.
func (h *Handlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if sess, outcome := h.Guard.Check(r, models.RoleStudent, models.RoleEmployer, models.RoleAdmin); outcome == session.Allowed {
		if err := h.AuthService.Logout(r.Context(), sess.Token); err != nil {
			log.Printf("backend logout: %v", err)
		}
	}
	if err := h.Sessions.Clear(w, r); err != nil {
		log.Printf("clear session: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
