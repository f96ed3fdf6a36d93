package handlers

import (
	"context"
	"employabilityWeb/internal/session"
	"employabilityWeb/internal/view"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// itemAction is one moderation action on one backend item.
type itemAction struct {
	dispatcher *view.Dispatcher
	kind       view.ActionKind
	itemID     string
	noun       string
	listPath   string
	perform    func(ctx context.Context, token, reason string) error
}

type confirmData struct {
	Heading       string
	Message       string
	ActionURL     string
	ReturnURL     string
	SubmitLabel   string
	NeedsReason   bool
	ReasonMissing bool
}

var actionLabels = map[view.ActionKind]string{
	view.ActionApprove: "Approve",
	view.ActionReject:  "Reject",
	view.ActionDelete:  "Delete",
	view.ActionHide:    "Hide",
	view.ActionUnhide:  "Unhide",
}

// runAction posts one action through the dispatcher. A missing confirmation or
// reason renders the confirm page and nothing is sent to the backend. Success
// redirects back to the list, which is the one re-fetch after the mutation.
func (h *Handlers) runAction(w http.ResponseWriter, r *http.Request, a itemAction) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	back := returnURL(r.PostForm.Get("return"), a.listPath)
	sess := session.FromContext(r.Context())
	action := view.Action{
		Kind:      a.kind,
		ItemID:    a.itemID,
		Confirmed: r.PostForm.Get("confirm") == "yes",
		Reason:    strings.TrimSpace(r.PostForm.Get("reason")),
	}

	ctx := withInvalidate(r.Context(), func() {
		http.Redirect(w, r, back, http.StatusSeeOther)
	})
	err := a.dispatcher.Dispatch(ctx, action, func(ctx context.Context) error {
		return a.perform(ctx, sess.Token, action.Reason)
	})

	switch {
	case err == nil:
		return
	case errors.Is(err, view.ErrNotConfirmed), errors.Is(err, view.ErrReasonRequired):
		label := actionLabels[a.kind]
		data := confirmData{
			Heading:     fmt.Sprintf("%s %s", label, a.noun),
			Message:     fmt.Sprintf("Are you sure you want to %s this %s?", strings.ToLower(label), a.noun),
			ActionURL:   r.URL.Path,
			ReturnURL:   back,
			SubmitLabel: label,
		}
		if errors.Is(err, view.ErrReasonRequired) {
			data.Message = fmt.Sprintf("Tell the owner why this %s is being rejected.", a.noun)
			data.NeedsReason = true
			data.ReasonMissing = r.PostForm.Has("reason")
		}
		h.render(w, r, http.StatusOK, "confirm.html", page{Title: data.Heading, Data: data})
	case errors.Is(err, view.ErrBusy):
		h.Sessions.AddFlash(w, r, fmt.Sprintf("This %s is already being updated.", a.noun))
		http.Redirect(w, r, back, http.StatusSeeOther)
	case errors.Is(err, view.ErrUnknownAction):
		http.NotFound(w, r)
	default:
		h.flashError(w, r, err)
		http.Redirect(w, r, back, http.StatusSeeOther)
	}
}
