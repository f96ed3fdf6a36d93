package view

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotConfirmed   = errors.New("view: action not confirmed")
	ErrReasonRequired = errors.New("view: a reason is required")
	ErrBusy           = errors.New("view: action already in progress for this item")
	ErrUnknownAction  = errors.New("view: unknown action")
)

type ActionKind string

const (
	ActionApprove ActionKind = "approve"
	ActionReject  ActionKind = "reject"
	ActionDelete  ActionKind = "delete"
	ActionHide    ActionKind = "hide"
	ActionUnhide  ActionKind = "unhide"
)

// Policy says what the user must supply before an action may run.
type Policy struct {
	Confirm bool
	Reason  bool
}

// DefaultPolicies: every state change is confirmed, rejection also needs a reason.
var DefaultPolicies = map[ActionKind]Policy{
	ActionApprove: {Confirm: true},
	ActionReject:  {Reason: true},
	ActionDelete:  {Confirm: true},
	ActionHide:    {Confirm: true},
	ActionUnhide:  {Confirm: true},
}

type Action struct {
	Kind      ActionKind
	ItemID    string
	Confirmed bool
	Reason    string
}

// Invalidator is told to re-fetch once a mutation succeeded.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type InvalidatorFunc func(ctx context.Context) error

func (f InvalidatorFunc) Invalidate(ctx context.Context) error {
	return f(ctx)
}

// Dispatcher runs single-item mutations against the backend and invalidates
// the list afterwards. Busy flags are keyed by item id.
type Dispatcher struct {
	policies map[ActionKind]Policy
	list     Invalidator

	mu   sync.Mutex
	busy map[string]bool
}

func NewDispatcher(list Invalidator, policies map[ActionKind]Policy) *Dispatcher {
	if policies == nil {
		policies = DefaultPolicies
	}
	return &Dispatcher{
		policies: policies,
		list:     list,
		busy:     make(map[string]bool),
	}
}

func (d *Dispatcher) Busy(itemID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busy[itemID]
}

// Dispatch checks the action's policy, runs perform and on success invalidates
// the list exactly once. A failed perform leaves the list untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, action Action, perform func(ctx context.Context) error) error {
	policy, ok := d.policies[action.Kind]
	if !ok {
		return ErrUnknownAction
	}
	if policy.Confirm && !action.Confirmed {
		return ErrNotConfirmed
	}
	if policy.Reason && strings.TrimSpace(action.Reason) == "" {
		return ErrReasonRequired
	}

	d.mu.Lock()
	if d.busy[action.ItemID] {
		d.mu.Unlock()
		return ErrBusy
	}
	d.busy[action.ItemID] = true
	d.mu.Unlock()

	err := perform(ctx)

	d.mu.Lock()
	delete(d.busy, action.ItemID)
	d.mu.Unlock()

	if err != nil {
		return err
	}
	if d.list == nil {
		return nil
	}
	return d.list.Invalidate(ctx)
}
