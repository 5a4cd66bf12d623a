// Package app wires the record store, form session and notification channel
// behind the render/intent boundary.
//
// All state lives behind a single event queue: every user intent and every
// remote-call completion is a function executed by the Run loop, one at a
// time, so the store and session are never mutated by two operations at
// once. Remote calls themselves run on their own goroutines, so issuing one
// does not block new intents, but exactly one completion resolves per
// initiated call and completions are serialized back through the same queue,
// applied independently and idempotently. There is no cancellation and no
// retry.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/siddharthpandey07/UserManage/internal/client/api"
	"github.com/siddharthpandey07/UserManage/internal/client/form"
	"github.com/siddharthpandey07/UserManage/internal/client/notify"
	"github.com/siddharthpandey07/UserManage/internal/client/store"
	"github.com/siddharthpandey07/UserManage/internal/logging"
	"github.com/siddharthpandey07/UserManage/internal/models"
)

// View is the immutable snapshot handed to the presentation layer.
type View struct {
	Users           []models.User
	FormState       form.State
	EditingID       int64
	Buffer          models.User
	Username        string // effective username presented for the form
	UsernameDerived bool
	Notification    *notify.Notification
	InFlight        int
}

type App struct {
	client   api.Client
	store    *store.Store
	session  *form.Session
	notifier *notify.Channel
	log      logging.Logger

	events   chan func()
	inFlight int

	// sessionGen increments on every open/close so a stale completion cannot
	// close a session the user has since replaced.
	sessionGen uint64
}

func New(client api.Client, notifier *notify.Channel, log logging.Logger) *App {
	return &App{
		client:   client,
		store:    store.New(),
		session:  form.NewSession(),
		notifier: notifier,
		log:      log,
		events:   make(chan func(), 64),
	}
}

// Run drains the event queue until ctx is cancelled. All state transitions
// happen on this goroutine.
func (a *App) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-a.events:
			fn()
		}
	}
}

func (a *App) post(fn func()) {
	a.events <- fn
}

// Snapshot returns the current view for rendering. It round-trips through
// the event queue, so Run must be active.
func (a *App) Snapshot() View {
	reply := make(chan View, 1)
	a.post(func() { reply <- a.view() })
	return <-reply
}

func (a *App) view() View {
	return View{
		Users:           a.store.Users(),
		FormState:       a.session.State(),
		EditingID:       a.session.EditingID(),
		Buffer:          a.session.Buffer(),
		Username:        a.session.EffectiveUsername(),
		UsernameDerived: a.session.UsernameDerived(),
		Notification:    a.notifier.Current(),
		InFlight:        a.inFlight,
	}
}

// --- intents -------------------------------------------------------------

// Load fetches the full remote collection and replaces the local one
// wholesale. On failure the collection stays whatever it was before.
func (a *App) Load(ctx context.Context) {
	a.post(func() { a.handleLoad(ctx) })
}

func (a *App) OpenCreate() {
	a.post(func() {
		a.session.OpenCreate()
		a.sessionGen++
	})
}

// OpenEdit starts editing the listed record with the given ID. Unknown IDs
// surface a failure notification rather than opening an empty form.
func (a *App) OpenEdit(id int64) {
	a.post(func() {
		u, ok := a.store.Get(id)
		if !ok {
			a.notifier.Failure(fmt.Sprintf("no user with id %d", id))
			return
		}
		a.session.OpenEdit(u)
		a.sessionGen++
	})
}

// FieldChange sets one edit-buffer field by path. Invalid paths are rejected
// without touching the buffer.
func (a *App) FieldChange(path, value string) {
	a.post(func() {
		if err := a.session.SetField(path, value); err != nil {
			a.log.Debug(context.Background(), "field change rejected", "path", path, "error", err)
		}
	})
}

// Submit validates the buffer and, when it passes, issues the create or
// update call. Validation failure blocks the call and leaves the session
// open; no notification is emitted for it.
func (a *App) Submit(ctx context.Context) {
	a.post(func() { a.handleSubmit(ctx) })
}

func (a *App) Cancel() {
	a.post(func() {
		a.session.Cancel()
		a.sessionGen++
	})
}

// Delete issues a delete call for the given record ID.
func (a *App) Delete(ctx context.Context, id int64) {
	a.post(func() { a.handleDelete(ctx, id) })
}

func (a *App) DismissNotification() {
	a.post(func() { a.notifier.Dismiss() })
}

// --- handlers (run on the loop goroutine) --------------------------------

func (a *App) handleLoad(ctx context.Context) {
	callID := uuid.NewString()
	a.inFlight++

	go func() {
		users, err := a.client.ListUsers(ctx)
		a.post(func() {
			a.inFlight--
			if err != nil {
				a.log.Warn(ctx, "load failed", "call_id", callID, "error", err)
				a.notifier.Failure(fmt.Sprintf("failed to load users: %v", err))
				return
			}
			a.store.Replace(users)
			a.notifier.Success(fmt.Sprintf("loaded %d users", len(users)))
		})
	}()
}

func (a *App) handleSubmit(ctx context.Context) {
	if err := a.session.Validate(); err != nil {
		a.log.Debug(ctx, "submission blocked", "error", err)
		return
	}

	payload := a.session.Payload()
	state := a.session.State()
	gen := a.sessionGen
	callID := uuid.NewString()
	a.inFlight++

	switch state {
	case form.StateCreating:
		go func() {
			created, err := a.client.CreateUser(ctx, payload)
			a.post(func() { a.completeCreate(ctx, callID, gen, created, err) })
		}()
	case form.StateEditing:
		go func() {
			updated, err := a.client.UpdateUser(ctx, payload.ID, payload)
			a.post(func() { a.completeUpdate(ctx, callID, gen, updated, err) })
		}()
	}
}

func (a *App) completeCreate(ctx context.Context, callID string, gen uint64, created models.User, err error) {
	a.inFlight--
	if err != nil {
		// The session stays open with the buffer intact so the user can
		// retry or cancel.
		a.log.Warn(ctx, "create failed", "call_id", callID, "error", err)
		a.notifier.Failure(fmt.Sprintf("failed to create user: %v", err))
		return
	}

	a.store.ApplyCreate(created)
	a.closeSessionIfCurrent(gen)
	a.notifier.Success(fmt.Sprintf("user %q created", created.Name))
	a.log.Info(ctx, "user created", "call_id", callID, "id", created.ID)
}

func (a *App) completeUpdate(ctx context.Context, callID string, gen uint64, updated models.User, err error) {
	a.inFlight--
	if err != nil {
		a.log.Warn(ctx, "update failed", "call_id", callID, "error", err)
		a.notifier.Failure(fmt.Sprintf("failed to update user: %v", err))
		return
	}

	a.store.ApplyUpdate(updated)
	a.closeSessionIfCurrent(gen)
	a.notifier.Success(fmt.Sprintf("user %q updated", updated.Name))
	a.log.Info(ctx, "user updated", "call_id", callID, "id", updated.ID)
}

func (a *App) handleDelete(ctx context.Context, id int64) {
	callID := uuid.NewString()
	a.inFlight++

	go func() {
		err := a.client.DeleteUser(ctx, id)
		a.post(func() {
			a.inFlight--
			if err != nil {
				// The entry stays listed.
				a.log.Warn(ctx, "delete failed", "call_id", callID, "id", id, "error", err)
				a.notifier.Failure(fmt.Sprintf("failed to delete user: %v", err))
				return
			}
			a.store.ApplyDelete(id)
			a.notifier.Success("user deleted")
			a.log.Info(ctx, "user deleted", "call_id", callID, "id", id)
		})
	}()
}

// closeSessionIfCurrent closes the form after a confirmed success, unless
// the user already cancelled or opened another session while the call was in
// flight.
func (a *App) closeSessionIfCurrent(gen uint64) {
	if a.sessionGen != gen {
		return
	}
	a.session.Cancel()
	a.sessionGen++
}
