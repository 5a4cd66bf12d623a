// Package cli is the presentation layer: a REPL that renders snapshots of
// the core state and turns typed commands into intents. It holds no state of
// its own beyond the reader it consumes.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/siddharthpandey07/UserManage/internal/client/api"
	"github.com/siddharthpandey07/UserManage/internal/client/app"
	"github.com/siddharthpandey07/UserManage/internal/client/config"
	"github.com/siddharthpandey07/UserManage/internal/client/form"
	"github.com/siddharthpandey07/UserManage/internal/client/notify"
	"github.com/siddharthpandey07/UserManage/internal/logging"
)

type App struct {
	config *config.Config
	core   *app.App
	log    logging.Logger
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	client := api.NewHTTPClient(cfg.ServerEndpointAddr, log)
	notifier := notify.NewChannel(cfg.NotificationTTL)
	core := app.New(client, notifier, log)

	return &App{config: cfg, core: core, log: log}
}

// Run starts the core loop, loads the collection once, and hands control to
// the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.core.Run(ctx)
	a.core.Load(ctx)

	printlnFn("UserManage CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// status is rendered into the prompt: the open form state plus the current
// notification, if any.
func (a *App) status() string {
	v := a.core.Snapshot()

	s := ""
	switch v.FormState {
	case form.StateCreating:
		s = "creating"
	case form.StateEditing:
		s = fmt.Sprintf("editing %d", v.EditingID)
	}
	if n := v.Notification; n != nil {
		if s != "" {
			s += " | "
		}
		s += fmt.Sprintf("%s: %s", n.Severity, n.Message)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// --- commands -------------------------------------------------------------

func (a *App) List(ctx context.Context) error {
	renderUsers(a.core.Snapshot())
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	a.core.Load(ctx)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	a.core.OpenCreate()
	renderForm(a.core.Snapshot())
	return nil
}

func (a *App) Edit(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", rawID)
	}
	a.core.OpenEdit(id)
	renderForm(a.core.Snapshot())
	return nil
}

func (a *App) Set(ctx context.Context, path, value string) error {
	a.core.FieldChange(path, value)
	renderForm(a.core.Snapshot())
	return nil
}

func (a *App) Show(ctx context.Context) error {
	renderForm(a.core.Snapshot())
	return nil
}

func (a *App) Submit(ctx context.Context) error {
	a.core.Submit(ctx)
	return nil
}

func (a *App) CancelForm(ctx context.Context) error {
	a.core.Cancel()
	return nil
}

func (a *App) Delete(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", rawID)
	}
	a.core.Delete(ctx, id)
	return nil
}

func (a *App) Dismiss(ctx context.Context) error {
	a.core.DismissNotification()
	return nil
}
