package cli

import (
	"fmt"

	"github.com/siddharthpandey07/UserManage/internal/client/app"
	"github.com/siddharthpandey07/UserManage/internal/client/form"
)

func renderUsers(v app.View) {
	renderNotification(v)
	if len(v.Users) == 0 {
		printlnFn("No users.")
		return
	}
	printlnFn(fmt.Sprintf("%-5s %-22s %-16s %-24s %-14s", "ID", "NAME", "USERNAME", "EMAIL", "CITY"))
	for _, u := range v.Users {
		printlnFn(fmt.Sprintf("%-5d %-22s %-16s %-24s %-14s",
			u.ID, u.Name, u.Username, u.Email, u.Address.City))
	}
}

func renderForm(v app.View) {
	renderNotification(v)
	switch v.FormState {
	case form.StateClosed:
		printlnFn("No open form.")
		return
	case form.StateCreating:
		printlnFn("New user:")
	case form.StateEditing:
		printlnFn(fmt.Sprintf("Editing user %d:", v.EditingID))
	}

	username := v.Username
	if v.UsernameDerived {
		username += " (derived, read-only)"
	}

	fields := []struct {
		path  string
		value string
	}{
		{"name", v.Buffer.Name},
		{"username", username},
		{"email", v.Buffer.Email},
		{"phone", v.Buffer.Phone},
		{"website", v.Buffer.Website},
		{"address.street", v.Buffer.Address.Street},
		{"address.city", v.Buffer.Address.City},
		{"company.name", v.Buffer.Company.Name},
	}
	for _, f := range fields {
		printlnFn(fmt.Sprintf("  %-16s %s", f.path, f.value))
	}
}

func renderNotification(v app.View) {
	if v.Notification == nil {
		return
	}
	printlnFn(fmt.Sprintf("[%s] %s", v.Notification.Severity, v.Notification.Message))
}
