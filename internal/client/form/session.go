// Package form holds the transient edit buffer for one user record.
//
// A Session is a three-state machine: Closed, Creating, Editing(id). The edit
// buffer is always a copy, never an alias of a store entry, so in-progress
// edits cannot leak into the displayed collection before the service confirms
// them. Closing after a submit is the caller's job and must happen only once
// the service call succeeds.
package form

import (
	"errors"
	"fmt"

	"github.com/siddharthpandey07/UserManage/internal/apperror"
	"github.com/siddharthpandey07/UserManage/internal/models"
)

type State string

const (
	StateClosed   State = "closed"
	StateCreating State = "creating"
	StateEditing  State = "editing"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrClosed       = errors.New("no open form session")
)

// MinFieldLength applies to name, username and a non-empty company name.
const MinFieldLength = 3

type Session struct {
	state  State
	editID int64
	buffer models.User

	// usernameExplicit records whether a username was supplied by the user in
	// this session, or was already present on the record being edited. Once
	// set it stays set: the derived form never overwrites an explicit value.
	usernameExplicit bool
}

func NewSession() *Session {
	return &Session{state: StateClosed}
}

func (s *Session) State() State { return s.state }

// EditingID returns the ID of the record being edited; zero unless Editing.
func (s *Session) EditingID() int64 { return s.editID }

// OpenCreate starts a create session with an empty buffer.
func (s *Session) OpenCreate() {
	s.state = StateCreating
	s.editID = 0
	s.buffer = models.User{}
	s.usernameExplicit = false
}

// OpenEdit starts an edit session seeded with a copy of u. An existing
// username on the record counts as explicit and is preserved verbatim unless
// the user changes it later.
func (s *Session) OpenEdit(u models.User) {
	s.state = StateEditing
	s.editID = u.ID
	s.buffer = u
	s.usernameExplicit = u.Username != ""
}

// Cancel closes the session and discards the buffer unconditionally.
func (s *Session) Cancel() {
	s.state = StateClosed
	s.editID = 0
	s.buffer = models.User{}
	s.usernameExplicit = false
}

// SetField updates one buffer field addressed by its path. Dotted paths
// address the two nested groups only; an unrecognized field or group leaves
// the buffer untouched and returns ErrUnknownField.
func (s *Session) SetField(path, value string) error {
	if s.state == StateClosed {
		return ErrClosed
	}

	switch path {
	case "name":
		s.buffer.Name = value
	case "email":
		s.buffer.Email = value
	case "phone":
		s.buffer.Phone = value
	case "website":
		s.buffer.Website = value
	case "username":
		// An explicit username wins over derivation for the rest of the
		// session, even if the name changes afterwards.
		s.buffer.Username = value
		s.usernameExplicit = true
	case "address.street":
		s.buffer.Address.Street = value
	case "address.city":
		s.buffer.Address.City = value
	case "company.name":
		s.buffer.Company.Name = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, path)
	}
	return nil
}

// UsernameDerived reports whether the username is still in derived mode.
// The presentation layer renders the username widget disabled while true.
func (s *Session) UsernameDerived() bool {
	return s.state != StateClosed && !s.usernameExplicit
}

// EffectiveUsername is the value presented (and submitted) for the username
// field: the explicit value when one exists, otherwise the form derived from
// the current name.
func (s *Session) EffectiveUsername() string {
	if s.usernameExplicit {
		return s.buffer.Username
	}
	return models.DeriveUsername(s.buffer.Name)
}

// Buffer returns a copy of the raw edit buffer.
func (s *Session) Buffer() models.User {
	return s.buffer
}

// Payload returns the buffer as it would be submitted, with the effective
// username resolved and, for an edit session, the record's ID attached.
func (s *Session) Payload() models.User {
	p := s.buffer
	p.Username = s.EffectiveUsername()
	p.ID = s.editID
	return p
}

// Validate gates submission: name, email, phone, username, street and city
// must be non-empty; name, username and a non-empty company name must be at
// least MinFieldLength characters. The username checked is the effective one.
func (s *Session) Validate() error {
	if s.state == StateClosed {
		return ErrClosed
	}

	p := s.Payload()

	required := []struct {
		path  string
		value string
	}{
		{"name", p.Name},
		{"email", p.Email},
		{"phone", p.Phone},
		{"username", p.Username},
		{"address.street", p.Address.Street},
		{"address.city", p.Address.City},
	}
	for _, f := range required {
		if f.value == "" {
			return apperror.ValidationFailed(f.path, fmt.Sprintf("%s is required", f.path))
		}
	}

	minLength := []struct {
		path  string
		value string
	}{
		{"name", p.Name},
		{"username", p.Username},
		{"company.name", p.Company.Name},
	}
	for _, f := range minLength {
		if f.value != "" && len(f.value) < MinFieldLength {
			return apperror.ValidationFailed(f.path,
				fmt.Sprintf("%s must be at least %d characters", f.path, MinFieldLength))
		}
	}

	return nil
}
