// Package notify implements the transient operation-outcome message shown to
// the user. At most one notification is visible at a time; a newly emitted
// one replaces the current one and restarts the visibility window. Expiry is
// evaluated lazily against the channel's clock, so there is no timer
// goroutine to manage.
package notify

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityFailure Severity = "failure"
)

// Notification is one visible message with its expiry instant.
type Notification struct {
	Message      string
	Severity     Severity
	VisibleUntil time.Time
}

type Channel struct {
	ttl     time.Duration
	now     func() time.Time
	current *Notification
}

// NewChannel returns a channel whose notifications stay visible for ttl.
func NewChannel(ttl time.Duration) *Channel {
	return &Channel{ttl: ttl, now: time.Now}
}

// NewChannelWithClock is NewChannel with an injectable clock, for tests.
func NewChannelWithClock(ttl time.Duration, now func() time.Time) *Channel {
	return &Channel{ttl: ttl, now: now}
}

// Emit makes (message, severity) the visible notification, replacing any
// prior one and resetting its timeout.
func (c *Channel) Emit(message string, severity Severity) {
	c.current = &Notification{
		Message:      message,
		Severity:     severity,
		VisibleUntil: c.now().Add(c.ttl),
	}
}

// Success emits a success notification.
func (c *Channel) Success(message string) {
	c.Emit(message, SeveritySuccess)
}

// Failure emits a failure notification.
func (c *Channel) Failure(message string) {
	c.Emit(message, SeverityFailure)
}

// Dismiss hides the current notification immediately.
func (c *Channel) Dismiss() {
	c.current = nil
}

// Current returns the visible notification, or nil once it has been
// dismissed or its window has elapsed.
func (c *Channel) Current() *Notification {
	if c.current == nil {
		return nil
	}
	if !c.now().Before(c.current.VisibleUntil) {
		c.current = nil
		return nil
	}
	n := *c.current
	return &n
}
