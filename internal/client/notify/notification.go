// Package notify carries user-facing outcome messages (toasts) from the
// session store to whatever renders them.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Variant is the visual weight of a notification.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is one transient message reporting an operation outcome.
type Notification struct {
	ID          string    `json:"id"`
	Variant     Variant   `json:"variant"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// New builds a notification with a fresh ID and timestamp.
func New(variant Variant, title, description string) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Variant:     variant,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// Success is shorthand for a default-variant notification.
func Success(title, description string) Notification {
	return New(VariantDefault, title, description)
}

// Failure is shorthand for a destructive notification.
func Failure(title, description string) Notification {
	return New(VariantDestructive, title, description)
}

// IsDestructive reports whether n reports a failure.
func (n Notification) IsDestructive() bool {
	return n.Variant == VariantDestructive
}

// Notifier delivers notifications. Implementations must not block for long
// and must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }
