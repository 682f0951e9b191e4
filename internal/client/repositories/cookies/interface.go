package cookies

import (
	"context"
	"time"
)

// Cookie is one stored cookie. Host, Path and Name form the key.
type Cookie struct {
	Host     string
	Path     string
	Name     string
	Value    string
	HostOnly bool
	// Expires is zero for session cookies.
	Expires  time.Time
	Secure   bool
	HTTPOnly bool
	SameSite int
}

// Expired reports whether c has an expiry in the past relative to now.
func (c Cookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}

type Repository interface {
	Upsert(ctx context.Context, c Cookie) error
	Delete(ctx context.Context, host, path, name string) error
	List(ctx context.Context) ([]Cookie, error)
	DeleteExpired(ctx context.Context, now time.Time) error
	Clear(ctx context.Context) error
}
