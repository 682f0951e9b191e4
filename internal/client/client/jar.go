package client

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/dmitrijs2005/gophauth/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// CookieStore is the persistence the jar writes through to.
type CookieStore interface {
	Load(ctx context.Context) ([]cookies.Cookie, error)
	Apply(ctx context.Context, set []cookies.Cookie, drop []cookies.Cookie) error
	Clear(ctx context.Context) error
}

// PersistentJar is an http.CookieJar that mirrors every cookie it accepts
// into a CookieStore and replays stored cookies when created. Persistence
// failures are logged; they never fail the request that carried the cookie.
//
// Cookies without an expiry are kept across restarts, the way a browser that
// restores its previous session does. Reset forgets them.
type PersistentJar struct {
	mu     sync.Mutex
	jar    *cookiejar.Jar
	store  CookieStore
	logger logging.Logger
	now    func() time.Time
}

// NewPersistentJar loads stored cookies into a fresh in-memory jar.
func NewPersistentJar(ctx context.Context, store CookieStore, logger logging.Logger) (*PersistentJar, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	j := &PersistentJar{
		jar:    NewMemoryJar(),
		store:  store,
		logger: logger.With("component", "cookiejar"),
		now:    time.Now,
	}

	stored, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range stored {
		j.jar.SetCookies(replayURL(c), []*http.Cookie{toHTTPCookie(c)})
	}
	j.logger.Debug(ctx, "cookies restored", "count", len(stored))
	return j, nil
}

func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.jar.Cookies(u)
}

func (j *PersistentJar) SetCookies(u *url.URL, cs []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.jar.SetCookies(u, cs)

	now := j.now()
	var set, drop []cookies.Cookie
	for _, hc := range cs {
		if !domainAllowed(u.Hostname(), hc.Domain) {
			j.logger.Warn(context.Background(), "cookie rejected", "host", u.Hostname(), "domain", hc.Domain, "name", hc.Name)
			continue
		}
		c := fromHTTPCookie(u, hc, now)
		if hc.MaxAge < 0 || c.Expired(now) {
			drop = append(drop, c)
			continue
		}
		set = append(set, c)
	}
	if len(set) == 0 && len(drop) == 0 {
		return
	}

	if err := j.store.Apply(context.Background(), set, drop); err != nil {
		j.logger.Warn(context.Background(), "cookie persistence failed", "host", u.Hostname(), "error", err)
	}
}

// Reset drops every cookie from memory and from the store.
func (j *PersistentJar) Reset(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.jar = NewMemoryJar()
	if err := j.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear cookies: %w", err)
	}
	return nil
}

// domainAllowed applies the cookiejar's Domain attribute rules: the request
// host must domain-match and the domain must not be a public suffix.
func domainAllowed(host, domain string) bool {
	host = strings.ToLower(host)
	domain = strings.TrimPrefix(strings.ToLower(domain), ".")
	if domain == "" || host == domain {
		return true
	}
	if net.ParseIP(host) != nil {
		return false
	}
	if !strings.HasSuffix(host, "."+domain) {
		return false
	}
	if ps, _ := publicsuffix.PublicSuffix(domain); ps == domain {
		return false
	}
	return true
}

func fromHTTPCookie(u *url.URL, hc *http.Cookie, now time.Time) cookies.Cookie {
	c := cookies.Cookie{
		Host:     u.Hostname(),
		Path:     hc.Path,
		Name:     hc.Name,
		Value:    hc.Value,
		HostOnly: true,
		Secure:   hc.Secure,
		HTTPOnly: hc.HttpOnly,
		SameSite: int(hc.SameSite),
	}
	if d := strings.TrimPrefix(strings.ToLower(hc.Domain), "."); d != "" {
		c.Host = d
		c.HostOnly = false
	}
	if c.Path == "" || !strings.HasPrefix(c.Path, "/") {
		c.Path = defaultPath(u.Path)
	}
	switch {
	case hc.MaxAge > 0:
		c.Expires = now.Add(time.Duration(hc.MaxAge) * time.Second)
	case !hc.Expires.IsZero():
		c.Expires = hc.Expires
	}
	return c
}

func toHTTPCookie(c cookies.Cookie) *http.Cookie {
	hc := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HTTPOnly,
		SameSite: http.SameSite(c.SameSite),
	}
	if !c.HostOnly {
		hc.Domain = c.Host
	}
	return hc
}

func replayURL(c cookies.Cookie) *url.URL {
	scheme := "http"
	if c.Secure {
		scheme = "https"
	}
	return &url.URL{Scheme: scheme, Host: c.Host, Path: c.Path}
}

// defaultPath is the RFC 6265 default-path of a request path.
func defaultPath(p string) string {
	if p == "" || p[0] != '/' {
		return "/"
	}
	i := strings.LastIndex(p, "/")
	if i == 0 {
		return "/"
	}
	return p[:i]
}
