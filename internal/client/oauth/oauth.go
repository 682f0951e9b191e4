// Package oauth builds the navigational links that start a third-party
// sign-in on the API. The handshake itself happens entirely on the server.
package oauth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/notify"
)

// Provider identifies a supported OAuth provider.
type Provider string

const (
	ProviderGoogle  Provider = "google"
	ProviderGitHub  Provider = "github"
	ProviderTwitter Provider = "twitter"
)

var ErrUnknownProvider = errors.New("unknown oauth provider")

// Providers lists the supported providers in display order.
func Providers() []Provider {
	return []Provider{ProviderGoogle, ProviderGitHub, ProviderTwitter}
}

// Title is the provider's display name.
func (p Provider) Title() string {
	switch p {
	case ProviderGoogle:
		return "Google"
	case ProviderGitHub:
		return "GitHub"
	case ProviderTwitter:
		return "Twitter"
	default:
		return string(p)
	}
}

// ParseProvider accepts a provider name in any case.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Providers() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownProvider)
}

// AuthURL returns <apiURL>/auth/<provider>?callback=<callback>.
func AuthURL(apiURL string, p Provider, callback string) (string, error) {
	base, err := url.Parse(strings.TrimRight(apiURL, "/"))
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("api url %q must be absolute", apiURL)
	}

	u := base.JoinPath("auth", string(p))
	q := url.Values{}
	q.Set("callback", callback)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// NoticeFromURL reads the err and message query parameters the API appends
// when it redirects back after an OAuth attempt. err wins over message.
func NoticeFromURL(raw string) (notify.Notification, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return notify.Notification{}, false
	}

	q := u.Query()
	if e := q.Get("err"); e != "" {
		return notify.Failure("Notice", e), true
	}
	if m := q.Get("message"); m != "" {
		return notify.Success("Notice", m), true
	}
	return notify.Notification{}, false
}
