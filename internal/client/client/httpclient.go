package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/net/publicsuffix"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// maxResponseBytes bounds how much of a response body is read. Avatar data
// URIs make user objects large, so this is generous.
const maxResponseBytes = 16 << 20

// HTTPClient implements Client against the JSON API at baseURL.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

// NewMemoryJar returns an in-memory jar with public-suffix aware domain rules.
func NewMemoryJar() *cookiejar.Jar {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}

// NewHTTPClient builds a client for baseURL. A nil jar means an in-memory
// one; a nil logger discards logs.
func NewHTTPClient(baseURL string, jar http.CookieJar, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q: scheme must be http or https", baseURL)
	}

	if jar == nil {
		jar = NewMemoryJar()
	}
	if logger == nil {
		logger = logging.Nop()
	}

	hc := cleanhttp.DefaultPooledClient()
	hc.Jar = jar

	return &HTTPClient{baseURL: u, http: hc, logger: logger.With("component", "api")}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type deleteRequest struct {
	Password string `json:"password"`
}

func (s *HTTPClient) Me(ctx context.Context) (models.User, error) {
	body, err := s.do(ctx, http.MethodGet, "/user/me", nil)
	if err != nil {
		return models.User{}, err
	}
	return decodeUser(body)
}

func (s *HTTPClient) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	body, err := s.do(ctx, http.MethodPost, "/user/login", loginRequest{Email: email, Password: string(password)})
	if err != nil {
		return models.User{}, err
	}
	return decodeUser(body)
}

func (s *HTTPClient) Register(ctx context.Context, username, email string, password []byte) (models.User, error) {
	req := registerRequest{Username: username, Email: email, Password: string(password)}
	body, err := s.do(ctx, http.MethodPost, "/user/register", req)
	if err != nil {
		return models.User{}, err
	}
	return decodeUser(body)
}

func (s *HTTPClient) UpdateUser(ctx context.Context, patch models.UserPatch) (models.UserFields, error) {
	body, err := s.do(ctx, http.MethodPatch, "/user", patch)
	if err != nil {
		return models.UserFields{}, err
	}
	return decodeUserFields(body)
}

func (s *HTTPClient) DeleteUser(ctx context.Context, password []byte) error {
	_, err := s.do(ctx, http.MethodDelete, "/user/delete", deleteRequest{Password: string(password)})
	return err
}

func (s *HTTPClient) Logout(ctx context.Context) error {
	_, err := s.do(ctx, http.MethodGet, "/user/logout", nil)
	return err
}

func (s *HTTPClient) Close() error {
	s.http.CloseIdleConnections()
	return nil
}

// do sends one JSON request and returns the body of a 2xx response.
func (s *HTTPClient) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL.JoinPath(path).String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := s.http.Do(req)
	if err != nil {
		s.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w: %w", method, path, ErrUnavailable, err)
	}

	s.logger.Debug(ctx, "request done",
		"method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}
