package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/notify"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/filex"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

const (
	sessionDBName     = "session.db"
	notificationLimit = 50
)

type App struct {
	config   *config.Config
	session  *services.SessionStore
	notifier notify.Notifier
	notes    *notify.Recorder
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	closers  []func() error

	resetCookies func(ctx context.Context) error
}

// NewApp opens the session database under cfg.DataDir and builds the API
// client and session store on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, sessionDBName))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	jar, err := client.NewPersistentJar(ctx, cookies.NewStore(db), logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIURL, jar, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	notes := notify.NewRecorder(notificationLimit)
	notifier := notify.Fanout{notify.NewWriterNotifier(os.Stdout), notes}

	session := services.NewSessionStore(apiClient, notifier,
		services.WithLogger(logger),
		services.WithMaxAvatarBytes(c.MaxAvatarBytes))

	return &App{
		config:   c,
		session:  session,
		notifier: notifier,
		notes:    notes,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closers:  []func() error{apiClient.Close, db.Close},

		resetCookies: jar.Reset,
	}, nil
}

// Run restores the previous session and then serves the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	if a.session.Bootstrap(ctx) {
		a.printProfile()
	} else {
		a.printWelcome()
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close(ctx context.Context) {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	if err := errors.Join(errs...); err != nil {
		a.logger.Warn(ctx, "shutdown", "error", err)
	}
}

// forgetCookies drops the stored session cookies so the next start does not
// restore a session the user ended.
func (a *App) forgetCookies(ctx context.Context) {
	if a.resetCookies == nil {
		return
	}
	if err := a.resetCookies(ctx); err != nil {
		a.logger.Warn(ctx, "forget cookies", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if a.session.IsLoading() {
		return "(loading)"
	}
	if u, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
