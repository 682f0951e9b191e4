package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/client/oauth"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Login prompts for email and password and signs in through the session
// store. The outcome is reported by the store's notifier; on success the
// profile is printed. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.checkForm(loginForm{Email: email, Password: password}); err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		return err
	}

	a.printProfile()
	return nil
}

// Register prompts for username, email and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password (at least 6 characters)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.checkForm(registerForm{Username: username, Email: email, Password: password}); err != nil {
		return err
	}

	if err := a.session.Register(ctx, username, email, password); err != nil {
		return err
	}

	a.printProfile()
	return nil
}

// Logout ends the session and returns to the welcome screen. A failed API
// call still signs the user out locally and forgets the stored cookies.
func (a *App) Logout(ctx context.Context) error {
	err := a.session.Logout(ctx)
	a.forgetCookies(ctx)
	a.printWelcome()
	return err
}

// OAuth prints the address that starts a sign-in with the given provider.
func (a *App) OAuth(_ context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Usage: oauth <google|github|twitter>")
		return errors.New("missing provider")
	}

	p, err := oauth.ParseProvider(args[0])
	if err != nil {
		a.println(err.Error())
		return err
	}

	u, err := oauth.AuthURL(a.config.APIURL, p, a.config.CallbackURL)
	if err != nil {
		a.println(err.Error())
		return err
	}

	a.println("Open this address in your browser to continue with " + p.Title() + ":")
	a.println("  " + u)
	a.println("If you are sent back with a message, paste the address with: notice <url>")
	return nil
}

// Notice shows the message carried by an OAuth redirect address.
func (a *App) Notice(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Usage: notice <url>")
		return errors.New("missing url")
	}

	n, ok := oauth.NoticeFromURL(args[0])
	if !ok {
		a.println("No message found in that address.")
		return nil
	}
	a.notifier.Notify(ctx, n)
	return nil
}
