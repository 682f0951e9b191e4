package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Profile prints the current user.
func (a *App) Profile(_ context.Context) error {
	a.printProfile()
	return nil
}

// Edit prompts for a new username and saves it. An empty answer or the
// current name leaves the profile untouched.
func (a *App) Edit(ctx context.Context) error {
	u, ok := a.session.User()
	if !ok {
		return nil
	}

	username, err := getSimpleText(a.reader, "New username (current: "+u.Username+", empty to keep)", a.out)
	if err != nil {
		return err
	}
	if username == "" || username == u.Username {
		a.println("Nothing to change.")
		return nil
	}

	if err := a.checkForm(editForm{Username: username}); err != nil {
		return err
	}

	if err := a.session.UpdateUser(ctx, models.UserPatch{Username: &username}); err != nil {
		return err
	}
	a.println("Profile updated.")
	return nil
}

// Avatar uploads the image at args[0], prompting for a path when none is
// given.
func (a *App) Avatar(ctx context.Context, args []string) error {
	var path string
	if len(args) > 0 {
		path = strings.Join(args, " ")
	} else {
		p, err := getSimpleText(a.reader, "Path to image file", a.out)
		if err != nil {
			return err
		}
		path = p
	}
	if path == "" {
		a.println("Nothing to upload.")
		return nil
	}

	if err := a.session.UpdateAvatar(ctx, path); err != nil {
		return err
	}
	a.println("Profile picture updated.")
	return nil
}

// Delete asks for the password and deletes the account. A failure is shown
// inline as well as through the notifier.
func (a *App) Delete(ctx context.Context) error {
	a.println("This permanently deletes your account and all associated data.")

	password, err := getPassword("Enter your password to confirm", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.checkForm(deleteForm{Password: password}); err != nil {
		return err
	}

	if err := a.session.DeleteAccount(ctx, password); err != nil {
		a.println("Error: " + err.Error())
		return err
	}

	a.forgetCookies(ctx)
	a.printWelcome()
	return nil
}

func (a *App) printProfile() {
	u, ok := a.session.User()
	if !ok {
		return
	}

	a.println()
	a.println("Profile")
	a.println("Manage your account information")
	a.println()
	a.printf("  %-16s %s\n", "Picture:", pictureLabel(u))
	a.printf("  %-16s %s\n", "Username:", u.Username)
	a.printf("  %-16s %s\n", "Email Address:", u.Email)
	a.printf("  %-16s %s\n", "Account ID:", u.ID)
	if u.ShowLinkedAccounts() {
		a.printf("  %-16s %s\n", "Signed in with:", u.Provider)
		if len(u.Accounts) > 0 {
			a.printf("  %-16s %s\n", "Linked accounts:", strings.Join(u.Accounts, ", "))
		}
	}
	a.println()
}

func pictureLabel(u models.User) string {
	switch {
	case u.ProfileURL == "":
		return "[" + u.Initials() + "]"
	case strings.HasPrefix(u.ProfileURL, "data:"):
		return "uploaded image"
	default:
		return u.ProfileURL
	}
}
