package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	OAuth(ctx context.Context, args []string) error
	Notice(ctx context.Context, args []string) error
	Notifications(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Avatar(ctx context.Context, args []string) error
	Delete(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the gophauth CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                        show available commands
//	  - login                       sign in with email and password
//	  - register                    create an account
//	  - oauth <provider>            print a sign-in link for google, github or twitter
//	  - notice <url>                show the message carried by a redirect address
//	  - notifications               list recent notifications
//	  - exit | quit                 leave the program
//
//	Logged in:
//	  - help                        show available commands
//	  - profile                     show the profile
//	  - edit                        change the username
//	  - avatar [path]               upload a profile picture
//	  - delete                      delete the account
//	  - logout                      sign out
//	  - notifications               list recent notifications
//	  - exit | quit                 leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gophauth %s> ", statusFn()))
		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if a.isLoggedIn() {
			dispatchSignedIn(ctx, a, cmd, args)
		} else {
			dispatchSignedOut(ctx, a, cmd, args)
		}
	}
}

func dispatchSignedOut(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "help":
		printlnFn("Available commands: login, register, oauth <google|github|twitter>, notice <url>, notifications, exit")
	case "login":
		_ = a.Login(ctx)
	case "register":
		_ = a.Register(ctx)
	case "oauth":
		_ = a.OAuth(ctx, args)
	case "notice":
		_ = a.Notice(ctx, args)
	case "notifications":
		_ = a.Notifications(ctx)
	case "profile", "edit", "avatar", "delete", "logout":
		printlnFn("You are not logged in. Type 'login' or 'register' first.")
	default:
		printlnFn("Unknown command:", cmd)
	}
}

func dispatchSignedIn(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "help":
		printlnFn("Available commands: profile, edit, avatar [path], delete, logout, notifications, exit")
	case "profile":
		_ = a.Profile(ctx)
	case "edit":
		_ = a.Edit(ctx)
	case "avatar":
		_ = a.Avatar(ctx, args)
	case "delete":
		_ = a.Delete(ctx)
	case "logout":
		_ = a.Logout(ctx)
	case "notifications":
		_ = a.Notifications(ctx)
	case "login", "register", "oauth", "notice":
		printlnFn("You are already logged in. Type 'logout' first.")
	default:
		printlnFn("Unknown command:", cmd)
	}
}
