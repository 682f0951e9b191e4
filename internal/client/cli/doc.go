// Package cli provides the interactive gophauth command-line client.
//
// It wires configuration, the persisted cookie jar, the HTTP API client and
// the session store, then runs a small REPL on top of them. Typical flow:
// restore the previous session, show the profile or the welcome screen, and
// execute user commands until "exit".
//
// Key features:
//   - Login / Register / Logout
//   - OAuth sign-in links and redirect notices
//   - Profile view, username edit, profile picture upload
//   - Account deletion with password confirmation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
