// Package services contains the application services of the gophauth client.
//
// SessionStore is the single owner of "who is logged in". It holds at most
// one models.User, runs each session operation as one call through
// client.Client, and reports the outcome through a notify.Notifier. Nothing
// else writes the held user.
package services
