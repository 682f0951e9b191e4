package cli

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/notify"
)

var features = []struct{ title, blurb string }{
	{"Modern Design", "Beautiful, responsive interface that works seamlessly across all devices."},
	{"Bank-Level Security", "Your data is protected with industry-leading encryption and security measures."},
	{"Lightning Fast", "Optimized performance ensures quick loading and smooth interactions."},
}

func (a *App) printWelcome() {
	a.println()
	a.println("Secure Access")
	a.println("Your gateway to a secure and personalized experience.")
	a.println()
	for _, f := range features {
		a.printf("  %-20s %s\n", f.title, f.blurb)
	}
	a.println()
	a.println("Type 'login', 'register' or 'oauth <google|github|twitter>' to get started.")
}

// Notifications lists the recent notifications, oldest first.
func (a *App) Notifications(_ context.Context) error {
	all := a.notes.All()
	if len(all) == 0 {
		a.println("No notifications yet.")
		return nil
	}
	for _, n := range all {
		a.printf("%s %s\n", n.CreatedAt.Format("15:04:05"), notify.Format(n))
	}
	return nil
}
