package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run restores a persisted session (or prompts for one), starts the
// connectivity watcher and hands control to the REPL. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)

	printlnFn("Welcome to CrewHive CLI (type 'help' for commands)")

	if found, err := a.auth.Restore(ctx); err == nil && found {
		if user, err := a.auth.CurrentUser(ctx); err == nil {
			a.userName = user.Username
			a.view.SetViewer(a.userName)
			printlnFn("Restored session for " + a.userName)
		}
	}
	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, 15*time.Second)
	}()

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
