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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Today(ctx context.Context) error
	Day(ctx context.Context, date string) error
	AddEvent(ctx context.Context) error
	AddShift(ctx context.Context) error
	DeleteEntry(ctx context.Context, kind, id string) error
	Hours(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the CrewHive CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           - show available commands
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - today          - show today's combined day view
//	  - day <date>     - show a specific day (YYYY-MM-DD)
//	  - addevent       - create an event (interactive prompts)
//	  - addshift       - create a shift (interactive prompts)
//	  - delete <kind> <id> - delete an event or shift
//	  - hours          - scheduled hours for the current week
//	  - whoami         - show the signed-in user
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("crewhive> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: today, day <date>, addevent, addshift, delete <kind> <id>, hours, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "t", "today":
			_ = a.Today(ctx)

		case "day":
			if len(args) == 0 {
				printlnFn("Usage: day <YYYY-MM-DD>")
				continue
			}
			_ = a.Day(ctx, args[0])

		case "addevent":
			_ = a.AddEvent(ctx)

		case "addshift":
			_ = a.AddShift(ctx)

		case "delete":
			if len(args) < 2 {
				printlnFn("Usage: delete <event|shift> <id>")
				continue
			}
			_ = a.DeleteEntry(ctx, args[0], args[1])

		case "hours":
			_ = a.Hours(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
