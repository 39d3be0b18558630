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
	isLoggedIn(ctx context.Context) bool
	Signup(ctx context.Context) error
	Confirm(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Upload(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Health(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the HealthDash CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  help, signup, confirm, login, health, exit | quit
//
//	Logged in:
//	  help, profile | p, edit, upload, whoami, health, logout, exit | quit
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hd> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (p)rofile, edit, upload, whoami, health, logout, exit")
			} else {
				printlnFn("Available commands: signup, confirm, login, health, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "confirm":
			_ = a.Confirm(ctx)

		case "login":
			_ = a.Login(ctx)

		case "p", "profile":
			_ = a.ShowProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "health":
			_ = a.Health(ctx)

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
