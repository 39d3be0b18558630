package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt decoration: the logged-in user's email in
// parentheses, or an empty string for an anonymous session.
func (a *App) getStatus(ctx context.Context) string {
	u := a.session.Current(ctx)
	if u == nil {
		return ""
	}
	name := u.Email
	if name == "" {
		name = u.Username
	}
	if name == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", name)
}

// Root starts the interactive command loop on stdin and blocks until the
// user exits or input is exhausted.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to HealthDash CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, scanner)
}
