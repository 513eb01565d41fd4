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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isSignedIn() bool
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	List(ctx context.Context) error
	RefreshList(ctx context.Context) error
	ViewItem(ctx context.Context) error
	NewItem(ctx context.Context) error
	EditItem(ctx context.Context) error
	SetFormField(ctx context.Context) error
	ShowForm(ctx context.Context) error
	Submit(ctx context.Context) error
	CancelEdit(ctx context.Context) error
	DeleteItem(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the inventory client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Signed-out sessions browse read-only: list, view, and refresh stay
// available, while the mutating commands are only advertised after login.
// The controller enforces the same rule inside each action, so reaching a
// hidden command buys nothing.
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("inv> %s > ", statusFn()))
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
			if a.isSignedIn() {
				printlnFn("Available commands: (l)ist, view, new, edit, set, form, submit, cancel, delete, refresh, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, view, refresh, login, exit")
			}

		case "login":
			_ = a.SignIn(ctx)

		case "logout":
			_ = a.SignOut(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.RefreshList(ctx)

		case "view":
			_ = a.ViewItem(ctx)

		case "new":
			_ = a.NewItem(ctx)

		case "edit":
			_ = a.EditItem(ctx)

		case "set":
			_ = a.SetFormField(ctx)

		case "form":
			_ = a.ShowForm(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "cancel":
			_ = a.CancelEdit(ctx)

		case "delete":
			_ = a.DeleteItem(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
