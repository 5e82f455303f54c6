package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Practice(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the practice client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help            - show available commands
//	  - register        - create an account
//	  - login           - authenticate
//	  - exit | quit     - leave the program
//
//	Logged in:
//	  - help            - show available commands
//	  - list [query]    - list texts, optionally filtered by title
//	  - show <id>       - print a text with its tags and timestamps
//	  - add             - add a text
//	  - practice <id>   - step through a text word by word or paragraph by paragraph
//	  - logout          - log out
//	  - exit | quit     - leave the program
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mem> %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [query], show <id>, add, practice <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx, parts[1:])

		case "show":
			_ = a.Show(ctx, parts[1:])

		case "add":
			_ = a.Add(ctx)

		case "practice":
			_ = a.Practice(ctx, parts[1:])

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
