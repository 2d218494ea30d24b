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
	LoginToken(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Onboard(ctx context.Context) error
	Language(ctx context.Context) error
	Open(ctx context.Context, path string) error
	Meals(ctx context.Context) error
	Today(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the NutriTrack CLI.
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
//	Not signed in:
//	  - help           — show available commands
//	  - login          — sign in with a pasted identity token
//	  - logintoken     — sign in with a pasted access token
//	  - open <path>    — navigate to a view
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - whoami         — show the current profile
//	  - onboard        — set up the nutrition plan
//	  - lang           — change the profile language
//	  - meals          — list recent meals
//	  - today          — show today's calorie total
//	  - open <path>    — navigate to a view
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nt> %s > ", statusFn()))
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
				printlnFn("Available commands: whoami, onboard, lang, meals, today, open <path>, logout, exit")
			} else {
				printlnFn("Available commands: login, logintoken, open <path>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logintoken":
			_ = a.LoginToken(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "onboard":
			_ = a.Onboard(ctx)

		case "lang":
			_ = a.Language(ctx)

		case "meals":
			_ = a.Meals(ctx)

		case "today":
			_ = a.Today(ctx)

		case "open":
			if len(parts) < 2 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, parts[1])

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
