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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Events(ctx context.Context, args []string) error
	Filtered(ctx context.Context, args []string) error
	MyEvents(ctx context.Context) error
	AddEvent(ctx context.Context) error
	UpdateEvent(ctx context.Context) error
	DeleteEvent(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Event-Hub CLI.
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
//	  - help                   — show available commands
//	  - register               — create an account
//	  - login                  — authenticate
//	  - events [page] [limit]  — browse the public event listing
//	  - exit | quit            — leave the program
//
//	Logged in additionally:
//	  - filtered [page] [limit]  — events excluding your own
//	  - my                       — events you own
//	  - add                      — create an event
//	  - update                   — edit an event you own
//	  - delete                   — remove an event you own
//	  - logout                   — forget the session token
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("eh> %s > ", statusFn()))
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
				printlnFn("Available commands: events, filtered, my, add, update, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, events, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "e", "events":
			_ = a.Events(ctx, args)

		case "filtered":
			_ = a.Filtered(ctx, args)

		case "my":
			_ = a.MyEvents(ctx)

		case "add":
			_ = a.AddEvent(ctx)

		case "update":
			_ = a.UpdateEvent(ctx)

		case "delete":
			_ = a.DeleteEvent(ctx)

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
