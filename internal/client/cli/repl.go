package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = func(s string) { fmt.Println(s) }

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Quizzes(ctx context.Context) error
	Take(ctx context.Context, quizID string) error
	Result(ctx context.Context, resultID string) error
}

// runREPL starts the read-eval-print loop of the quiz client.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Commands while signed out: help, login, exit.
// Commands while signed in: help, whoami, quizzes, take <id>,
// result <id>, logout, exit.
//
// Command handlers surface their own errors; the loop stays resilient
// and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("quiz %s> ", statusFn()))
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
				printlnFn("Available commands: whoami, quizzes, take <id>, result <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "quizzes", "list":
			_ = a.Quizzes(ctx)

		case "take":
			if len(args) == 0 {
				printlnFn("Usage: take <quiz id>")
				continue
			}
			_ = a.Take(ctx, args[0])

		case "result":
			if len(args) == 0 {
				printlnFn("Usage: result <result id>")
				continue
			}
			_ = a.Result(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
