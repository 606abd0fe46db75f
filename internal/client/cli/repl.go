package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/imgurcache/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = "Available commands: account, logout, profile <username>, uploads [asc|desc], " +
	"forget <upload-id>, topics, topic <id>, stats, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Account(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context, username string) error
	Uploads(ctx context.Context, order models.SortOrder) error
	Forget(ctx context.Context, id int64) error
	Topics(ctx context.Context) error
	Topic(ctx context.Context, id int64) error
	Stats(ctx context.Context) error
}

// runREPL reads one command per line from scanner and dispatches it to a.
// The prompt shows statusFn(). The loop ends on EOF or "exit"/"quit".
//
// Errors returned by handlers are ignored here; handlers report their own.
// Argument errors are printed with the command's usage.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cache %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "account":
			_ = a.Account(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			if len(args) != 1 {
				printlnFn("Usage: profile <username>")
				continue
			}
			_ = a.Profile(ctx, args[0])

		case "uploads":
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			order, err := parseOrder(arg)
			if err != nil {
				printlnFn(err.Error())
				printlnFn("Usage: uploads [asc|desc]")
				continue
			}
			_ = a.Uploads(ctx, order)

		case "forget", "topic":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			id, err := parseID(args[0])
			if err != nil {
				printlnFn(err.Error())
				continue
			}
			if cmd == "forget" {
				_ = a.Forget(ctx, id)
			} else {
				_ = a.Topic(ctx, id)
			}

		case "topics":
			_ = a.Topics(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
