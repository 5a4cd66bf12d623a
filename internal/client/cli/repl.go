package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Reload(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, rawID string) error
	Set(ctx context.Context, path, value string) error
	Show(ctx context.Context) error
	Submit(ctx context.Context) error
	CancelForm(ctx context.Context) error
	Delete(ctx context.Context, rawID string) error
	Dismiss(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to a. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Command errors are printed and the loop continues.
//
// Commands:
//
//	l, list              - print the user collection
//	reload               - re-fetch the collection from the server
//	add                  - open an empty create form
//	edit <id>            - open an edit form seeded from a listed user
//	set <path> <value>   - set one form field (e.g. set address.city Boston)
//	show                 - print the open form
//	submit               - validate and send the form
//	cancel               - discard the form
//	delete <id>          - delete a user
//	dismiss              - hide the current notification
//	help, exit, quit
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("um %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, reload, add, edit <id>, set <path> <value>, show, submit, cancel, delete <id>, dismiss, exit")

		case "l", "list":
			err = a.List(ctx)

		case "reload":
			err = a.Reload(ctx)

		case "add":
			err = a.Add(ctx)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			err = a.Edit(ctx, args[0])

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set <path> <value>")
				continue
			}
			err = a.Set(ctx, args[0], strings.Join(args[1:], " "))

		case "show":
			err = a.Show(ctx)

		case "submit":
			err = a.Submit(ctx)

		case "cancel":
			err = a.CancelForm(ctx)

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			err = a.Delete(ctx, args[0])

		case "dismiss":
			err = a.Dismiss(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
