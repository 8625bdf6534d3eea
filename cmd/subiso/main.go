// SPDX-License-Identifier: MIT

// Command subiso tests subgraph isomorphism between graph documents, generates
// fixture graphs, and serves the matcher over HTTP.
//
//	subiso match --pattern p.yaml --target t.yaml [--mode strict|mono] [--parallel k] [--timeout d]
//	subiso generate --kind cycle --n 6 [--format yaml|json] [--out c6.yaml]
//	subiso info --graph g.yaml [--format yaml|json]
//	subiso serve [--addr :8080]
//
// Exit status of match: 0 found, 1 not found, 2 error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes.
const (
	exitOK       = 0
	exitNotFound = 1
	exitError    = 2
)

// errNotFound makes match exit with exitNotFound without printing an error.
var errNotFound = errors.New("no embedding found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNotFound):
		return exitNotFound
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
}
