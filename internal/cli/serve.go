package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/KiyoScript/scavenger-hunt/internal/hunt"
	"github.com/KiyoScript/scavenger-hunt/internal/huntserver"
)

// serveHunt is a test seam for running the hunt server.
var serveHunt = huntserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		huntPath := fs.String("hunt", "", "Path to the hunt definition")
		addr := fs.String("addr", "127.0.0.1:8640", "Address to listen on")
		baseURL := fs.String("base-url", "", "Base URL embedded in payloads and QR codes")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *huntPath == "" {
			fmt.Fprintln(stderr, "Missing --hunt")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}

		h, err := hunt.Load(*huntPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load hunt: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := huntserver.Config{
			Addr:    *addr,
			Hunt:    h,
			BaseURL: *baseURL,
		}
		fmt.Fprintf(stdout, "Serving hunt at http://%s\n", cfg.Addr)
		if err := serveHunt(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
