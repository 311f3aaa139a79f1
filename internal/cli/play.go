package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KiyoScript/scavenger-hunt/internal/config"
	"github.com/KiyoScript/scavenger-hunt/internal/fetch"
	"github.com/KiyoScript/scavenger-hunt/internal/flow"
	"github.com/KiyoScript/scavenger-hunt/internal/question"
	"github.com/KiyoScript/scavenger-hunt/internal/scanner"
	"github.com/KiyoScript/scavenger-hunt/internal/ui/live"
)

// runLiveUI is a test seam for running the interactive UI.
var runLiveUI = live.Run

// playInput is a test seam for the plain-mode input stream.
var playInput io.Reader

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to client config (default: .hunt.yml)")
		uiMode := fs.String("ui", "", "UI mode: auto, live, or plain (default: from config)")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		var images multiFlag
		fs.Var(&images, "image", "QR image to scan instead of reading codes from stdin (repeatable)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := config.LoadOrDefault(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		mode := *uiMode
		if mode == "" {
			mode = cfg.UI
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		imagePaths := []string(images)
		if len(imagePaths) == 0 && cfg.Scanner.Source == config.SourceImages {
			imagePaths = cfg.Scanner.Images
		}
		// The live UI owns the terminal, so stdin codes only work in plain
		// mode.
		if decision.useLive && len(imagePaths) == 0 {
			decision.useLive = false
			fmt.Fprintln(stderr, "No scan images configured; reading codes from stdin in plain mode.")
		}

		client := fetch.NewWithTimeout(time.Duration(cfg.Fetch.TimeoutMs)*time.Millisecond, question.Defaults{
			SubmitEndpoint: cfg.Defaults.SubmitEndpoint,
			ExpectedAnswer: cfg.Defaults.ExpectedAnswer,
		})
		machine := flow.Machine{KnownHosts: cfg.KnownHosts}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if decision.useLive {
			deps := flow.Deps{
				Scanner:  scanner.NewImageScanner(imagePaths),
				Fetcher:  client,
				Verifier: buildVerifier(cfg, client),
			}
			if err := runLiveUI(ctx, machine, deps, live.Options{NoColor: *noColor}, stdout); err != nil {
				fmt.Fprintf(stderr, "UI error: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		in := playInput
		if in == nil {
			in = os.Stdin
		}
		reader := bufio.NewReader(in)
		var source scanner.Scanner
		if len(imagePaths) > 0 {
			source = scanner.NewImageScanner(imagePaths)
		} else {
			source = scanner.NewBufferedReaderScanner(reader)
		}
		deps := flow.Deps{
			Scanner:  source,
			Fetcher:  client,
			Verifier: buildVerifier(cfg, client),
		}
		ctrl := flow.NewController(machine, deps)
		if err := runPlainLoop(ctx, ctrl, reader, stdout); err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// buildVerifier picks the verification strategy from the config.
func buildVerifier(cfg config.Config, client *fetch.Client) question.Verifier {
	if cfg.Verification.Mode == config.VerificationRemote {
		return question.RemoteVerifier{Notifier: client}
	}
	return question.LocalVerifier{Notifier: client}
}
