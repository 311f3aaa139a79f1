package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/KiyoScript/scavenger-hunt/internal/config"
	"github.com/KiyoScript/scavenger-hunt/internal/fetch"
	"github.com/KiyoScript/scavenger-hunt/internal/question"
	"github.com/KiyoScript/scavenger-hunt/internal/scanner"
)

// scannedQuestion is the JSON shape printed by the scan command.
type scannedQuestion struct {
	URL      string   `json:"url"`
	Prompt   string   `json:"question"`
	Hint     string   `json:"hint,omitempty"`
	Kind     string   `json:"response_type"`
	Choices  []string `json:"choices,omitempty"`
	Points   []int    `json:"points,omitempty"`
	AgeGroup string   `json:"age_group,omitempty"`
}

// runScan builds the handler for the scan command.
func runScan(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to client config (default: .hunt.yml)")
		imagePath := fs.String("image", "", "QR image to decode")
		rawURL := fs.String("url", "", "Question URL to fetch directly")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if (*imagePath == "") == (*rawURL == "") {
			fmt.Fprintln(stderr, "Provide exactly one of --image or --url")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := config.LoadOrDefault(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		timeout := time.Duration(cfg.Fetch.TimeoutMs) * time.Millisecond
		ctx, cancel := context.WithTimeout(context.Background(), timeout+time.Second)
		defer cancel()

		url := *rawURL
		if *imagePath != "" {
			url, err = decodeImage(ctx, *imagePath, cfg.KnownHosts)
			if err != nil {
				fmt.Fprintf(stderr, "Scan failed: %v\n", err)
				return ExitError
			}
		}

		client := fetch.NewWithTimeout(timeout, question.Defaults{
			SubmitEndpoint: cfg.Defaults.SubmitEndpoint,
			ExpectedAnswer: cfg.Defaults.ExpectedAnswer,
		})
		q, err := client.FetchQuestion(ctx, url)
		if err != nil {
			fmt.Fprintf(stderr, "Fetch failed: %v\n", err)
			return ExitError
		}

		payload := scannedQuestion{
			URL:      url,
			Prompt:   q.Prompt,
			Hint:     q.Hint,
			Kind:     string(q.Kind),
			Choices:  q.Choices,
			Points:   q.RewardPoints,
			AgeGroup: q.AgeGroup,
		}
		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "Encode failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, string(encoded))
		return ExitOK
	}
}

// decodeImage decodes one QR image and checks it belongs to the hunt.
func decodeImage(ctx context.Context, path string, knownHosts []string) (string, error) {
	source := scanner.NewImageScanner([]string{path})
	granted, err := source.RequestAccess(ctx)
	if err != nil {
		return "", err
	}
	if !granted {
		return "", fmt.Errorf("cannot read image %s", path)
	}
	codes, err := source.BeginScan(ctx)
	if err != nil {
		return "", err
	}
	code, ok := <-codes
	if !ok {
		return "", fmt.Errorf("no code found in %s", path)
	}
	if !scanner.Recognized(code.Text, knownHosts) {
		return "", fmt.Errorf("%w: %s", scanner.ErrInvalidCode, code.Text)
	}
	return code.Text, nil
}
