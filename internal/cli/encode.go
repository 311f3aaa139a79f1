package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	qrgen "github.com/skip2/go-qrcode"

	"github.com/KiyoScript/scavenger-hunt/internal/hunt"
)

// runEncode builds the handler for the encode command.
func runEncode(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		huntPath := fs.String("hunt", "", "Path to the hunt definition")
		outDir := fs.String("out", "qr", "Directory for the rendered PNGs")
		size := fs.Int("size", 256, "Image size in pixels")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *huntPath == "" {
			fmt.Fprintln(stderr, "Missing --hunt")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *size < 64 || *size > 2048 {
			fmt.Fprintln(stderr, "Size must be between 64 and 2048 pixels")
			return ExitUsage
		}

		h, err := hunt.Load(*huntPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load hunt: %v\n", err)
			return ExitError
		}
		if h.BaseURL == "" {
			fmt.Fprintln(stderr, "Hunt definition has no base_url to encode")
			return ExitError
		}

		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			fmt.Fprintf(stderr, "Failed to create output dir: %v\n", err)
			return ExitError
		}
		for _, entry := range h.Questions {
			target := filepath.Join(*outDir, entry.Slug+".png")
			url := entry.QuestionURL(h.BaseURL)
			if err := qrgen.WriteFile(url, qrgen.Medium, *size, target); err != nil {
				fmt.Fprintf(stderr, "Failed to render %s: %v\n", entry.Slug, err)
				return ExitError
			}
			fmt.Fprintf(stdout, "%s -> %s\n", url, target)
		}
		return ExitOK
	}
}
