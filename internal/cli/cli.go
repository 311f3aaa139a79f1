// Package cli implements the hunt command line interface.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  hunt <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"hunt <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .hunt.yml and a starter hunt", []string{
		"hunt init [--config <path>] [--hunt <path>]",
	}, runInit),
	command("validate", "Validate the client config and a hunt definition", []string{
		"hunt validate [--config <path>] [--hunt <path>]",
	}, runValidate),
	command("play", "Play the hunt: scan, answer, repeat", []string{
		"hunt play [--config <path>] [--ui auto|live|plain] [--image <png>...]",
	}, runPlay),
	command("scan", "Decode one code and print the question payload", []string{
		"hunt scan --image <png> [--config <path>]",
		"hunt scan --url <question-url> [--config <path>]",
	}, runScan),
	command("serve", "Host a hunt definition for practice runs", []string{
		"hunt serve --hunt <path> [--addr <host:port>] [--base-url <url>]",
	}, runServe),
	command("encode", "Render QR code PNGs for a hunt definition", []string{
		"hunt encode --hunt <path> [--out <dir>] [--size <px>]",
	}, runEncode),
}
