// lodash applies the collection and object utilities of this module to JSON
// and YAML documents.
//
// Usage:
//
//	lodash [global options] <command> [command options] [args]
//
// Global options:
//
//	-i, --input    input file (default: stdin, "-" also means stdin)
//	-f, --format   output format: json or yaml (default: json)
//	-v, --verbose  debug logging on stderr
//
// Commands:
//
//	filter         keep the items matching --where/--has/--expr/--is
//	find           print the first matching item (--from offset)
//	drop-while     drop leading items matching the criteria
//	reject         remove the items matching the criteria
//	pick <keys>    keep only the given top-level keys of an object
//	omit <keys>    remove the given top-level keys of an object
//	merge <files>  deep-merge objects from files, left to right
//	chunk          split a sequence into groups of --size
//	take, drop     keep or drop the first --n items
//	compact        remove falsy items
//	map            extract --prop from every item
//	zip            transpose a sequence of sequences
//	pairs          list the [key, value] pairs of an object
//	includes <v>   report whether the input contains v
//
// Exit codes:
//
//	0: success
//	1: runtime failure, or find matched nothing
//	2: usage error (bad flag, missing argument, invalid expression)
//
// Examples:
//
//	lodash -i users.json filter --where active=true
//	lodash -i users.yaml -f yaml find --expr 'age > 38'
//	lodash -i users.json filter --define 'adult=age >= 18' --is adult
//	lodash merge base.yaml override.json
//	echo '[1,2,3]' | lodash includes 2
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// Build information, injected with -ldflags "-X main.Version=...".
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func init() {
	// -v is --verbose here.
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "print the version"}
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// app carries the streams every command reads from and writes to.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// createApp builds the root command.
func (a *app) createApp() *cli.Command {
	return &cli.Command{
		Name:    "lodash",
		Usage:   "collection and object utilities for JSON/YAML documents",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input file (default: stdin)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: json or yaml",
				Value:   "json",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "debug logging on stderr",
			},
		},
		Commands:     a.createCommands(),
		Reader:       a.in,
		Writer:       a.out,
		ErrWriter:    a.errOut,
		OnUsageError: onUsageError,

		DisableSliceFlagSeparator: true,
		// run maps errors to exit codes; urfave/cli must not call os.Exit.
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(a.errOut, err)
			}
		},
	}
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	if err := a.createApp().Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(errOut, "usage error: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 1
	}
	return 0
}
