package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/collections"
	"github.com/hasbyte1/go-lodash-utils/object"
)

// createCommands builds every subcommand.
func (a *app) createCommands() []*cli.Command {
	cmds := []*cli.Command{
		a.createFilterCommand(),
		a.createFindCommand(),
		a.createDropWhileCommand(),
		a.createRejectCommand(),
		a.createPickCommand(),
		a.createOmitCommand(),
		a.createMergeCommand(),
		a.createChunkCommand(),
		a.createTakeCommand(),
		a.createDropCommand(),
		a.createCompactCommand(),
		a.createMapCommand(),
		a.createZipCommand(),
		a.createPairsCommand(),
		a.createIncludesCommand(),
	}
	for _, c := range cmds {
		c.OnUsageError = onUsageError
		// Expressions and values may contain commas.
		c.DisableSliceFlagSeparator = true
	}
	return cmds
}

// collectionAction wraps fn with input decoding and output encoding for
// commands that turn a collection into a collection.
func (a *app) collectionAction(fn func(cmd *cli.Command, c *collections.Collection) (*collections.Collection, error)) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		values, err := a.readCollection(cmd)
		if err != nil {
			return err
		}
		in := collections.New(values...)
		out, err := fn(cmd, in)
		if err != nil {
			return err
		}
		a.logger(cmd).Debug("applied", "in", in.Count(), "out", out.Count())
		return a.writeAll(cmd, out.All())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicate commands
// ─────────────────────────────────────────────────────────────────────────────

func (a *app) createFilterCommand() *cli.Command {
	return &cli.Command{
		Name:  "filter",
		Usage: "keep the items matching every criterion",
		Flags: criteriaFlags(),
		Action: a.collectionAction(func(cmd *cli.Command, c *collections.Collection) (*collections.Collection, error) {
			p, err := criteria(cmd)
			if err != nil {
				return nil, err
			}
			a.logger(cmd).Debug("predicate", "predicate", p)
			return c.Filter(p), nil
		}),
	}
}

func (a *app) createRejectCommand() *cli.Command {
	return &cli.Command{
		Name:  "reject",
		Usage: "remove the items matching every criterion",
		Flags: criteriaFlags(),
		Action: a.collectionAction(func(cmd *cli.Command, c *collections.Collection) (*collections.Collection, error) {
			p, err := criteria(cmd)
			if err != nil {
				return nil, err
			}
			a.logger(cmd).Debug("predicate", "predicate", p)
			return c.Reject(p), nil
		}),
	}
}

func (a *app) createDropWhileCommand() *cli.Command {
	return &cli.Command{
		Name:  "drop-while",
		Usage: "drop leading items while they match every criterion",
		Flags: criteriaFlags(),
		Action: a.collectionAction(func(cmd *cli.Command, c *collections.Collection) (*collections.Collection, error) {
			p, err := criteria(cmd)
			if err != nil {
				return nil, err
			}
			a.logger(cmd).Debug("predicate", "predicate", p)
			return c.DropWhile(p), nil
		}),
	}
}

func (a *app) createFindCommand() *cli.Command {
	flags := append(criteriaFlags(), &cli.IntFlag{
		Name:  "from",
		Usage: "start at this index; negative counts from the end",
	})
	return &cli.Command{
		Name:  "find",
		Usage: "print the first item matching every criterion",
		Flags: flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			p, err := criteria(cmd)
			if err != nil {
				return err
			}
			values, err := a.readCollection(cmd)
			if err != nil {
				return err
			}
			log := a.logger(cmd).With("predicate", p)
			item, err := collections.New(values...).FindOrFail(p, cmd.Int("from"))
			if err != nil {
				log.Debug("no match", "items", len(values))
				return &exitError{code: 1}
			}
			log.Debug("match found")
			return a.write(cmd, item)
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Object commands
// ─────────────────────────────────────────────────────────────────────────────

func (a *app) createPickCommand() *cli.Command {
	return &cli.Command{
		Name:      "pick",
		Usage:     "keep only the given top-level keys of an object",
		ArgsUsage: "<key>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			doc, err := a.readObject(cmd)
			if err != nil {
				return err
			}
			return a.write(cmd, object.Pick(doc, cmd.Args().Slice()))
		},
	}
}

func (a *app) createOmitCommand() *cli.Command {
	return &cli.Command{
		Name:      "omit",
		Usage:     "remove the given top-level keys of an object",
		ArgsUsage: "<key>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			doc, err := a.readObject(cmd)
			if err != nil {
				return err
			}
			return a.write(cmd, object.Omit(doc, cmd.Args().Slice()))
		},
	}
}

func (a *app) createMergeCommand() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     `deep-merge objects from files, left to right ("-" reads stdin)`,
		ArgsUsage: "<file>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return usageErrorf("merge: at least one file is required")
			}
			log := a.logger(cmd)
			sources := make([]*object.Object, 0, len(paths))
			for _, path := range paths {
				doc, err := a.decodeFile(path)
				if err != nil {
					return err
				}
				o, ok := doc.(*object.Object)
				if !ok {
					return fmt.Errorf("%s: %w: got %T", sourceName(path), object.ErrNotObject, doc)
				}
				log.Debug("merging", "source", sourceName(path), "keys", o.Len())
				sources = append(sources, o)
			}
			return a.write(cmd, object.Merged(sources...))
		},
	}
}

func (a *app) createPairsCommand() *cli.Command {
	return &cli.Command{
		Name:  "pairs",
		Usage: "list the [key, value] pairs of an object",
		Action: func(_ context.Context, cmd *cli.Command) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			return a.writeAll(cmd, object.ToPairs(doc))
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence commands
// ─────────────────────────────────────────────────────────────────────────────

func (a *app) createChunkCommand() *cli.Command {
	return &cli.Command{
		Name:  "chunk",
		Usage: "split the input into groups of --size items",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Aliases: []string{"s"}, Usage: "group size", Value: 1},
		},
		Action: a.collectionAction(func(cmd *cli.Command, c *collections.Collection) (*collections.Collection, error) {
			return c.Chunk(cmd.Int("size")), nil
		}),
	}
}

func (a *app) createTakeCommand() *cli.Command {
	return &cli.Command{
		Name:  "take",
		Usage: "keep the first --n items",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Usage: "number of items", Value: 1},
		},
		Action: a.collectionAction(func(cmd *cli.Command, c *collections.Collection) (*collections.Collection, error) {
			return c.Take(cmd.Int("n")), nil
		}),
	}
}

func (a *app) createDropCommand() *cli.Command {
	return &cli.Command{
		Name:  "drop",
		Usage: "drop the first --n items",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Usage: "number of items", Value: 1},
		},
		Action: a.collectionAction(func(cmd *cli.Command, c *collections.Collection) (*collections.Collection, error) {
			return c.Drop(cmd.Int("n")), nil
		}),
	}
}

func (a *app) createCompactCommand() *cli.Command {
	return &cli.Command{
		Name:  "compact",
		Usage: "remove null, false, 0, NaN and empty strings",
		Action: a.collectionAction(func(_ *cli.Command, c *collections.Collection) (*collections.Collection, error) {
			return c.Compact(), nil
		}),
	}
}

func (a *app) createMapCommand() *cli.Command {
	return &cli.Command{
		Name:  "map",
		Usage: "extract --prop from every item (missing values become null)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prop", Aliases: []string{"p"}, Usage: "property name"},
		},
		Action: a.collectionAction(func(cmd *cli.Command, c *collections.Collection) (*collections.Collection, error) {
			prop := cmd.String("prop")
			if prop == "" {
				return nil, usageErrorf("map: --prop is required")
			}
			return c.Map(prop), nil
		}),
	}
}

func (a *app) createZipCommand() *cli.Command {
	return &cli.Command{
		Name:  "zip",
		Usage: "transpose a sequence of sequences",
		Action: a.collectionAction(func(_ *cli.Command, c *collections.Collection) (*collections.Collection, error) {
			return collections.From(arr.Zip(c.All()...)), nil
		}),
	}
}

func (a *app) createIncludesCommand() *cli.Command {
	return &cli.Command{
		Name:      "includes",
		Usage:     "report whether the input contains the value",
		ArgsUsage: "<value>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "from", Usage: "start at this index; negative counts from the end"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return usageErrorf("includes: exactly one value is required")
			}
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			found := arr.Includes(doc, scalar(cmd.Args().First()), cmd.Int("from"))
			a.logger(cmd).Debug("searched", "found", found)
			return a.write(cmd, found)
		},
	}
}
