// Package main provides the CLI entrypoint for unionize.
//
// unionize works with tagged unions declared in YAML schema files:
//   - check: validates declarations and reports diagnostics
//   - fmt: rewrites a schema file in its normalized form
//   - list: prints unions, their layout and variants
//   - create, is, cast, update: run union operations on JSON instances
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const version = "0.1.0"

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	app := newApp(os.Stdout, log)
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newApp(out io.Writer, log *logrus.Logger) *cli.App {
	env := &env{out: out, log: log}

	app := cli.NewApp()
	app.Name = "unionize"
	app.Usage = "declare, validate and operate on tagged unions"
	app.Version = version
	app.Writer = out
	app.ErrWriter = log.Out
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		cli.BoolFlag{Name: "no-color", Usage: "disable colored diagnostics"},
		cli.StringFlag{Name: "output, o", Value: formatJSON, Usage: "instance output format: json or yaml"},
	}
	app.Before = env.before

	fileFlag := cli.StringFlag{Name: "file, f", Usage: "schema `FILE`"}
	unionFlag := cli.StringFlag{Name: "union, u", Usage: "union `NAME`; may be omitted when the file declares one union"}

	app.Commands = []cli.Command{
		{
			Name:      "check",
			Usage:     "validate schema files",
			ArgsUsage: "FILE...",
			Action:    env.check,
		},
		{
			Name:      "fmt",
			Usage:     "print a schema file with defaults applied and variants as a list",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "write, w", Usage: "write the result back to FILE"},
			},
			Action: env.rewrite,
		},
		{
			Name:      "list",
			Usage:     "list declared unions and variants",
			ArgsUsage: "FILE",
			Action:    env.list,
		},
		{
			Name:      "create",
			Usage:     "create an instance of a variant",
			ArgsUsage: "VARIANT [key=value...|value]",
			Flags:     []cli.Flag{fileFlag, unionFlag},
			Action:    env.create,
		},
		{
			Name:      "is",
			Usage:     "report whether an instance holds a variant",
			ArgsUsage: "VARIANT INSTANCE",
			Flags:     []cli.Flag{fileFlag, unionFlag},
			Action:    env.is,
		},
		{
			Name:      "cast",
			Usage:     "print the payload of an instance as a variant",
			ArgsUsage: "VARIANT INSTANCE",
			Flags:     []cli.Flag{fileFlag, unionFlag},
			Action:    env.cast,
		},
		{
			Name:      "update",
			Usage:     "update the payload of an instance, whatever its variant",
			ArgsUsage: "INSTANCE [key=value...|value]",
			Flags:     []cli.Flag{fileFlag, unionFlag},
			Action:    env.update,
		},
	}

	return app
}
