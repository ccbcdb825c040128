// buttongen renders declarative button, group and toolbar documents.
//
// Usage:
//
//	buttongen render <kind> <name> [--out file]
//	buttongen list [kind]
//	buttongen serve [--addr :8080] [--pages dir]
//	buttongen new [--out file]
//
// Every subcommand accepts the shared settings flags (--widgets, --log-level,
// --dev, --toggle-label, --config); see internal/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/internal/config"
	"github.com/goliatone/go-buttongen/internal/prompt"
	"github.com/goliatone/go-buttongen/pkg/document"
	"github.com/goliatone/go-buttongen/pkg/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := &environment{
		stdout: os.Stdout,
		stderr: os.Stderr,
		driver: prompt.NewSurveyDriver(),
	}
	if err := run(ctx, os.Args[1:], env); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "buttongen: %v\n", err)
		os.Exit(1)
	}
}

// environment carries the process streams so commands stay testable.
type environment struct {
	stdout io.Writer
	stderr io.Writer
	driver prompt.Driver
}

type command struct {
	usage string
	run   func(ctx context.Context, env *environment, flags *pflag.FlagSet, args []string) error
	flags func(*pflag.FlagSet)
}

var commands = map[string]command{
	"render": {usage: "render <kind> <name>", run: runRender, flags: renderFlags},
	"list":   {usage: "list [kind]", run: runList},
	"serve":  {usage: "serve", run: runServe},
	"new":    {usage: "new", run: runNew, flags: newFlags},
}

func run(ctx context.Context, args []string, env *environment) error {
	if len(args) == 0 {
		printUsage(env.stderr)
		return errors.New("missing command")
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		printUsage(env.stdout)
		return nil
	}
	cmd, ok := commands[name]
	if !ok {
		printUsage(env.stderr)
		return fmt.Errorf("unknown command %q", name)
	}

	flags := pflag.NewFlagSet("buttongen "+name, pflag.ContinueOnError)
	flags.SetOutput(env.stderr)
	config.AddFlags(flags)
	if cmd.flags != nil {
		cmd.flags(flags)
	}
	flags.Usage = func() {
		fmt.Fprintf(env.stderr, "usage: buttongen %s [flags]\n\n", cmd.usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.run(ctx, env, flags, flags.Args())
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: buttongen <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range []string{"render", "list", "serve", "new"} {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}

// setup resolves settings, builds the logger and loads the widget documents.
func setup(flags *pflag.FlagSet) (config.Settings, *zap.Logger, *document.Store, error) {
	settings, err := config.Load(flags)
	if err != nil {
		return settings, nil, nil, err
	}
	logger, err := config.NewLogger(settings)
	if err != nil {
		return settings, nil, nil, err
	}
	store, err := document.Load(settings.Widgets,
		document.WithLogger(logger),
		document.WithRenderOptions(renderOptions(settings)...),
	)
	if err != nil {
		return settings, logger, nil, err
	}
	return settings, logger, store, nil
}

func renderOptions(settings config.Settings) []render.Option {
	if settings.ToggleLabel == "" {
		return nil
	}
	return []render.Option{render.WithToggleLabel(settings.ToggleLabel)}
}
