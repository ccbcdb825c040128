package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/goliatone/go-buttongen/internal/config"
	"github.com/goliatone/go-buttongen/internal/prompt"
	"github.com/goliatone/go-buttongen/pkg/document"
)

var allKinds = []document.Kind{document.KindButton, document.KindGroup, document.KindToolbar}

func renderFlags(flags *pflag.FlagSet) {
	flags.StringP("out", "o", "", "output file (stdout if empty)")
	flags.Bool("color", false, "syntax highlight the markup written to stdout")
}

func newFlags(flags *pflag.FlagSet) {
	flags.StringP("out", "o", "", "output file (stdout if empty)")
	flags.String("format", string(document.FormatYAML), "document format (yaml or json)")
}

func runRender(_ context.Context, env *environment, flags *pflag.FlagSet, args []string) error {
	if len(args) != 2 {
		return errors.New("render: expected <kind> <name>")
	}
	kind, err := document.ParseKind(args[0])
	if err != nil {
		return err
	}
	_, logger, store, err := setup(flags)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	el, err := store.Render(kind, args[1])
	if err != nil {
		return err
	}
	html := el.String() + "\n"
	out, _ := flags.GetString("out")
	if color, _ := flags.GetBool("color"); color && out == "" {
		if err := quick.Highlight(env.stdout, html, "html", "terminal256", "monokai"); err != nil {
			return fmt.Errorf("render: highlight: %w", err)
		}
	} else if err := writeOutput(env, out, []byte(html)); err != nil {
		return err
	}
	logger.Debug("widget rendered", zap.String("kind", string(kind)), zap.String("name", args[1]))
	return nil
}

func runList(_ context.Context, env *environment, flags *pflag.FlagSet, args []string) error {
	kinds := allKinds
	switch len(args) {
	case 0:
	case 1:
		kind, err := document.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []document.Kind{kind}
	default:
		return errors.New("list: expected at most one kind")
	}

	_, logger, store, err := setup(flags)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	for _, kind := range kinds {
		for _, name := range store.Names(kind) {
			fmt.Fprintf(env.stdout, "%s\t%s\n", kind, name)
		}
	}
	return nil
}

func runNew(ctx context.Context, env *environment, flags *pflag.FlagSet, args []string) error {
	if len(args) != 0 {
		return errors.New("new: unexpected arguments")
	}
	settings, err := config.Load(flags)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(settings)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	formatFlag, _ := flags.GetString("format")
	format := document.Format(formatFlag)
	if format != document.FormatYAML && format != document.FormatJSON {
		return fmt.Errorf("new: unsupported format %q", formatFlag)
	}

	doc, name, err := prompt.NewComposer(env.driver).ComposeButton(ctx)
	if err != nil {
		return err
	}

	store := document.NewStore(
		document.WithLogger(logger),
		document.WithRenderOptions(renderOptions(settings)...),
	)
	if err := store.Add("new", doc); err != nil {
		return err
	}
	preview, err := store.Render(document.KindButton, name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := document.Encode(&buf, format, doc); err != nil {
		return err
	}
	out, _ := flags.GetString("out")
	if err := writeOutput(env, out, buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(env.stderr, "preview:\n%s\n", preview)
	return nil
}

func writeOutput(env *environment, path string, data []byte) error {
	if path == "" {
		_, err := env.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(env.stderr, "written to %s\n", path)
	return nil
}
