package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/superini/internal/exprsandbox"
	"github.com/ardnew/superini/lang"
	"github.com/ardnew/superini/log"
	"github.com/ardnew/superini/pkg"
)

// CLI is the top-level command-line interface for superini.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Input  string `arg:"" help:"Super INI source file, or '-' for standard input." type:"string"`
	Output string `arg:"" help:"Output path for canonical INI." optional:"" type:"string"`

	Dump bool `help:"Write output to standard output instead of a file." short:"d"`
}

// Run executes the superini CLI with the given context and arguments. The
// exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those
	// flags during normal parsing, but this early scan also catches boolean
	// flags like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve, configFilePath+".yaml"),
		vars,
	)
	if err != nil {
		return err
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return cli.compile(ctx)
}

// compile runs the Super INI compiler over the configured input and writes
// its output to the configured destination.
func (c *CLI) compile(ctx context.Context) error {
	result, err := lang.Compile(c.Input, lang.WithEvaluator(exprsandbox.New()))

	var langErr *lang.Error
	if errors.As(err, &langErr) {
		for _, d := range langErr.Diagnostics {
			fmt.Fprintln(os.Stderr, renderDiagnostic(d))
		}

		log.ErrorContext(ctx, "compile failed", slog.Any("error", langErr))

		return langErr
	}

	if err != nil {
		log.ErrorContext(ctx, "compile failed", slog.Any("error", err))

		return err
	}

	for _, d := range result.Diagnostics.Warnings() {
		fmt.Fprintln(os.Stderr, renderDiagnostic(d))
	}

	log.DebugContext(ctx, "compile succeeded",
		slog.Int("scopes", result.Stats.Scopes),
		slog.Int("items", result.Stats.Items),
		slog.Int("closures", result.Stats.ClosuresRun),
		slog.Int("warnings", result.Stats.Warnings),
	)

	if c.Dump {
		return result.WriteTo(os.Stdout)
	}

	output := c.Output
	if output == "" {
		output = result.Environment.Output
	}

	if output == "" {
		return fmt.Errorf("no output path: supply an output argument, --dump, or a setenv output key")
	}

	f, err := os.Create(output)
	if err != nil {
		return pkg.MakeError(pkg.ErrWriteOutput, err)
	}
	defer f.Close()

	return result.WriteTo(f)
}
