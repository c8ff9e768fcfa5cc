package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"

	"lookml-builder/internal/builder"
	"lookml-builder/internal/logger"
	"lookml-builder/internal/mapping"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Environment variables that supply flag defaults.
const (
	EnvConfig    = "LOOKML_CONFIG"
	EnvOutputDir = "LOOKML_OUTPUT_DIR"
	EnvVerbose   = "LOOKML_VERBOSE"
)

const usageText = `Usage: lookml-builder <command> [flags]

Commands:
  generate <view_file> [new_view_name]  Generate refinement layers for one view
  batch                                 Generate refinement layers for every view in a directory
  init-config                           Create a sample configuration file
  ontology <view_file>                  Print an ontology skeleton for a view file
  history                               List recorded runs

Run 'lookml-builder <command> --help' for command flags.
`

// usageError marks errors caused by bad command line input.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// App is the command line application.
type App struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

// New creates an App writing results to stdout and logs to stderr.
func New(stdout, stderr io.Writer) *App {
	return &App{stdout: stdout, stderr: stderr, getenv: os.Getenv}
}

// Run executes the command in args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.stderr, usageText)
		return ExitUsage
	}

	var err error

	switch cmd, rest := args[0], args[1:]; cmd {
	case "generate":
		err = a.runGenerate(ctx, rest)
	case "batch":
		err = a.runBatch(ctx, rest)
	case "init-config":
		err = a.runInitConfig(rest)
	case "ontology":
		err = a.runOntology(rest)
	case "history":
		err = a.runHistory(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.stdout, usageText)
		return ExitOK
	default:
		err = usagef("unknown command %q", cmd)
	}

	return a.exitCode(err)
}

func (a *App) exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitOK
	}

	fmt.Fprintf(a.stderr, "Error: %v\n", err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(a.stderr, usageText)
		return ExitUsage
	}

	return ExitFailure
}

// globalFlags are accepted by every command that classifies views.
type globalFlags struct {
	config  string
	verbose bool
	strict  bool
}

func (g *globalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.config, "config", "", "configuration file (default config.yaml when present, or set "+EnvConfig+")")
	fs.BoolVar(&g.verbose, "verbose", false, "enable verbose (debug) logging (or set "+EnvVerbose+"=true)")
	fs.BoolVar(&g.strict, "strict", false, "fail when classification overrides name unknown fields")
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.SortFlags = false

	return fs
}

// parse parses command flags, mapping flag errors to usage errors.
func (a *App) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}

		return usagef("%s: %v", fs.Name(), err)
	}

	return nil
}

// envString sets *target from the environment when the flag was not given.
func (a *App) envString(fs *flag.FlagSet, name, key string, target *string) {
	if fs.Changed(name) {
		return
	}

	if v := a.getenv(key); v != "" {
		*target = v
	}
}

// envBool sets *target from the environment when the flag was not given.
func (a *App) envBool(fs *flag.FlagSet, name, key string, target *bool) error {
	if fs.Changed(name) {
		return nil
	}

	v := a.getenv(key)
	if v == "" {
		return nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return usagef("invalid %s value %q", key, v)
	}

	*target = b

	return nil
}

// applyGlobalEnv fills global flags from the environment.
func (a *App) applyGlobalEnv(fs *flag.FlagSet, g *globalFlags) error {
	a.envString(fs, "config", EnvConfig, &g.config)
	return a.envBool(fs, "verbose", EnvVerbose, &g.verbose)
}

func (a *App) logger(g *globalFlags) *slog.Logger {
	return logger.New(a.stderr, g.verbose)
}

// loadConfig resolves the configuration. An explicit path must exist;
// otherwise config.yaml is used when present and the defaults when not.
func (a *App) loadConfig(g *globalFlags, log *slog.Logger) (*mapping.Config, error) {
	path := g.config

	if path == "" {
		if _, err := os.Stat(mapping.DefaultConfigFile); err == nil {
			path = mapping.DefaultConfigFile
		}
	}

	cfg := mapping.DefaultConfig()

	if path != "" {
		loaded, err := mapping.LoadFile(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
		log.Info("using configuration", "path", path)

		for _, d := range cfg.Warnings {
			log.Warn("configuration warning", "path", path, "detail", d.String())
		}
	} else {
		log.Info("using default configuration", "reason", "no config.yaml found")
	}

	if g.strict {
		cfg.Classification.Strict = true
	}

	return cfg, nil
}

// outputDirFlag registers the output root flag.
func outputDirFlag(fs *flag.FlagSet, target *string) {
	fs.StringVarP(target, "output-dir", "o", builder.DefaultOutputDir, "output directory (or set "+EnvOutputDir+")")
}
