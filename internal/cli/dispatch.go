// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
)

// DefaultCommand runs when no arguments are given.
const DefaultCommand = "menu"

// ServiceFactory creates a Service from config.
// Used to inject the task store during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, stdio commands.IO) int {
	if len(args) == 0 {
		return d.dispatch(ctx, DefaultCommand, nil, stdio)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		if cmd, ok := d.registry.Find(cmdName); ok {
			return d.dispatchCommand(ctx, cmd, args[1:], stdio)
		}
		fmt.Fprintf(stdio.Err, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], stdio)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, stdio commands.IO) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(stdio.Err, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, stdio)
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
	noColor   bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configDir, "config", "", "")
	fs.BoolVar(&f.quiet, "quiet", false, "")
	fs.BoolVar(&f.debug, "debug", false, "")
	fs.BoolVar(&f.noColor, "no-color", false, "")
}

// apply lets flags that were set override file and environment settings.
func (f *commonFlags) apply(cfg *config.Config) {
	if f.quiet {
		cfg.Quiet = true
	}
	if f.debug {
		cfg.Debug = true
	}
	if f.noColor {
		cfg.NoColor = true
	}
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, stdio commands.IO) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var common commonFlags
	common.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stdio.Err, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(stdio.Err, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.Load(common.configDir)
	if err != nil {
		fmt.Fprintf(stdio.Err, "error: %s\n", err)
		return exitcode.ConfigError
	}
	common.apply(cfg)

	logger := logging.New(stdio.Err, cfg)
	ctx = log.WithContext(ctx, logger)
	logger.Debug("dispatch", "command", cmd.Name(), "config", cfg.Dir)

	var svc service.Service
	if cmd.NeedsService() {
		if d.factory == nil {
			fmt.Fprintln(stdio.Err, "error: no task store configured")
			return exitcode.InternalError
		}
		svc, err = d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(stdio.Err, "error: task store: %s\n", err)
			return exitcode.InternalError
		}
	}

	return cmd.Run(ctx, cfg, svc, positionalArgs, stdio)
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	errStr := err.Error()
	switch {
	case strings.HasPrefix(errStr, "flag needs an argument:"):
		name := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + name
	case strings.HasPrefix(errStr, "flag provided but not defined:"):
		return "unknown flag: " + strings.TrimPrefix(errStr, "flag provided but not defined: ")
	default:
		return errStr
	}
}
