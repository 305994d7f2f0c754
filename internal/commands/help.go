package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return []string{"-h", "--help"} }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todo help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int {
	writeHelp(stdio.Out, DefaultRegistry)
	return exitcode.Success
}

// writeHelp prints usage for every registered command.
func writeHelp(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %-32s %s\n", config.AppName, "Run the console menu")
	for _, cmd := range r.All() {
		fmt.Fprintf(w, "  %-32s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(w, commonFlagsText)
}

const commonFlagsText = `
Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress confirmations
  --debug          Print debug logs to stderr
  --no-color       Disable colored output
`
