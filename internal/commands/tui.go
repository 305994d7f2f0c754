package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/tui"
)

func init() {
	Register(&TUICmd{})
}

// TUICmd implements the tui command.
type TUICmd struct{}

func (c *TUICmd) Name() string       { return "tui" }
func (c *TUICmd) Aliases() []string  { return []string{"gui"} }
func (c *TUICmd) Synopsis() string   { return "Run the full-screen task interface" }
func (c *TUICmd) Usage() string      { return "todo tui [common flags]" }
func (c *TUICmd) NeedsService() bool { return true }

func (c *TUICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TUICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int {
	if len(args) > 0 {
		fmt.Fprintf(stdio.Err, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if !isTerminalInput(stdio.In) || !output.IsTTY(stdio.Out) {
		fmt.Fprintln(stdio.Err, "error: tui requires a terminal")
		return exitcode.UserError
	}

	err := tui.Run(ctx, svc, tea.WithInput(stdio.In), tea.WithOutput(stdio.Out))
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, context.Canceled):
		return exitcode.Interrupted
	default:
		fmt.Fprintf(stdio.Err, "error: %s\n", err)
		return exitcode.InternalError
	}
}

func isTerminalInput(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
