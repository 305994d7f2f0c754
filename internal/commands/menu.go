package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/menu"
	"todo/internal/service"
)

func init() {
	Register(&MenuCmd{})
}

// MenuCmd implements the menu command.
type MenuCmd struct{}

func (c *MenuCmd) Name() string       { return "menu" }
func (c *MenuCmd) Aliases() []string  { return []string{"console"} }
func (c *MenuCmd) Synopsis() string   { return "Run the numbered console menu" }
func (c *MenuCmd) Usage() string      { return "todo menu [common flags]" }
func (c *MenuCmd) NeedsService() bool { return true }

func (c *MenuCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MenuCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, stdio IO) int {
	if len(args) > 0 {
		fmt.Fprintf(stdio.Err, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	session := menu.NewSession(svc, stdio.In, stdio.Out, cfg)
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	// A blocked line read never observes ctx, so stop waiting for it.
	// The reader goroutine is abandoned; the process exits right after.
	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		return exitcode.Interrupted
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return exitcode.Interrupted
		}
		fmt.Fprintf(stdio.Err, "error: %s\n", err)
		return exitcode.InternalError
	}
	return exitcode.Success
}
