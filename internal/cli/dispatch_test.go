package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
}

// run dispatches args with input on stdin and an isolated config directory.
func run(t *testing.T, factory cli.ServiceFactory, args []string, input string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var outBuf, errBuf bytes.Buffer
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
	stdio := commands.IO{In: strings.NewReader(input), Out: &outBuf, Err: &errBuf}
	code = dispatcher.Run(context.Background(), args, stdio)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_NoArgsRunsMenu(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := run(t, testFactory(svc), nil, "2\nBuy milk\n4\n")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "To-Do List Menu:") {
		t.Errorf("expected menu output, got %q", stdout)
	}
	if want := []string{"Buy milk"}; !reflect.DeepEqual(svc.Titles(), want) {
		t.Errorf("expected %q, got %q", want, svc.Titles())
	}
}

func TestDispatcher_ConsoleAlias(t *testing.T) {
	stdout, _, code := run(t, testFactory(testutil.NewFakeService()), []string{"console", "--quiet"}, "4\n")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if strings.Contains(stdout, "Goodbye!") {
		t.Errorf("expected --quiet to suppress farewell, got %q", stdout)
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), []string{"unknowncmd"}, "")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), []string{"--quiet"}, "")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	for _, name := range []string{"help", "-h", "--help"} {
		stdout, stderr, code := run(t, nil, []string{name}, "")

		if code != exitcode.Success {
			t.Errorf("%s: expected exit code %d, got %d", name, exitcode.Success, code)
		}
		if stderr != "" {
			t.Errorf("%s: expected no stderr, got %q", name, stderr)
		}
		if !strings.Contains(stdout, "Usage:") {
			t.Errorf("%s: expected help output to contain 'Usage:'", name)
		}
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	stdout, stderr, code := run(t, nil, []string{"version"}, "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown", args: []string{"help", "--unknown"}, want: "error: unknown flag: -unknown\n"},
		{name: "missing value", args: []string{"menu", "--config"}, want: "error: flag needs an argument: -config\n"},
		{name: "bad bool", args: []string{"menu", "--quiet=maybe"}, want: "error: invalid boolean value \"maybe\" for -quiet: parse error\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := run(t, testFactory(testutil.NewFakeService()), tt.args, "")

			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if stderr != tt.want {
				t.Errorf("expected %q, got %q", tt.want, stderr)
			}
		})
	}
}

func TestDispatcher_ConfigError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("color = \"loud\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), []string{"menu", "--config", dir}, "4\n")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(stderr, "error: parsing ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, errors.New("unavailable")
	}

	_, stderr, code := run(t, factory, []string{"menu"}, "4\n")

	if code != exitcode.InternalError {
		t.Errorf("expected exit code %d, got %d", exitcode.InternalError, code)
	}
	if stderr != "error: task store: unavailable\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	stdout, stderr, code := run(t, testFactory(testutil.NewFakeService()), []string{"menu", "--debug"}, "4\n")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stderr, "dispatch") || !strings.Contains(stderr, "command=menu") {
		t.Errorf("expected dispatch debug log, got %q", stderr)
	}
	if strings.Contains(stdout, "dispatch") {
		t.Errorf("logs leaked into stdout: %q", stdout)
	}
}
