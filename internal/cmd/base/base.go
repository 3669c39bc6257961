// Package base holds the pieces shared by every restkit command.
package base

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Command is embedded by every command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	// Fs is the filesystem configuration and preset files are read from.
	Fs afero.Fs
}

// NewCommand returns a Command reading files from the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		UI:  ui,
		Log: log,
		Fs:  afero.NewOsFs(),
	}
}

// Context returns a context cancelled on interrupt, so a request in flight is
// abandoned when the user presses Ctrl-C.
func Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
