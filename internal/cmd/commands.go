package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/restkit/internal/cmd/base"
	"github.com/hashicorp-forge/restkit/internal/cmd/commands/action"
	"github.com/hashicorp-forge/restkit/internal/cmd/commands/clients"
	"github.com/hashicorp-forge/restkit/internal/cmd/commands/details"
	"github.com/hashicorp-forge/restkit/internal/cmd/commands/find"
	"github.com/hashicorp-forge/restkit/internal/cmd/commands/mutate"
	"github.com/hashicorp-forge/restkit/internal/cmd/commands/remove"
	"github.com/hashicorp-forge/restkit/internal/cmd/commands/restore"
	"github.com/hashicorp-forge/restkit/internal/cmd/commands/search"
	"github.com/hashicorp-forge/restkit/internal/cmd/commands/version"
)

// Commands is the mapping of all available restkit commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"action": func() (cli.Command, error) {
			return &action.Command{Command: b}, nil
		},
		"clients": func() (cli.Command, error) {
			return &clients.Command{Command: b}, nil
		},
		"delete": func() (cli.Command, error) {
			return &remove.Command{Command: b}, nil
		},
		"details": func() (cli.Command, error) {
			return &details.Command{Command: b}, nil
		},
		"find": func() (cli.Command, error) {
			return &find.Command{Command: b}, nil
		},
		"mutate": func() (cli.Command, error) {
			return &mutate.Command{Command: b}, nil
		},
		"restore": func() (cli.Command, error) {
			return &restore.Command{Command: b}, nil
		},
		"search": func() (cli.Command, error) {
			return &search.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
