package version

import (
	"github.com/hashicorp-forge/restkit/internal/cmd/base"
	"github.com/hashicorp-forge/restkit/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the restkit version"
}

func (c *Command) Help() string {
	return `Usage: restkit version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
