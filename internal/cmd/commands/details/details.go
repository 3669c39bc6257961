package details

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/restkit/internal/cmd/base"
)

type Command struct {
	*base.Command

	flags base.ClientFlags
}

func (c *Command) Synopsis() string {
	return "Describe a resource"
}

func (c *Command) Help() string {
	return `Usage: restkit details [options] <resource>

  This command fetches the description of a resource: its fields, relations,
  scopes, actions and the other capabilities the API exposes for it.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("details", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	args = f.Args()
	if len(args) != 1 {
		c.UI.Error("expected one argument: the resource name")
		return 1
	}

	ctx, cancel := base.Context()
	defer cancel()

	res, err := c.Resource(ctx, c.flags, args[0])
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing resource: %v", err))
		return 1
	}

	details, err := res.Details(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching details: %v", err))
		return 1
	}

	if err := c.PrintJSON(details); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
