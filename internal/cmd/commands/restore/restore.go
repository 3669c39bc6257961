package restore

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
	return "Restore soft-deleted records of a resource"
}

func (c *Command) Help() string {
	return `Usage: restkit restore [options] <resource> <key>...` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("restore", flag.ContinueOnError))
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
	if len(args) < 2 {
		c.UI.Error("expected the resource name and at least one key")
		return 1
	}

	ctx, cancel := base.Context()
	defer cancel()

	res, err := c.Resource(ctx, c.flags, args[0])
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing resource: %v", err))
		return 1
	}

	resp, err := res.Restore(ctx, base.ParseKeys(args[1:]))
	if err != nil {
		c.UI.Error(fmt.Sprintf("error restoring %s: %v", res.Name(), err))
		return 1
	}

	if err := c.PrintJSON(resp); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
