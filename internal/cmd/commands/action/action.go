package action

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/restkit/internal/cmd/base"
	"github.com/hashicorp-forge/restkit/pkg/query"
)

type Command struct {
	*base.Command

	flags       base.ClientFlags
	flagRequest string
}

func (c *Command) Synopsis() string {
	return "Run an action on a resource"
}

func (c *Command) Help() string {
	return `Usage: restkit action [options] <resource> <action>

  This command runs a named action of a resource and prints the number of
  impacted records. The records are selected by the search of the request.

  Example:

    $ restkit action -request '{"fields":[{"name":"expires_at","value":"2024-12-31"}]}' products expire` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("action", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)

	f.StringVar(
		&c.flagRequest, "request", "",
		"Action request as JSON",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	args = f.Args()
	if len(args) != 2 {
		c.UI.Error("expected two arguments: the resource name and the action name")
		return 1
	}

	var req query.ActionRequest
	if c.flagRequest != "" {
		if err := base.DecodeJSON("request", c.flagRequest, &req); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
	}
	if err := req.Validate(); err != nil {
		c.UI.Error(fmt.Sprintf("invalid request: %v", err))
		return 1
	}

	ctx, cancel := base.Context()
	defer cancel()

	res, err := c.Resource(ctx, c.flags, args[0])
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing resource: %v", err))
		return 1
	}

	resp, err := res.Actions(ctx, args[1], req)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error running action %q on %s: %v", args[1], res.Name(), err))
		return 1
	}

	if err := c.PrintJSON(resp); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
