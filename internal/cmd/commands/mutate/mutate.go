package mutate

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/restkit/internal/cmd/base"
	"github.com/hashicorp-forge/restkit/pkg/query"
)

type Command struct {
	*base.Command

	flags         base.ClientFlags
	flagMutations string
}

func (c *Command) Synopsis() string {
	return "Create, update or relate records of a resource"
}

func (c *Command) Help() string {
	return `Usage: restkit mutate [options] <resource>

  This command applies a list of mutations to a resource in one request and
  prints the keys of the created and updated records.

  Example:

    $ restkit mutate -mutations '[{"operation":"update","key":2,"attributes":{"price":19.99}}]' products` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("mutate", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)

	f.StringVar(
		&c.flagMutations, "mutations", "",
		"(Required) Mutations as a JSON array",
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
	if len(args) != 1 {
		c.UI.Error("expected one argument: the resource name")
		return 1
	}

	if c.flagMutations == "" {
		c.UI.Error("mutations flag is required")
		return 1
	}

	var mutations []query.MutateRequest[base.Record]
	if err := base.DecodeJSON("mutations", c.flagMutations, &mutations); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	for i, m := range mutations {
		if err := m.Validate(); err != nil {
			c.UI.Error(fmt.Sprintf("invalid mutation %d: %v", i, err))
			return 1
		}
	}

	ctx, cancel := base.Context()
	defer cancel()

	res, err := c.Resource(ctx, c.flags, args[0])
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing resource: %v", err))
		return 1
	}

	resp, err := res.Mutate(ctx, mutations)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error mutating %s: %v", res.Name(), err))
		return 1
	}

	if err := c.PrintJSON(resp); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
