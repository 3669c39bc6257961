package remove

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/restkit/internal/cmd/base"
)

type Command struct {
	*base.Command

	flags     base.ClientFlags
	flagForce bool
}

func (c *Command) Synopsis() string {
	return "Delete records of a resource"
}

func (c *Command) Help() string {
	return `Usage: restkit delete [options] <resource> <key>...

  This command deletes records by key. Soft-deleted records can be brought
  back with "restkit restore"; -force deletes soft-deleted records for good.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)

	f.BoolVar(
		&c.flagForce, "force", false,
		"Permanently delete soft-deleted records.",
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

	keys := base.ParseKeys(args[1:])

	var resp json.RawMessage
	if c.flagForce {
		resp, err = res.ForceDelete(ctx, keys)
	} else {
		resp, err = res.Remove(ctx, keys)
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error deleting from %s: %v", res.Name(), err))
		return 1
	}

	c.Log.Info("records deleted",
		"resource", res.Name(),
		"count", len(keys),
		"force", c.flagForce)

	if err := c.PrintJSON(resp); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
