package find

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/restkit/internal/cmd/base"
	"github.com/hashicorp-forge/restkit/pkg/query"
)

type Command struct {
	*base.Command

	flags     base.ClientFlags
	flagID    string
	flagQuery string
}

func (c *Command) Synopsis() string {
	return "Find a single record of a resource"
}

func (c *Command) Help() string {
	return `Usage: restkit find [options] <resource>

  This command prints the first record matching the query, or the record
  with the key given by -id. It exits with status 2 when nothing matched.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("find", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)

	f.StringVar(
		&c.flagID, "id", "",
		"Key of the record. Adds an id filter under the preset and -query",
	)
	f.StringVar(
		&c.flagQuery, "query", "",
		"Search query as JSON",
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

	var q query.SearchQuery
	if c.flagQuery != "" {
		if err := base.DecodeJSON("query", c.flagQuery, &q); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
	}
	if err := q.Validate(); err != nil {
		c.UI.Error(fmt.Sprintf("invalid query: %v", err))
		return 1
	}

	ctx, cancel := base.Context()
	defer cancel()

	res, err := c.Resource(ctx, c.flags, args[0])
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing resource: %v", err))
		return 1
	}

	var record *base.Record
	if c.flagID != "" {
		record, err = res.FindOneByID(ctx, base.ParseKey(c.flagID), q)
	} else {
		record, err = res.FindOne(ctx, q)
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error searching %s: %v", res.Name(), err))
		return 1
	}

	if record == nil {
		c.UI.Warn("no matching record")
		return 2
	}

	if err := c.PrintJSON(record); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
