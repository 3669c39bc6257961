package search

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/restkit/internal/cmd/base"
	"github.com/hashicorp-forge/restkit/pkg/query"
)

type Command struct {
	*base.Command

	flags     base.ClientFlags
	flagQuery string
	flagPage  int
	flagLimit int
	flagAll   bool
}

func (c *Command) Synopsis() string {
	return "Search a resource"
}

func (c *Command) Help() string {
	return `Usage: restkit search [options] <resource>

  This command searches a resource. The query given with -query is merged
  over the preset of the resource: every top-level key of the query replaces
  the same key of the preset.

  Example:

    $ restkit search -query '{"filters":[{"field":"price","operator":">","value":10}]}' products` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("search", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)

	f.StringVar(
		&c.flagQuery, "query", "",
		"Search query as JSON",
	)
	f.IntVar(
		&c.flagPage, "page", 0,
		"Page to fetch. Overrides the page of -query",
	)
	f.IntVar(
		&c.flagLimit, "limit", 0,
		"Results per page. Overrides the limit of -query",
	)
	f.BoolVar(
		&c.flagAll, "all", false,
		"Follow the pages until the last one and print every record.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	f := c.Flags()
	if err := f.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	args = f.Args()
	if len(args) != 1 {
		ui.Error("expected one argument: the resource name")
		return 1
	}

	var q query.SearchQuery
	if c.flagQuery != "" {
		if err := base.DecodeJSON("query", c.flagQuery, &q); err != nil {
			ui.Error(err.Error())
			return 1
		}
	}
	if c.flagPage > 0 {
		q.Page = query.Int(c.flagPage)
	}
	if c.flagLimit > 0 {
		q.Limit = query.Int(c.flagLimit)
	}
	if err := q.Validate(); err != nil {
		ui.Error(fmt.Sprintf("invalid query: %v", err))
		return 1
	}

	ctx, cancel := base.Context()
	defer cancel()

	res, err := c.Resource(ctx, c.flags, args[0])
	if err != nil {
		ui.Error(fmt.Sprintf("error initializing resource: %v", err))
		return 1
	}

	page, err := res.Search(ctx, q)
	if err != nil {
		ui.Error(fmt.Sprintf("error searching %s: %v", res.Name(), err))
		return 1
	}

	if !c.flagAll {
		if err := c.PrintJSON(page.SearchResponse); err != nil {
			ui.Error(err.Error())
			return 1
		}
		return 0
	}

	records := page.Data
	for page.CurrentPage < page.LastPage {
		logger.Debug("fetching next page",
			"resource", res.Name(),
			"page", page.CurrentPage+1,
			"last_page", page.LastPage)

		next, err := page.NextPage(ctx)
		if err != nil {
			ui.Error(fmt.Sprintf("error fetching page %d: %v", page.CurrentPage+1, err))
			return 1
		}
		if next.CurrentPage <= page.CurrentPage {
			ui.Error(fmt.Sprintf("server returned page %d after page %d", next.CurrentPage, page.CurrentPage))
			return 1
		}

		records = append(records, next.Data...)
		page = next
	}

	if err := c.PrintJSON(records); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
