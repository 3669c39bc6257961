package clients

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/restkit/internal/cmd/base"
)

type Command struct {
	*base.Command

	flags base.ClientFlags
}

type clientInfo struct {
	Slug    string `json:"slug"`
	URL     string `json:"url"`
	APIPath string `json:"api_path"`
	Default bool   `json:"default"`
}

func (c *Command) Synopsis() string {
	return "List the configured API clients"
}

func (c *Command) Help() string {
	return `Usage: restkit clients [options]

  This command lists the API clients of the configuration file in the order
  they are declared, marking the one resources use by default.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("clients", flag.ContinueOnError))
	base.AddClientFlags(f, &c.flags)
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx, cancel := base.Context()
	defer cancel()

	_, reg, err := c.Registry(ctx, c.flags)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading clients: %v", err))
		return 1
	}

	clients := reg.Clients()
	infos := make([]clientInfo, 0, len(clients))
	for _, client := range clients {
		infos = append(infos, clientInfo{
			Slug:    client.Slug,
			URL:     client.URL,
			APIPath: client.APIPath,
			Default: client.IsDefault,
		})
	}

	if err := c.PrintJSON(infos); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
