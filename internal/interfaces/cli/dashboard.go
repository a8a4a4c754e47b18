package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type dashboardCmd struct {
	env *Env
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "resumen: conteos, unidades, stock bajo y valorización" }
func (*dashboardCmd) Usage() string {
	return `mmctl dashboard
`
}

func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sum, err := c.env.Dashboard.GetSummary(ctx)
	if err != nil {
		return c.env.fail(err)
	}
	return c.env.printMarkdown(dashboardMarkdown(sum))
}
