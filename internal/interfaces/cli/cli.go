// Package cli expone las operaciones de inventario como subcomandos de mmctl.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	appanalytics "github.com/jhoicas/mm-inventario/internal/application/analytics"
	appinventory "github.com/jhoicas/mm-inventario/internal/application/inventory"
)

// Env dependencias compartidas por los subcomandos.
type Env struct {
	Movements *appinventory.MovementUseCase
	Counts    *appinventory.CountUseCase
	Dashboard *appanalytics.DashboardUseCase

	Out io.Writer // por defecto os.Stdout
	Err io.Writer // por defecto os.Stderr

	// Markdown renderiza la salida; nil imprime el markdown tal cual.
	Markdown func(md string) (string, error)
}

// GlamourRenderer renderiza markdown para terminal con el estilo automático.
func GlamourRenderer(width int) (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// Register registra los subcomandos en el commander.
func Register(c *subcommands.Commander, env *Env) {
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.Err == nil {
		env.Err = os.Stderr
	}
	c.Register(&stockCmd{env: env}, "stock")
	c.Register(&moveCmd{env: env}, "stock")
	c.Register(&movesCmd{env: env}, "stock")

	c.Register(&countCreateCmd{env: env}, "inventario")
	c.Register(&countSetCmd{env: env}, "inventario")
	c.Register(&countCloseCmd{env: env}, "inventario")
	c.Register(&countSheetCmd{env: env}, "inventario")

	c.Register(&dashboardCmd{env: env}, "reportes")
}

func (e *Env) printMarkdown(md string) subcommands.ExitStatus {
	out := md
	if e.Markdown != nil {
		rendered, err := e.Markdown(md)
		if err != nil {
			return e.fail(err)
		}
		out = rendered
	}
	fmt.Fprint(e.Out, out)
	return subcommands.ExitSuccess
}

func (e *Env) fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(e.Err, "error:", err)
	return subcommands.ExitFailure
}

func (e *Env) usage(msg string) subcommands.ExitStatus {
	fmt.Fprintln(e.Err, msg)
	return subcommands.ExitUsageError
}
