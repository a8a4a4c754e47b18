package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jhoicas/mm-inventario/internal/application/dto"
)

type countCreateCmd struct {
	env       *Env
	warehouse string
}

func (*countCreateCmd) Name() string     { return "count-create" }
func (*countCreateCmd) Synopsis() string { return "abre un inventario para un almacén" }
func (*countCreateCmd) Usage() string {
	return `mmctl count-create -w <almacén>

  Congela el stock actual del almacén. Solo puede haber un inventario abierto por almacén.
`
}

func (c *countCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.warehouse, "w", "", "ID del almacén.")
}

func (c *countCreateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := c.env.Counts.Create(ctx, dto.CreateCountRequest{WarehouseID: c.warehouse})
	if err != nil {
		return c.env.fail(err)
	}
	return c.env.printMarkdown(countMarkdown(inv))
}

type countSetCmd struct {
	env     *Env
	id      string
	product string
	counted float64
}

func (*countSetCmd) Name() string     { return "count-set" }
func (*countSetCmd) Synopsis() string { return "registra la cantidad contada de un producto" }
func (*countSetCmd) Usage() string {
	return `mmctl count-set -id <inventario> -p <producto> -c <contado>
`
}

func (c *countSetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID del inventario.")
	f.StringVar(&c.product, "p", "", "ID del producto.")
	f.Float64Var(&c.counted, "c", 0, "Cantidad contada.")
}

func (c *countSetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.product == "" {
		return c.env.usage("count-set: -id y -p son obligatorios")
	}
	line, err := c.env.Counts.UpdateCount(ctx, c.id, c.product, dto.UpdateCountRequest{Counted: c.counted})
	if err != nil {
		return c.env.fail(err)
	}
	fmt.Fprintf(c.env.Out, "%s %s: sistema %d, contado %d, diferencia %+d\n",
		line.SKU, line.ProductName, line.SystemQty, line.CountedQty, line.Diff)
	return subcommands.ExitSuccess
}

type countCloseCmd struct {
	env *Env
	id  string
}

func (*countCloseCmd) Name() string     { return "count-close" }
func (*countCloseCmd) Synopsis() string { return "cierra un inventario y aplica los ajustes" }
func (*countCloseCmd) Usage() string {
	return `mmctl count-close -id <inventario>

  Cada diferencia se registra como movimiento ADJ y el stock queda igual a lo contado.
`
}

func (c *countCloseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID del inventario.")
}

func (c *countCloseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.env.usage("count-close: -id es obligatorio")
	}
	inv, err := c.env.Counts.Close(ctx, c.id)
	if err != nil {
		return c.env.fail(err)
	}
	return c.env.printMarkdown(countMarkdown(inv))
}

type countSheetCmd struct {
	env  *Env
	id   string
	path string
}

func (*countSheetCmd) Name() string     { return "count-sheet" }
func (*countSheetCmd) Synopsis() string { return "genera la hoja de conteo en PDF" }
func (*countSheetCmd) Usage() string {
	return `mmctl count-sheet -id <inventario> [-o <archivo.pdf>]
`
}

func (c *countSheetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID del inventario.")
	f.StringVar(&c.path, "o", "", "Archivo de salida. Por defecto inventario-<id>.pdf.")
}

func (c *countSheetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return c.env.usage("count-sheet: -id es obligatorio")
	}
	pdf, err := c.env.Counts.Sheet(ctx, c.id)
	if err != nil {
		return c.env.fail(err)
	}
	path := c.path
	if path == "" {
		path = fmt.Sprintf("inventario-%s.pdf", c.id)
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return c.env.fail(err)
	}
	fmt.Fprintf(c.env.Out, "hoja escrita en %s (%d bytes)\n", path, len(pdf))
	return subcommands.ExitSuccess
}
