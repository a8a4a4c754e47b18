package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/jhoicas/mm-inventario/internal/application/dto"
)

type stockCmd struct {
	env       *Env
	warehouse string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "existencias por almacén y producto" }
func (*stockCmd) Usage() string {
	return `mmctl stock [-w <almacén>]

  Lista la cantidad de cada producto en cada almacén; marca los que están bajo el mínimo.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.warehouse, "w", "", "ID del almacén. Vacío = todos.")
}

func (c *stockCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	items, err := c.env.Movements.Stock(ctx, c.warehouse)
	if err != nil {
		return c.env.fail(err)
	}
	return c.env.printMarkdown(stockMarkdown(items))
}

type moveCmd struct {
	env       *Env
	typ       string
	warehouse string
	product   string
	qty       float64
	note      string
}

func (*moveCmd) Name() string     { return "move" }
func (*moveCmd) Synopsis() string { return "registra una entrada o salida" }
func (*moveCmd) Usage() string {
	return `mmctl move -t IN|OUT -w <almacén> -p <producto> -q <cantidad> [-n <nota>]

  La cantidad se redondea a entero. Una salida mayor al stock disponible se rechaza.
`
}

func (c *moveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "", "Tipo de movimiento: IN u OUT.")
	f.StringVar(&c.warehouse, "w", "", "ID del almacén.")
	f.StringVar(&c.product, "p", "", "ID del producto.")
	f.Float64Var(&c.qty, "q", 0, "Cantidad.")
	f.StringVar(&c.note, "n", "", "Nota opcional.")
}

func (c *moveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.typ == "" || c.warehouse == "" || c.product == "" {
		return c.env.usage("move: -t, -w y -p son obligatorios")
	}
	mov, err := c.env.Movements.RegisterMovement(ctx, dto.RegisterMovementRequest{
		Type:        c.typ,
		WarehouseID: c.warehouse,
		ProductID:   c.product,
		Qty:         c.qty,
		Note:        c.note,
	})
	if err != nil {
		return c.env.fail(err)
	}
	return c.env.printMarkdown(movementsMarkdown("Movimiento registrado", []dto.MovementResponse{*mov}))
}

type movesCmd struct {
	env   *Env
	limit int
}

func (*movesCmd) Name() string     { return "moves" }
func (*movesCmd) Synopsis() string { return "últimos movimientos" }
func (*movesCmd) Usage() string {
	return `mmctl moves [-n <cantidad>]
`
}

func (c *movesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", dto.DefaultMovementLimit, "Cantidad de movimientos a mostrar.")
}

func (c *movesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := c.env.Movements.ListMovements(ctx, c.limit)
	if err != nil {
		return c.env.fail(err)
	}
	return c.env.printMarkdown(movementsMarkdown("Movimientos", list))
}
