package cli

import (
	"fmt"
	"strings"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/pkg/money"
)

// escape evita que un "|" en un nombre rompa la tabla.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func stockMarkdown(items []dto.StockItemDTO) string {
	var b strings.Builder
	b.WriteString("# Existencias\n\n")
	if len(items) == 0 {
		b.WriteString("Sin productos.\n")
		return b.String()
	}
	b.WriteString("| Almacén | SKU | Producto | Cantidad | Mín | Máx | |\n")
	b.WriteString("|---|---|---|---:|---:|---:|---|\n")
	for _, it := range items {
		flag := ""
		if it.Low {
			flag = "BAJO"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %d | %d | %s |\n",
			escape(it.WarehouseName), escape(it.SKU), escape(it.ProductName), it.Qty, it.Min, it.Max, flag)
	}
	return b.String()
}

func movementsMarkdown(title string, list []dto.MovementResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(list) == 0 {
		b.WriteString("Sin movimientos.\n")
		return b.String()
	}
	b.WriteString("| Fecha | Tipo | Almacén | Producto | Cantidad | Nota |\n")
	b.WriteString("|---|---|---|---|---:|---|\n")
	for _, m := range list {
		fmt.Fprintf(&b, "| %s | %s | %s | %s %s | %d | %s |\n",
			money.FormatDateDMY(m.CreatedAt), m.Type, escape(m.WarehouseName),
			escape(m.ProductSKU), escape(m.ProductName), m.Qty, escape(m.Note))
	}
	return b.String()
}

func countMarkdown(inv *dto.CountResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Inventario %s\n\n", inv.ID)
	fmt.Fprintf(&b, "- Almacén: %s\n", inv.WarehouseName)
	fmt.Fprintf(&b, "- Estado: %s\n", inv.Status)
	fmt.Fprintf(&b, "- Creado: %s\n", money.FormatDateDMY(inv.CreatedAt))
	if inv.ClosedAt != nil {
		fmt.Fprintf(&b, "- Cerrado: %s\n", money.FormatDateDMY(*inv.ClosedAt))
	}
	fmt.Fprintf(&b, "- Líneas con diferencia: %d\n\n", inv.DiffLines)

	b.WriteString("| Producto | SKU | Sistema | Contado | Dif. |\n")
	b.WriteString("|---|---|---:|---:|---:|\n")
	for _, l := range inv.Lines {
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %+d |\n",
			escape(l.ProductName), escape(l.SKU), l.SystemQty, l.CountedQty, l.Diff)
	}
	return b.String()
}

func dashboardMarkdown(s *dto.DashboardSummaryDTO) string {
	var b strings.Builder
	b.WriteString("# Resumen\n\n")
	fmt.Fprintf(&b, "- Tiendas: %d\n", s.Stores)
	fmt.Fprintf(&b, "- Almacenes: %d\n", s.Warehouses)
	fmt.Fprintf(&b, "- Productos: %d\n", s.Products)
	fmt.Fprintf(&b, "- Servicios: %d\n", s.Services)
	fmt.Fprintf(&b, "- Inventarios abiertos: %d\n", s.OpenInventories)
	fmt.Fprintf(&b, "- Unidades en stock: %d\n", s.TotalUnits)
	fmt.Fprintf(&b, "- Valor del stock (%s): %s\n\n", s.BaseCurrency, s.StockValueText)

	b.WriteString("## Stock bajo\n\n")
	if len(s.LowStock) == 0 {
		b.WriteString("Ningún producto por debajo del mínimo.\n")
		return b.String()
	}
	b.WriteString("| Almacén | SKU | Producto | Cantidad | Mín |\n")
	b.WriteString("|---|---|---|---:|---:|\n")
	for _, l := range s.LowStock {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %d |\n",
			escape(l.WarehouseName), escape(l.SKU), escape(l.ProductName), l.Qty, l.Min)
	}
	return b.String()
}
