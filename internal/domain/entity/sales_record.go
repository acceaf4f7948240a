package entity

import "github.com/shopspring/decimal"

// Valores centinela aplicados en el parseo cuando la columna viene vacía.
const (
	UnknownSupplier = "Unknown supplier"
	UnspecifiedType = "Unspecified"
)

// SalesRecord una fila normalizada del dataset "Warehouse and Retail Sales".
// Inmutable una vez creado; el conjunto completo se reemplaza en bloque al recargar.
type SalesRecord struct {
	Year            int
	Month           int    // 1..12; filas sin mes válido se descartan en el parseo
	Supplier        string // UnknownSupplier si la columna viene vacía
	ItemType        string // UnspecifiedType si la columna viene vacía
	RetailSales     decimal.Decimal
	RetailTransfers decimal.Decimal
	WarehouseSales  decimal.Decimal
}

// CombinedSales retail + bodega; es la medida con la que se rankean proveedores.
func (r SalesRecord) CombinedSales() decimal.Decimal {
	return r.RetailSales.Add(r.WarehouseSales)
}
