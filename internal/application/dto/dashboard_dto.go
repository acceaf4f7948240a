package dto

import "github.com/shopspring/decimal"

// FacetsDTO respuesta de GET /api/dashboard/facets.
// Valores distintos del dataset para poblar los selectores del dashboard.
type FacetsDTO struct {
	Years     []int    `json:"years"`      // ascendente
	ItemTypes []string `json:"item_types"` // lexicográfico
}

// SalesRecordDTO un registro normalizado del dataset.
type SalesRecordDTO struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	Supplier        string          `json:"supplier"`
	ItemType        string          `json:"item_type"`
	RetailSales     decimal.Decimal `json:"retail_sales"`
	RetailTransfers decimal.Decimal `json:"retail_transfers"`
	WarehouseSales  decimal.Decimal `json:"warehouse_sales"`
}

// RecordsResponse respuesta de GET /api/dashboard/records.
type RecordsResponse struct {
	Total   int              `json:"total"`
	Records []SalesRecordDTO `json:"records"`
}

// MonthlyBucketDTO totales de un mes calendario sobre el subconjunto filtrado.
// Los 12 meses siempre están presentes; los meses sin datos van en cero.
type MonthlyBucketDTO struct {
	Month           int             `json:"month"` // 1..12
	Label           string          `json:"label"` // ej: "Enero"
	RetailSales     decimal.Decimal `json:"retail_sales"`
	RetailTransfers decimal.Decimal `json:"retail_transfers"`
	WarehouseSales  decimal.Decimal `json:"warehouse_sales"`
}

// TotalsDTO totales generales del subconjunto filtrado, independientes del mes.
type TotalsDTO struct {
	RetailSales     decimal.Decimal `json:"retail_sales"`
	RetailTransfers decimal.Decimal `json:"retail_transfers"`
	WarehouseSales  decimal.Decimal `json:"warehouse_sales"`
}

// TopSupplierDTO proveedor rankeado por (retail + bodega).
type TopSupplierDTO struct {
	Supplier string          `json:"supplier"`
	Value    decimal.Decimal `json:"value"`
}

// AppliedCriteriaDTO eco de los criterios aplicados, ya normalizados.
type AppliedCriteriaDTO struct {
	Year     string `json:"year"`
	ItemType string `json:"item_type"`
	Month    string `json:"month"`
	Supplier string `json:"supplier"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: las series
// listas para graficar (12 buckets mensuales, totales y top proveedores).
type DashboardSummaryDTO struct {
	Criteria     AppliedCriteriaDTO `json:"criteria"`
	RecordCount  int                `json:"record_count"` // registros tras el filtro
	Monthly      []MonthlyBucketDTO `json:"monthly"`      // siempre 12 entradas
	Totals       TotalsDTO          `json:"totals"`
	TopSuppliers []TopSupplierDTO   `json:"top_suppliers"` // ≤ 4, descendente
}
