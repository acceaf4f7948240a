package sales

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
)

// TopSuppliersLimit cuántos proveedores conserva el ranking del dashboard.
const TopSuppliersLimit = 4

// MonthlyBucket totales de las tres medidas para un mes calendario.
// Los meses sin registros permanecen en cero; nunca se omiten.
type MonthlyBucket struct {
	Month           int // 1..12
	RetailSales     decimal.Decimal
	RetailTransfers decimal.Decimal
	WarehouseSales  decimal.Decimal
}

// Totals totales generales del subconjunto filtrado, independientes del mes.
type Totals struct {
	RetailSales     decimal.Decimal
	RetailTransfers decimal.Decimal
	WarehouseSales  decimal.Decimal
}

// SupplierTotal proveedor con su suma de (retail + bodega).
type SupplierTotal struct {
	Supplier string
	Value    decimal.Decimal
}

// Summary resultado completo de la agregación.
type Summary struct {
	Monthly      [12]MonthlyBucket
	Totals       Totals
	TopSuppliers []SupplierTotal // ≤ TopSuppliersLimit, descendente por Value
}

// Aggregate pliega el subconjunto filtrado en los 12 buckets mensuales, los
// totales generales y el ranking de proveedores. Pliegue puro sin efectos;
// se recalcula completo en cada invocación (el dataset es pequeño, no se
// necesita memoización).
//
// Empates en el ranking: gana el proveedor que aparece primero en el
// subconjunto (orden estable).
func Aggregate(records []entity.SalesRecord) Summary {
	var s Summary
	for i := range s.Monthly {
		s.Monthly[i] = MonthlyBucket{
			Month:           i + 1,
			RetailSales:     decimal.Zero,
			RetailTransfers: decimal.Zero,
			WarehouseSales:  decimal.Zero,
		}
	}
	s.Totals = Totals{
		RetailSales:     decimal.Zero,
		RetailTransfers: decimal.Zero,
		WarehouseSales:  decimal.Zero,
	}

	supplierIdx := make(map[string]int)
	suppliers := make([]SupplierTotal, 0)

	for _, r := range records {
		b := &s.Monthly[r.Month-1]
		b.RetailSales = b.RetailSales.Add(r.RetailSales)
		b.RetailTransfers = b.RetailTransfers.Add(r.RetailTransfers)
		b.WarehouseSales = b.WarehouseSales.Add(r.WarehouseSales)

		s.Totals.RetailSales = s.Totals.RetailSales.Add(r.RetailSales)
		s.Totals.RetailTransfers = s.Totals.RetailTransfers.Add(r.RetailTransfers)
		s.Totals.WarehouseSales = s.Totals.WarehouseSales.Add(r.WarehouseSales)

		i, seen := supplierIdx[r.Supplier]
		if !seen {
			supplierIdx[r.Supplier] = len(suppliers)
			suppliers = append(suppliers, SupplierTotal{Supplier: r.Supplier, Value: decimal.Zero})
			i = len(suppliers) - 1
		}
		suppliers[i].Value = suppliers[i].Value.Add(r.CombinedSales())
	}

	// SliceStable preserva el orden de primera aparición entre empates
	sort.SliceStable(suppliers, func(i, j int) bool {
		return suppliers[i].Value.GreaterThan(suppliers[j].Value)
	})
	if len(suppliers) > TopSuppliersLimit {
		suppliers = suppliers[:TopSuppliersLimit]
	}
	s.TopSuppliers = suppliers

	return s
}
