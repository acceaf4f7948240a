package sales

import (
	"sort"

	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
)

// Facets valores distintos presentes en el dataset; alimentan los selectores del dashboard.
type Facets struct {
	Years     []int    // ascendente, sin duplicados
	ItemTypes []string // orden lexicográfico, sin duplicados
}

// LatestYear el año máximo presente; ok=false con dataset vacío
// (en ese caso "latest" no impone restricción alguna).
func (f Facets) LatestYear() (int, bool) {
	if len(f.Years) == 0 {
		return 0, false
	}
	return f.Years[len(f.Years)-1], true
}

// ExtractFacets deriva las facetas del conjunto de registros.
// Función pura, O(n) + dedup; se recalcula cada vez que cambia el dataset.
func ExtractFacets(records []entity.SalesRecord) Facets {
	yearSet := make(map[int]struct{})
	typeSet := make(map[string]struct{})
	for _, r := range records {
		yearSet[r.Year] = struct{}{}
		typeSet[r.ItemType] = struct{}{}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	return Facets{Years: years, ItemTypes: types}
}
