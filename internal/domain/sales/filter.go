package sales

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/sales-dashboard-api/internal/domain"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
)

// Selectores especiales de Criteria.
const (
	SelectorAll    = "all"
	SelectorLatest = "latest" // solo válido para Year; se resuelve contra las facetas actuales
)

// Criteria criterios de filtrado tal como llegan del cliente. Efímeros: se
// recalcula todo el resultado en cada cambio, nada se cachea.
type Criteria struct {
	Year     string // "all" | "latest" | año concreto ("2020")
	ItemType string // "all" | tipo exacto
	Month    string // "all" | "1".."12"
	Supplier string // subcadena, insensible a mayúsculas; vacío = sin restricción
}

// DefaultCriteria sin ninguna restricción.
func DefaultCriteria() Criteria {
	return Criteria{Year: SelectorAll, ItemType: SelectorAll, Month: SelectorAll}
}

// Normalize aplica trims y defaults ("" equivale a "all").
func (c Criteria) Normalize() Criteria {
	c.Year = strings.ToLower(strings.TrimSpace(c.Year))
	if c.Year == "" {
		c.Year = SelectorAll
	}
	c.ItemType = strings.TrimSpace(c.ItemType)
	if c.ItemType == "" {
		c.ItemType = SelectorAll
	}
	c.Month = strings.ToLower(strings.TrimSpace(c.Month))
	if c.Month == "" {
		c.Month = SelectorAll
	}
	c.Supplier = strings.TrimSpace(c.Supplier)
	return c
}

// Validate verifica los selectores numéricos. Envuelve domain.ErrInvalidInput
// para que la capa HTTP lo traduzca a 400.
func (c Criteria) Validate() error {
	c = c.Normalize()
	if c.Year != SelectorAll && c.Year != SelectorLatest {
		if _, err := strconv.Atoi(c.Year); err != nil {
			return fmt.Errorf("%w: year debe ser %q, %q o un año numérico", domain.ErrInvalidInput, SelectorAll, SelectorLatest)
		}
	}
	if c.Month != SelectorAll {
		m, err := strconv.Atoi(c.Month)
		if err != nil || m < 1 || m > 12 {
			return fmt.Errorf("%w: month debe ser %q o un valor entre 1 y 12", domain.ErrInvalidInput, SelectorAll)
		}
	}
	return nil
}

// Filter devuelve el subconjunto de registros que cumplen TODOS los predicados.
// Idempotente: filtrar un resultado ya filtrado con los mismos criterios
// devuelve el mismo conjunto. Un resultado vacío es válido, no un error.
//
// "latest" se resuelve contra el año máximo del conjunto recibido; con un
// conjunto vacío no impone restricción (equivale a "all").
func Filter(records []entity.SalesRecord, c Criteria) []entity.SalesRecord {
	c = c.Normalize()

	year, yearConstrained := resolveYear(records, c.Year)
	month, monthConstrained := resolveMonth(c.Month)
	typeConstrained := c.ItemType != SelectorAll
	query := strings.ToLower(c.Supplier)

	out := make([]entity.SalesRecord, 0, len(records))
	for _, r := range records {
		if yearConstrained && r.Year != year {
			continue
		}
		if typeConstrained && r.ItemType != c.ItemType {
			continue
		}
		if monthConstrained && r.Month != month {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Supplier), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func resolveYear(records []entity.SalesRecord, selector string) (int, bool) {
	switch selector {
	case SelectorAll:
		return 0, false
	case SelectorLatest:
		return ExtractFacets(records).LatestYear()
	default:
		y, err := strconv.Atoi(selector)
		if err != nil {
			// Criteria no validado; un año ilegible no restringe nada
			return 0, false
		}
		return y, true
	}
}

func resolveMonth(selector string) (int, bool) {
	if selector == SelectorAll {
		return 0, false
	}
	m, err := strconv.Atoi(selector)
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}
