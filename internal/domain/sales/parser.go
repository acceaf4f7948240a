// Package sales contiene el núcleo del dashboard: parseo del dataset
// delimitado, extracción de facetas, filtrado y agregación mensual.
//
// Todo el paquete son funciones puras sobre []entity.SalesRecord; no hay
// estado compartido ni efectos secundarios. El pipeline completo es:
//
//	texto crudo → ParseRecords → ExtractFacets / Filter → Aggregate
package sales

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-dashboard-api/internal/domain"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
)

// Columnas del formato oficial. La cabecera manda: el orden de las columnas
// es libre y las columnas desconocidas se ignoran.
const (
	colYear            = "YEAR"
	colMonth           = "MONTH"
	colSupplier        = "SUPPLIER"
	colItemType        = "ITEM TYPE"
	colRetailSales     = "RETAIL SALES"
	colRetailTransfers = "RETAIL TRANSFERS"
	colWarehouseSales  = "WAREHOUSE SALES"
)

// ParseRecords convierte el texto delimitado (primera fila = cabecera) en la
// secuencia ordenada de SalesRecord.
//
// Reglas de normalización por fila:
//   - YEAR o MONTH ausentes, no numéricos o cero → la fila se descarta.
//   - MONTH fuera de 1..12 → la fila se descarta.
//   - Medidas no numéricas, ausentes o negativas → 0.
//   - SUPPLIER / ITEM TYPE vacíos → centinelas documentados en entity.
//
// Los problemas por fila nunca son fatales; solo el contenido malformado a
// nivel de documento (sin cabecera, sin columnas YEAR/MONTH, CSV roto)
// produce ErrDatasetParse.
func ParseRecords(r io.Reader) ([]entity.SalesRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // filas cortas/largas se toleran, la cabecera manda
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: documento vacío, falta la cabecera", domain.ErrDatasetParse)
		}
		return nil, fmt.Errorf("%w: cabecera ilegible: %v", domain.ErrDatasetParse, err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	if _, ok := idx[colYear]; !ok {
		return nil, fmt.Errorf("%w: falta la columna %s", domain.ErrDatasetParse, colYear)
	}
	if _, ok := idx[colMonth]; !ok {
		return nil, fmt.Errorf("%w: falta la columna %s", domain.ErrDatasetParse, colMonth)
	}

	var records []entity.SalesRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDatasetParse, err)
		}
		if rec, ok := parseRow(row, idx); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// parseRow normaliza una fila; ok=false cuando la fila debe descartarse.
func parseRow(row []string, idx map[string]int) (entity.SalesRecord, bool) {
	year := parseInt(field(row, idx, colYear))
	month := parseInt(field(row, idx, colMonth))
	if year == 0 || month < 1 || month > 12 {
		return entity.SalesRecord{}, false
	}
	return entity.SalesRecord{
		Year:            year,
		Month:           month,
		Supplier:        stringOr(field(row, idx, colSupplier), entity.UnknownSupplier),
		ItemType:        stringOr(field(row, idx, colItemType), entity.UnspecifiedType),
		RetailSales:     parseMeasure(field(row, idx, colRetailSales)),
		RetailTransfers: parseMeasure(field(row, idx, colRetailTransfers)),
		WarehouseSales:  parseMeasure(field(row, idx, colWarehouseSales)),
	}, true
}

// field devuelve el valor de la columna o "" si la fila es más corta que la cabecera.
func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// parseInt coerción numérica de mejor esfuerzo: "2020" y "2020.0" valen, el resto es 0.
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// parseMeasure coerción de medidas: no numérico o negativo → 0.
// Se admiten separadores de miles ("1,234.56") porque aparecen en exportes de hoja de cálculo.
func parseMeasure(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
