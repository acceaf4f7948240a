// Package analytics contiene los casos de uso del dashboard de ventas:
// facetas, filtrado y agregación mensual del dataset cargado.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/sales"
)

// UseCase expone la superficie de consulta del dashboard.
//
// Fuente de datos: RecordRepository (instantáneas inmutables en memoria).
// Todo es recomputación completa por petición; no hay caché porque el
// pipeline es barato frente al tamaño del dataset.
type UseCase struct {
	recordRepo repository.RecordRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(recordRepo repository.RecordRepository) *UseCase {
	return &UseCase{recordRepo: recordRepo}
}

// GetFacets devuelve los años y tipos de ítem distintos del dataset actual.
func (uc *UseCase) GetFacets(ctx context.Context) (*dto.FacetsDTO, error) {
	records, err := uc.recordRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: facetas: %w", err)
	}
	f := sales.ExtractFacets(records)
	return &dto.FacetsDTO{Years: f.Years, ItemTypes: f.ItemTypes}, nil
}

// GetRecords devuelve el subconjunto que cumple los criterios.
func (uc *UseCase) GetRecords(ctx context.Context, req dto.FilterRequest) (*dto.RecordsResponse, error) {
	filtered, _, err := uc.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesRecordDTO, 0, len(filtered))
	for _, r := range filtered {
		out = append(out, toRecordDTO(r))
	}
	return &dto.RecordsResponse{Total: len(out), Records: out}, nil
}

// GetSummary ejecuta filtro + agregación y arma las series listas para graficar.
func (uc *UseCase) GetSummary(ctx context.Context, req dto.FilterRequest) (*dto.DashboardSummaryDTO, error) {
	filtered, criteria, err := uc.filtered(ctx, req)
	if err != nil {
		return nil, err
	}
	summary := sales.Aggregate(filtered)

	monthly := make([]dto.MonthlyBucketDTO, 0, len(summary.Monthly))
	for _, b := range summary.Monthly {
		monthly = append(monthly, dto.MonthlyBucketDTO{
			Month:           b.Month,
			Label:           MonthLabel(b.Month),
			RetailSales:     b.RetailSales.Round(2),
			RetailTransfers: b.RetailTransfers.Round(2),
			WarehouseSales:  b.WarehouseSales.Round(2),
		})
	}

	top := make([]dto.TopSupplierDTO, 0, len(summary.TopSuppliers))
	for _, s := range summary.TopSuppliers {
		top = append(top, dto.TopSupplierDTO{Supplier: s.Supplier, Value: s.Value.Round(2)})
	}

	return &dto.DashboardSummaryDTO{
		Criteria: dto.AppliedCriteriaDTO{
			Year:     criteria.Year,
			ItemType: criteria.ItemType,
			Month:    criteria.Month,
			Supplier: criteria.Supplier,
		},
		RecordCount: len(filtered),
		Monthly:     monthly,
		Totals: dto.TotalsDTO{
			RetailSales:     summary.Totals.RetailSales.Round(2),
			RetailTransfers: summary.Totals.RetailTransfers.Round(2),
			WarehouseSales:  summary.Totals.WarehouseSales.Round(2),
		},
		TopSuppliers: top,
	}, nil
}

// filtered valida los criterios y aplica el filtro sobre la instantánea actual.
func (uc *UseCase) filtered(ctx context.Context, req dto.FilterRequest) ([]entity.SalesRecord, sales.Criteria, error) {
	criteria := sales.Criteria{
		Year:     req.Year,
		ItemType: req.ItemType,
		Month:    req.Month,
		Supplier: req.Supplier,
	}.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, criteria, err
	}
	records, err := uc.recordRepo.All(ctx)
	if err != nil {
		return nil, criteria, fmt.Errorf("analytics: registros: %w", err)
	}
	return sales.Filter(records, criteria), criteria, nil
}

func toRecordDTO(r entity.SalesRecord) dto.SalesRecordDTO {
	return dto.SalesRecordDTO{
		Year:            r.Year,
		Month:           r.Month,
		Supplier:        r.Supplier,
		ItemType:        r.ItemType,
		RetailSales:     r.RetailSales.Round(2),
		RetailTransfers: r.RetailTransfers.Round(2),
		WarehouseSales:  r.WarehouseSales.Round(2),
	}
}

// MonthLabel etiqueta legible del mes, ej: "Enero".
func MonthLabel(month int) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	if month < 1 || month > 12 {
		return ""
	}
	return months[month-1]
}
