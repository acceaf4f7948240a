// Package reports contiene el caso de uso de exportación del reporte
// mensual de ventas (PDF vía Maroto, XML vía etree).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sales-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
	"github.com/jhoicas/sales-dashboard-api/internal/domain"
)

const reportTitle = "Ventas de Almacén y Retail"

// UseCase arma el reporte mensual a partir del resumen agregado y delega el
// render en el generador del formato pedido.
type UseCase struct {
	analyticsUC *analytics.UseCase
	pdf         PDFGenerator
	xml         XMLBuilder
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(analyticsUC *analytics.UseCase, pdf PDFGenerator, xml XMLBuilder) *UseCase {
	return &UseCase{analyticsUC: analyticsUC, pdf: pdf, xml: xml}
}

// Export genera el reporte mensual con los filtros indicados.
// Formato por defecto: PDF. Formato desconocido → domain.ErrInvalidInput.
func (uc *UseCase) Export(ctx context.Context, req dto.ReportRequest) (*dto.ReportFileDTO, error) {
	summary, err := uc.analyticsUC.GetSummary(ctx, req.FilterRequest)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	data := &dto.MonthlyReportData{
		Title:        reportTitle,
		GeneratedAt:  now,
		Criteria:     summary.Criteria,
		RecordCount:  summary.RecordCount,
		Monthly:      summary.Monthly,
		Totals:       summary.Totals,
		TopSuppliers: summary.TopSuppliers,
	}

	stamp := now.Format("20060102-150405")
	switch req.Format {
	case "", dto.ReportFormatPDF:
		b, err := uc.pdf.GenerateMonthlyReportPDF(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("reports: generar PDF: %w", err)
		}
		return &dto.ReportFileDTO{
			Filename:    "reporte-ventas-" + stamp + ".pdf",
			ContentType: "application/pdf",
			Bytes:       b,
		}, nil
	case dto.ReportFormatXML:
		b, err := uc.xml.BuildMonthlyReportXML(data)
		if err != nil {
			return nil, fmt.Errorf("reports: generar XML: %w", err)
		}
		return &dto.ReportFileDTO{
			Filename:    "reporte-ventas-" + stamp + ".xml",
			ContentType: "application/xml",
			Bytes:       b,
		}, nil
	default:
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, req.Format)
	}
}
