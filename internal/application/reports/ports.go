package reports

import (
	"context"

	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
)

// PDFGenerator renderiza el reporte mensual como PDF.
type PDFGenerator interface {
	GenerateMonthlyReportPDF(ctx context.Context, data *dto.MonthlyReportData) ([]byte, error)
}

// XMLBuilder serializa el reporte mensual como XML (importable en hoja de cálculo).
type XMLBuilder interface {
	BuildMonthlyReportXML(data *dto.MonthlyReportData) ([]byte, error)
}
