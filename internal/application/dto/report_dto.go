package dto

import "time"

// Formatos de exportación soportados por GET /api/reports/monthly.
const (
	ReportFormatPDF = "pdf"
	ReportFormatXML = "xml"
)

// ReportRequest parámetros de exportación: formato + los mismos filtros del dashboard.
type ReportRequest struct {
	Format string `query:"format"` // "pdf" (default) | "xml"
	FilterRequest
}

// MonthlyReportData datos ya agregados que consumen los generadores (PDF/XML).
type MonthlyReportData struct {
	Title        string
	GeneratedAt  time.Time
	Criteria     AppliedCriteriaDTO
	RecordCount  int
	Monthly      []MonthlyBucketDTO // siempre 12
	Totals       TotalsDTO
	TopSuppliers []TopSupplierDTO
}

// ReportFileDTO archivo exportado listo para enviarse al cliente.
type ReportFileDTO struct {
	Filename    string
	ContentType string
	Bytes       []byte
}
