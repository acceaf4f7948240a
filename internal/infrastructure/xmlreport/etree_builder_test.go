package xmlreport_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/xmlreport"
)

func sampleReportData() *dto.MonthlyReportData {
	monthly := make([]dto.MonthlyBucketDTO, 12)
	labels := [...]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}
	for i := range monthly {
		monthly[i] = dto.MonthlyBucketDTO{Month: i + 1, Label: labels[i]}
	}
	monthly[0].RetailSales = decimal.NewFromFloat(12.5)

	return &dto.MonthlyReportData{
		Title:       "Ventas de Almacén y Retail",
		GeneratedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Criteria:    dto.AppliedCriteriaDTO{Year: "2020", ItemType: "all", Month: "all"},
		RecordCount: 42,
		Monthly:     monthly,
		Totals: dto.TotalsDTO{
			RetailSales:     decimal.NewFromFloat(12.5),
			RetailTransfers: decimal.NewFromInt(3),
			WarehouseSales:  decimal.NewFromInt(7),
		},
		TopSuppliers: []dto.TopSupplierDTO{
			{Supplier: "Acme", Value: decimal.NewFromFloat(19.5)},
			{Supplier: "Beta", Value: decimal.NewFromInt(4)},
		},
	}
}

func TestBuildMonthlyReportXML(t *testing.T) {
	b, err := xmlreport.NewEtreeBuilder().BuildMonthlyReportXML(sampleReportData())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(b), "la salida debe ser XML bien formado")

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "monthly_sales_report", root.Tag)
	assert.Equal(t, "2025-03-01T12:00:00Z", root.SelectAttrValue("generated_at", ""))

	criteria := root.SelectElement("criteria")
	require.NotNil(t, criteria)
	assert.Equal(t, "2020", criteria.SelectAttrValue("year", ""))
	assert.Equal(t, "42", criteria.SelectAttrValue("record_count", ""))

	months := root.SelectElement("monthly").SelectElements("month")
	require.Len(t, months, 12, "siempre deben emitirse los 12 meses")
	assert.Equal(t, "1", months[0].SelectAttrValue("number", ""))
	assert.Equal(t, "Enero", months[0].SelectAttrValue("label", ""))
	assert.Equal(t, "12.50", months[0].SelectAttrValue("retail_sales", ""))
	assert.Equal(t, "0.00", months[11].SelectAttrValue("retail_sales", ""),
		"meses sin datos deben emitirse en cero")

	totals := root.SelectElement("totals")
	require.NotNil(t, totals)
	assert.Equal(t, "12.50", totals.SelectAttrValue("retail_sales", ""))

	suppliers := root.SelectElement("top_suppliers").SelectElements("supplier")
	require.Len(t, suppliers, 2)
	assert.Equal(t, "1", suppliers[0].SelectAttrValue("rank", ""))
	assert.Equal(t, "Acme", suppliers[0].SelectAttrValue("name", ""))
	assert.Equal(t, "19.50", suppliers[0].SelectAttrValue("value", ""))
}

func TestBuildMonthlyReportXML_DatosNil(t *testing.T) {
	_, err := xmlreport.NewEtreeBuilder().BuildMonthlyReportXML(nil)
	assert.Error(t, err)
}
