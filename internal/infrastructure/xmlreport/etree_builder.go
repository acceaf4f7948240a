// Package xmlreport serializa el reporte mensual como XML, pensado para
// importarse en hojas de cálculo o integraciones simples.
package xmlreport

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
)

// EtreeBuilder implementa reports.XMLBuilder usando beevik/etree.
type EtreeBuilder struct{}

// NewEtreeBuilder construye el builder.
func NewEtreeBuilder() *EtreeBuilder { return &EtreeBuilder{} }

// BuildMonthlyReportXML genera el documento:
//
//	<monthly_sales_report generated_at="...">
//	  <criteria year=".." month=".." item_type=".." supplier_query=".." record_count=".."/>
//	  <monthly>
//	    <month number="1" label="Enero" retail_sales=".." retail_transfers=".." warehouse_sales=".."/>
//	    ... (siempre 12)
//	  </monthly>
//	  <totals retail_sales=".." retail_transfers=".." warehouse_sales=".."/>
//	  <top_suppliers>
//	    <supplier rank="1" name=".." value=".."/>
//	  </top_suppliers>
//	</monthly_sales_report>
func (b *EtreeBuilder) BuildMonthlyReportXML(data *dto.MonthlyReportData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("xmlreport: datos del reporte vacíos")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("monthly_sales_report")
	root.CreateAttr("generated_at", data.GeneratedAt.Format(time.RFC3339))
	root.CreateAttr("title", data.Title)

	criteria := root.CreateElement("criteria")
	criteria.CreateAttr("year", data.Criteria.Year)
	criteria.CreateAttr("month", data.Criteria.Month)
	criteria.CreateAttr("item_type", data.Criteria.ItemType)
	criteria.CreateAttr("supplier_query", data.Criteria.Supplier)
	criteria.CreateAttr("record_count", strconv.Itoa(data.RecordCount))

	monthly := root.CreateElement("monthly")
	for _, bucket := range data.Monthly {
		m := monthly.CreateElement("month")
		m.CreateAttr("number", strconv.Itoa(bucket.Month))
		m.CreateAttr("label", bucket.Label)
		m.CreateAttr("retail_sales", bucket.RetailSales.StringFixed(2))
		m.CreateAttr("retail_transfers", bucket.RetailTransfers.StringFixed(2))
		m.CreateAttr("warehouse_sales", bucket.WarehouseSales.StringFixed(2))
	}

	totals := root.CreateElement("totals")
	totals.CreateAttr("retail_sales", data.Totals.RetailSales.StringFixed(2))
	totals.CreateAttr("retail_transfers", data.Totals.RetailTransfers.StringFixed(2))
	totals.CreateAttr("warehouse_sales", data.Totals.WarehouseSales.StringFixed(2))

	top := root.CreateElement("top_suppliers")
	for i, s := range data.TopSuppliers {
		el := top.CreateElement("supplier")
		el.CreateAttr("rank", strconv.Itoa(i+1))
		el.CreateAttr("name", s.Supplier)
		el.CreateAttr("value", s.Value.StringFixed(2))
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
