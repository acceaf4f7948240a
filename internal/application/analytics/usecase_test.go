package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
	"github.com/jhoicas/sales-dashboard-api/internal/domain"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/memory"
)

func rec(year, month int, supplier, itemType string, retail, transfers, warehouse float64) entity.SalesRecord {
	return entity.SalesRecord{
		Year:            year,
		Month:           month,
		Supplier:        supplier,
		ItemType:        itemType,
		RetailSales:     decimal.NewFromFloat(retail),
		RetailTransfers: decimal.NewFromFloat(transfers),
		WarehouseSales:  decimal.NewFromFloat(warehouse),
	}
}

func newUC(t *testing.T, records []entity.SalesRecord) *analytics.UseCase {
	t.Helper()
	repo := memory.NewRecordRepository()
	require.NoError(t, repo.ReplaceAll(context.Background(), records))
	return analytics.NewUseCase(repo)
}

func TestAnalytics_GetFacets(t *testing.T) {
	uc := newUC(t, []entity.SalesRecord{
		rec(2020, 1, "Acme", "WINE", 1, 0, 0),
		rec(2017, 5, "Beta", "BEER", 1, 0, 0),
		rec(2020, 9, "Acme", "BEER", 1, 0, 0),
	})

	facets, err := uc.GetFacets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{2017, 2020}, facets.Years)
	assert.Equal(t, []string{"BEER", "WINE"}, facets.ItemTypes)
}

func TestAnalytics_GetRecords_FiltroConjuntivo(t *testing.T) {
	uc := newUC(t, []entity.SalesRecord{
		rec(2020, 1, "Acme Beverages", "WINE", 1, 0, 0),
		rec(2020, 1, "Acme Beverages", "BEER", 1, 0, 0),
		rec(2019, 1, "Acme Beverages", "WINE", 1, 0, 0),
		rec(2020, 1, "Beta Corp", "WINE", 1, 0, 0),
	})

	out, err := uc.GetRecords(context.Background(), dto.FilterRequest{
		Year:     "2020",
		ItemType: "WINE",
		Supplier: "acme",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Total, "todos los criterios deben cumplirse a la vez")
	require.Len(t, out.Records, 1)
	assert.Equal(t, "Acme Beverages", out.Records[0].Supplier)
	assert.Equal(t, 2020, out.Records[0].Year)
}

func TestAnalytics_GetRecords_FiltroInvalido(t *testing.T) {
	uc := newUC(t, nil)

	_, err := uc.GetRecords(context.Background(), dto.FilterRequest{Year: "no-es-año"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetRecords(context.Background(), dto.FilterRequest{Month: "13"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalytics_GetSummary(t *testing.T) {
	uc := newUC(t, []entity.SalesRecord{
		rec(2020, 1, "Acme", "WINE", 10, 2, 5),
		rec(2020, 1, "Beta", "WINE", 4, 1, 3),
		rec(2020, 12, "Acme", "BEER", 6, 0, 2),
	})

	out, err := uc.GetSummary(context.Background(), dto.FilterRequest{})
	require.NoError(t, err)

	assert.Equal(t, 3, out.RecordCount)
	require.Len(t, out.Monthly, 12)

	assert.Equal(t, "Enero", out.Monthly[0].Label)
	assert.True(t, out.Monthly[0].RetailSales.Equal(decimal.NewFromInt(14)))
	assert.Equal(t, "Diciembre", out.Monthly[11].Label)
	assert.True(t, out.Monthly[11].RetailSales.Equal(decimal.NewFromInt(6)))

	assert.True(t, out.Totals.RetailSales.Equal(decimal.NewFromInt(20)))
	assert.True(t, out.Totals.RetailTransfers.Equal(decimal.NewFromInt(3)))
	assert.True(t, out.Totals.WarehouseSales.Equal(decimal.NewFromInt(10)))

	// Acme: retail+warehouse = 10+5+6+2 = 23; Beta: 4+3 = 7.
	require.Len(t, out.TopSuppliers, 2)
	assert.Equal(t, "Acme", out.TopSuppliers[0].Supplier)
	assert.True(t, out.TopSuppliers[0].Value.Equal(decimal.NewFromInt(23)))
}

func TestAnalytics_GetSummary_YearLatest(t *testing.T) {
	uc := newUC(t, []entity.SalesRecord{
		rec(2019, 1, "Acme", "WINE", 100, 0, 0),
		rec(2020, 1, "Acme", "WINE", 7, 0, 0),
	})

	out, err := uc.GetSummary(context.Background(), dto.FilterRequest{Year: "latest"})
	require.NoError(t, err)

	assert.Equal(t, 1, out.RecordCount)
	assert.True(t, out.Monthly[0].RetailSales.Equal(decimal.NewFromInt(7)),
		"latest debe resolverse al año máximo presente (2020)")
	assert.Equal(t, "latest", out.Criteria.Year)
}

func TestAnalytics_GetSummary_DatasetVacio(t *testing.T) {
	uc := newUC(t, nil)

	out, err := uc.GetSummary(context.Background(), dto.FilterRequest{Year: "latest"})
	require.NoError(t, err, "latest sobre dataset vacío no es un error")

	assert.Equal(t, 0, out.RecordCount)
	require.Len(t, out.Monthly, 12, "los 12 buckets se emiten aunque no haya datos")
	assert.True(t, out.Totals.RetailSales.IsZero())
	assert.Empty(t, out.TopSuppliers)
}
