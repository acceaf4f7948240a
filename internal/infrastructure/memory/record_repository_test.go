package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/memory"
)

func sample(year int, supplier string) entity.SalesRecord {
	return entity.SalesRecord{
		Year:        year,
		Month:       1,
		Supplier:    supplier,
		ItemType:    "WINE",
		RetailSales: decimal.NewFromInt(1),
	}
}

func TestRecordRepository_VacioAlInicio(t *testing.T) {
	repo := memory.NewRecordRepository()
	ctx := context.Background()

	records, err := repo.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records, "la instantánea inicial debe ser un slice vacío, no nil")
	assert.Empty(t, records)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRecordRepository_ReplaceAll(t *testing.T) {
	repo := memory.NewRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []entity.SalesRecord{sample(2019, "Acme"), sample(2020, "Beta")}))

	records, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Acme", records[0].Supplier, "el orden de origen se conserva")

	// Reemplazo en bloque: el conjunto anterior desaparece por completo.
	require.NoError(t, repo.ReplaceAll(ctx, []entity.SalesRecord{sample(2021, "Gamma")}))

	records, err = repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Gamma", records[0].Supplier)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordRepository_ReplaceAllNil_DejaVacio(t *testing.T) {
	repo := memory.NewRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []entity.SalesRecord{sample(2020, "Acme")}))
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	records, err := repo.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

// Las instantáneas entregadas antes de un reemplazo siguen siendo válidas:
// el slice interno nunca se muta, solo se sustituye.
func TestRecordRepository_InstantaneaEstable(t *testing.T) {
	repo := memory.NewRecordRepository()
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []entity.SalesRecord{sample(2020, "Acme")}))
	before, err := repo.All(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceAll(ctx, []entity.SalesRecord{sample(2021, "Beta"), sample(2022, "Gamma")}))

	require.Len(t, before, 1)
	assert.Equal(t, "Acme", before[0].Supplier, "la instantánea previa no debe cambiar tras el reemplazo")
}
