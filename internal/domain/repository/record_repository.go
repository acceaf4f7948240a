package repository

import (
	"context"

	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
)

// RecordRepository conjunto de registros de ventas en memoria.
// El dataset se reemplaza en bloque al (re)cargar; no hay mutación por registro.
type RecordRepository interface {
	// All devuelve una instantánea del conjunto completo en orden de origen.
	All(ctx context.Context) ([]entity.SalesRecord, error)

	// ReplaceAll sustituye el conjunto completo de forma atómica.
	ReplaceAll(ctx context.Context, records []entity.SalesRecord) error

	// Count número de registros cargados.
	Count(ctx context.Context) (int, error)
}
