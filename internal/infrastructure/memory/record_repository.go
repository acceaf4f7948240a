// Package memory implementa los repositorios en memoria del servicio.
// El dashboard no tiene capa de persistencia propia: el dataset se mantiene
// como un conjunto inmutable que se reemplaza en bloque al recargar.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/sales-dashboard-api/internal/domain/entity"
)

// RecordRepository implementación en memoria de repository.RecordRepository.
// Las lecturas reciben instantáneas: el slice interno nunca se muta, solo se
// sustituye bajo el lock, así que los consumidores pueden iterar sin copiar.
type RecordRepository struct {
	mu      sync.RWMutex
	records []entity.SalesRecord
}

// NewRecordRepository construye el repositorio vacío.
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{records: []entity.SalesRecord{}}
}

// All devuelve la instantánea actual en orden de origen.
func (r *RecordRepository) All(_ context.Context) ([]entity.SalesRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records, nil
}

// ReplaceAll sustituye el conjunto completo de forma atómica (última escritura gana).
func (r *RecordRepository) ReplaceAll(_ context.Context, records []entity.SalesRecord) error {
	if records == nil {
		records = []entity.SalesRecord{}
	}
	r.mu.Lock()
	r.records = records
	r.mu.Unlock()
	return nil
}

// Count número de registros de la instantánea actual.
func (r *RecordRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}
