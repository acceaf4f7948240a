// Package dataset contiene el caso de uso de carga y recarga del dataset
// de ventas desde su origen externo.
package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/sales-dashboard-api/pkg/logger"
)

// UseCase descarga el dataset, lo parsea y reemplaza el conjunto en memoria.
//
// La carga es de resultado único: o el conjunto completo o un error; nunca
// entrega parciales. Cargas concurrentes se colapsan con singleflight para
// que N recargas simultáneas disparen una sola descarga.
type UseCase struct {
	source     repository.DatasetSource
	recordRepo repository.RecordRepository
	log        *logger.Logger

	group singleflight.Group

	mu        sync.RWMutex
	loaded    bool
	loadedAt  time.Time
	count     int
	lastError string
}

// NewUseCase construye el caso de uso.
func NewUseCase(source repository.DatasetSource, recordRepo repository.RecordRepository, log *logger.Logger) *UseCase {
	return &UseCase{source: source, recordRepo: recordRepo, log: log}
}

// Load descarga y parsea el dataset, y sustituye el conjunto en bloque.
// No hay reintento automático: ante un fallo el servicio sigue usable con el
// dataset anterior (o vacío) y el usuario vuelve a disparar la recarga.
func (uc *UseCase) Load(ctx context.Context) (*dto.DatasetStatusDTO, error) {
	_, err, _ := uc.group.Do("load", func() (interface{}, error) {
		return nil, uc.load(ctx)
	})
	status := uc.Status(ctx)
	return status, err
}

func (uc *UseCase) load(ctx context.Context) error {
	start := time.Now()
	uc.log.Info().Str("source", uc.source.Name()).Msg("cargando dataset")

	rc, err := uc.source.Fetch(ctx)
	if err != nil {
		uc.recordFailure(err)
		return err
	}
	defer rc.Close()

	records, err := sales.ParseRecords(rc)
	if err != nil {
		uc.recordFailure(err)
		return err
	}

	if err := uc.recordRepo.ReplaceAll(ctx, records); err != nil {
		uc.recordFailure(err)
		return fmt.Errorf("dataset: reemplazar registros: %w", err)
	}

	uc.mu.Lock()
	uc.loaded = true
	uc.loadedAt = time.Now()
	uc.count = len(records)
	uc.lastError = ""
	uc.mu.Unlock()

	uc.log.Info().
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("dataset cargado")
	return nil
}

func (uc *UseCase) recordFailure(err error) {
	uc.mu.Lock()
	uc.lastError = err.Error()
	uc.mu.Unlock()
	uc.log.Error().Err(err).Str("source", uc.source.Name()).Msg("carga del dataset fallida")
}

// Status estado actual de la carga (para GET /api/dataset/status).
func (uc *UseCase) Status(ctx context.Context) *dto.DatasetStatusDTO {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	count := uc.count
	if n, err := uc.recordRepo.Count(ctx); err == nil {
		count = n
	}
	return &dto.DatasetStatusDTO{
		Loaded:      uc.loaded,
		Source:      uc.source.Name(),
		RecordCount: count,
		LoadedAt:    uc.loadedAt,
		LastError:   uc.lastError,
	}
}
