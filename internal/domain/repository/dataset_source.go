package repository

import (
	"context"
	"io"
)

// DatasetSource origen del texto delimitado del dataset (URL o archivo local).
// Las implementaciones normalizan el contenido a UTF-8 antes de entregarlo.
type DatasetSource interface {
	// Fetch obtiene el contenido completo. Un fallo de transporte/lectura se
	// envuelve en domain.ErrDatasetFetch; el llamador cierra el reader.
	Fetch(ctx context.Context) (io.ReadCloser, error)

	// Name identificador legible del origen (URL o ruta) para logs y status.
	Name() string
}
