package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/sales-dashboard-api/internal/domain"
)

// FileSource lee el dataset desde disco (modo offline / desarrollo).
type FileSource struct {
	path string
}

// NewFileSource construye el origen de archivo.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name devuelve la ruta del archivo.
func (s *FileSource) Name() string { return s.path }

// Fetch lee el archivo completo y lo entrega normalizado a UTF-8.
func (s *FileSource) Fetch(_ context.Context) (io.ReadCloser, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetFetch, err)
	}
	return io.NopCloser(bytes.NewReader(normalizeUTF8(b))), nil
}
