// Package dataset implementa los orígenes del dataset de ventas:
// descarga HTTP del recurso publicado o lectura de un archivo local.
package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/sales-dashboard-api/internal/domain"
)

// HTTPSource descarga el texto delimitado desde una URL.
// Una sola descarga, resultado atómico; sin reintentos (el usuario recarga).
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource construye el origen HTTP con el timeout indicado.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Name devuelve la URL del recurso.
func (s *HTTPSource) Name() string { return s.url }

// Fetch descarga el recurso completo y lo entrega normalizado a UTF-8.
// Cualquier fallo de transporte o status no exitoso envuelve domain.ErrDatasetFetch.
func (s *HTTPSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetFetch, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d de %s", domain.ErrDatasetFetch, resp.StatusCode, s.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrDatasetFetch, err)
	}
	return io.NopCloser(bytes.NewReader(normalizeUTF8(body))), nil
}
