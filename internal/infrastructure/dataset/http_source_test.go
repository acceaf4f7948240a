package dataset_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-dashboard-api/internal/domain"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/dataset"
)

const sampleCSV = "YEAR,MONTH,SUPPLIER,ITEM TYPE,RETAIL SALES,RETAIL TRANSFERS,WAREHOUSE SALES\n2020,1,Acme,WINE,10.00,2.00,5.00\n"

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	src := dataset.NewHTTPSource(srv.URL, 5*time.Second)
	rc, err := src.Fetch(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(body))
	assert.Equal(t, srv.URL, src.Name())
}

func TestHTTPSource_StatusNoExitoso_ErrDatasetFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := dataset.NewHTTPSource(srv.URL, 5*time.Second)
	_, err := src.Fetch(context.Background())

	assert.ErrorIs(t, err, domain.ErrDatasetFetch)
}

func TestHTTPSource_ServidorCaido_ErrDatasetFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	src := dataset.NewHTTPSource(srv.URL, time.Second)
	_, err := src.Fetch(context.Background())

	assert.ErrorIs(t, err, domain.ErrDatasetFetch)
}

// El recurso publicado a veces llega en Latin-1; el origen debe normalizar a
// UTF-8 para que el parser no corrompa proveedores con tildes.
func TestHTTPSource_Latin1_NormalizadoAUTF8(t *testing.T) {
	// "Café" con la é en ISO-8859-1 (0xE9).
	latin1 := []byte{'C', 'a', 'f', 0xE9}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(latin1)
	}))
	defer srv.Close()

	src := dataset.NewHTTPSource(srv.URL, 5*time.Second)
	rc, err := src.Fetch(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Café", string(body), "el byte 0xE9 debe decodificarse como é")
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ventas.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	src := dataset.NewFileSource(path)
	rc, err := src.Fetch(context.Background())
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(body))
	assert.Equal(t, path, src.Name())
}

func TestFileSource_ArchivoInexistente_ErrDatasetFetch(t *testing.T) {
	src := dataset.NewFileSource(filepath.Join(t.TempDir(), "no-existe.csv"))
	_, err := src.Fetch(context.Background())

	assert.ErrorIs(t, err, domain.ErrDatasetFetch)
}
