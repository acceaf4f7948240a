// export_report genera el reporte mensual de ventas (PDF o XML) sin levantar
// el servidor HTTP, a partir de un CSV local "Warehouse and Retail Sales".
//
// Uso: go run ./cmd/export_report -csv datos.csv [-format pdf|xml] [-out archivo]
//
//	[-year all|latest|2020] [-item-type WINE] [-month 1..12] [-supplier subcadena]
//
// Por defecto escribe reporte-ventas-<timestamp>.pdf en el directorio actual.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/sales-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
	"github.com/jhoicas/sales-dashboard-api/internal/application/reports"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/sales"
	infradataset "github.com/jhoicas/sales-dashboard-api/internal/infrastructure/dataset"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/sales-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/xmlreport"
)

func main() {
	csvPath := flag.String("csv", "", "ruta del CSV de ventas (requerido)")
	format := flag.String("format", "pdf", "formato de salida: pdf | xml")
	out := flag.String("out", "", "archivo de salida (por defecto el nombre generado)")
	year := flag.String("year", "all", "all | latest | año concreto")
	itemType := flag.String("item-type", "all", "all | tipo de ítem exacto")
	month := flag.String("month", "all", "all | 1..12")
	supplier := flag.String("supplier", "", "subcadena del proveedor (insensible a mayúsculas)")
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "falta -csv: ruta del CSV de ventas")
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	src := infradataset.NewFileSource(*csvPath)
	rc, err := src.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	records, err := sales.ParseRecords(rc)
	rc.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsear CSV: %v\n", err)
		os.Exit(1)
	}

	repo := memory.NewRecordRepository()
	if err := repo.ReplaceAll(ctx, records); err != nil {
		fmt.Fprintf(os.Stderr, "Cargar registros: %v\n", err)
		os.Exit(1)
	}

	uc := reports.NewUseCase(analytics.NewUseCase(repo), infrapdf.NewMarotoReportGenerator(), xmlreport.NewEtreeBuilder())
	file, err := uc.Export(ctx, dto.ReportRequest{
		Format: *format,
		FilterRequest: dto.FilterRequest{
			Year:     *year,
			ItemType: *itemType,
			Month:    *month,
			Supplier: *supplier,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar reporte: %v\n", err)
		os.Exit(1)
	}

	dest := *out
	if dest == "" {
		dest = file.Filename
	}
	if err := os.WriteFile(dest, file.Bytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", dest, err)
		os.Exit(1)
	}
	fmt.Printf("Reporte generado: %s (%d registros)\n", dest, len(records))
}
