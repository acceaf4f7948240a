package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
	"github.com/jhoicas/sales-dashboard-api/internal/domain"
)

// DashboardHandler maneja los endpoints de consulta del dashboard.
type DashboardHandler struct {
	uc *analytics.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetFacets godoc
// @Summary      Facetas del dataset (años y tipos de ítem)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.FacetsDTO
// @Router       /api/dashboard/facets [get]
func (h *DashboardHandler) GetFacets(c *fiber.Ctx) error {
	facets, err := h.uc.GetFacets(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(facets)
}

// GetRecords godoc
// @Summary      Registros filtrados
// @Tags         dashboard
// @Produce      json
// @Param        year       query  string  false  "all | latest | año concreto"
// @Param        item_type  query  string  false  "all | tipo exacto"
// @Param        month      query  string  false  "all | 1..12"
// @Param        supplier   query  string  false  "subcadena del proveedor"
// @Success      200  {object}  dto.RecordsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/records [get]
func (h *DashboardHandler) GetRecords(c *fiber.Ctx) error {
	req, err := parseFilterRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "query string ilegible"})
	}
	out, err := h.uc.GetRecords(c.Context(), req)
	if err != nil {
		return filterError(c, err)
	}
	return c.JSON(out)
}

// GetSummary godoc
// @Summary      Series agregadas para graficar
// @Description  12 buckets mensuales, totales generales y top 4 proveedores
//               sobre el subconjunto que cumple los filtros.
// @Tags         dashboard
// @Produce      json
// @Param        year       query  string  false  "all | latest | año concreto"
// @Param        item_type  query  string  false  "all | tipo exacto"
// @Param        month      query  string  false  "all | 1..12"
// @Param        supplier   query  string  false  "subcadena del proveedor"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	req, err := parseFilterRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "query string ilegible"})
	}
	out, err := h.uc.GetSummary(c.Context(), req)
	if err != nil {
		return filterError(c, err)
	}
	return c.JSON(out)
}

func parseFilterRequest(c *fiber.Ctx) (dto.FilterRequest, error) {
	var req dto.FilterRequest
	if err := c.QueryParser(&req); err != nil {
		return dto.FilterRequest{}, err
	}
	return req, nil
}

func filterError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
