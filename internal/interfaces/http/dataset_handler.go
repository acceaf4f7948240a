package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-dashboard-api/internal/application/dataset"
	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
	"github.com/jhoicas/sales-dashboard-api/internal/domain"
)

// DatasetHandler maneja el estado y la recarga del dataset.
type DatasetHandler struct {
	uc *dataset.UseCase
}

// NewDatasetHandler construye el handler.
func NewDatasetHandler(uc *dataset.UseCase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// Status godoc
// @Summary      Estado de la carga del dataset
// @Tags         dataset
// @Produce      json
// @Success      200  {object}  dto.DatasetStatusDTO
// @Router       /api/dataset/status [get]
func (h *DatasetHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.uc.Status(c.Context()))
}

// Reload godoc
// @Summary      Recargar el dataset desde su origen
// @Description  Descarga y parsea de nuevo; el conjunto se reemplaza en bloque.
//               Sin reintentos automáticos: ante un fallo se conserva el dataset anterior.
// @Tags         dataset
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.DatasetStatusDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/dataset/reload [post]
func (h *DatasetHandler) Reload(c *fiber.Ctx) error {
	status, err := h.uc.Load(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDatasetFetch):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DATASET_FETCH", Message: err.Error()})
		case errors.Is(err, domain.ErrDatasetParse):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "DATASET_PARSE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(status)
}
