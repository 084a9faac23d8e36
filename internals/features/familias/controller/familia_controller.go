package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hermanar_backend/internals/features/familias/dto"
	model "hermanar_backend/internals/features/familias/model"
	hermanoModel "hermanar_backend/internals/features/hermanos/model"
	helper "hermanar_backend/internals/helpers"
)

type FamiliaController struct {
	DB *gorm.DB
}

func NewFamiliaController(db *gorm.DB) *FamiliaController {
	return &FamiliaController{DB: db}
}

/* ======================= LISTADOS ======================= */

// GET /familias
func (h *FamiliaController) GetAll(c *fiber.Ctx) error {
	var rows []model.FamiliaModel
	if err := h.DB.Order("nombre_familia").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener familias")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GET /familias/search?q=
func (h *FamiliaController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	pattern := "%" + q + "%"

	var rows []model.FamiliaModel
	if err := h.DB.
		Where("nombre_familia ILIKE ?", pattern).
		Order("nombre_familia").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al buscar familias")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GET /familias/:id
func (h *FamiliaController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var row model.FamiliaModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Familia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// GET /familias/:id/stats
func (h *FamiliaController) GetStats(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var stats dto.FamiliaStatsResponse
	row := h.DB.Raw(`
		SELECT
			COUNT(h.id) AS total_hermanos,
			COUNT(CASE WHEN h.activo THEN 1 END) AS hermanos_activos
		FROM familias f
		LEFT JOIN hermanos h ON f.id = h.familia_id
		WHERE f.id = ?
	`, id).Row()
	if err := row.Scan(&stats.TotalHermanos, &stats.HermanosActivos); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener las estadísticas de la familia")
	}

	return helper.JsonOK(c, "OK", stats)
}

// GET /familias/:id/direccion
// Devuelve la familia con la dirección postal de referencia resuelta.
func (h *FamiliaController) GetWithAddress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var familia model.FamiliaModel
	if err := h.DB.First(&familia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Familia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FamiliaWithAddressResponse{
		ID:                 familia.ID,
		NombreFamilia:      familia.NombreFamilia,
		HermanoDireccionID: familia.HermanoDireccionID,
	}

	if familia.HermanoDireccionID != nil {
		var hermano hermanoModel.HermanoModel
		if err := h.DB.First(&hermano, *familia.HermanoDireccionID).Error; err == nil {
			resp.DireccionPrincipal = &dto.DireccionPrincipal{
				Direccion:     hermano.Direccion,
				Telefono:      hermano.Telefono,
				Email:         hermano.Email,
				NombreHermano: hermano.NombreCompleto(),
			}
		}
	}

	return helper.JsonOK(c, "OK", resp)
}

/* ======================= CREATE / UPDATE ======================= */

// POST /familias
func (h *FamiliaController) Create(c *fiber.Ctx) error {
	var req dto.FamiliaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Ya existe una familia con ese nombre")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al crear familia")
	}

	return helper.JsonCreated(c, "Familia creada correctamente", dto.FromModel(*m))
}

// PUT /familias/:id
func (h *FamiliaController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.FamiliaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var row model.FamiliaModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Familia no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Ya existe una familia con ese nombre")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al actualizar familia")
	}

	return helper.JsonUpdated(c, "Familia actualizada correctamente", dto.FromModel(row))
}

/* ======================= DELETE ======================= */

// DELETE /familias/:id
// Se rechaza cuando la familia conserva hermanos activos asociados.
func (h *FamiliaController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var count int64
	if err := h.DB.Model(&hermanoModel.HermanoModel{}).
		Where("familia_id = ? AND activo = ?", id, true).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al comprobar los hermanos de la familia")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict,
			"No se puede eliminar la familia porque tiene hermanos activos asociados")
	}

	res := h.DB.Delete(&model.FamiliaModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al eliminar familia")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Familia no encontrada")
	}

	return helper.JsonDeleted(c, "Familia eliminada", fiber.Map{"id": id})
}
