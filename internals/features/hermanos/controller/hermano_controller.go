package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hermanar_backend/internals/features/hermanos/dto"
	model "hermanar_backend/internals/features/hermanos/model"
	helper "hermanar_backend/internals/helpers"
)

type HermanoController struct {
	DB *gorm.DB
}

func NewHermanoController(db *gorm.DB) *HermanoController {
	return &HermanoController{DB: db}
}

/* ======================= LISTADOS ======================= */

// GET /hermanos
func (h *HermanoController) GetAll(c *fiber.Ctx) error {
	var rows []model.HermanoModel
	if err := h.DB.Order("numero_hermano").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener hermanos")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GET /hermanos/activos
func (h *HermanoController) GetActivos(c *fiber.Ctx) error {
	var rows []model.HermanoModel
	if err := h.DB.Where("activo = ?", true).Order("numero_hermano").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener hermanos activos")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GET /hermanos/search?q=
func (h *HermanoController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	pattern := "%" + q + "%"

	var rows []model.HermanoModel
	if err := h.DB.
		Where("nombre ILIKE ? OR primer_apellido ILIKE ? OR segundo_apellido ILIKE ? OR numero_hermano ILIKE ? OR dni ILIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Order("numero_hermano").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al buscar hermanos")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GET /hermanos/:id
func (h *HermanoController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var row model.HermanoModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Hermano no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// GET /familias/:id/hermanos
func (h *HermanoController) GetByFamilia(c *fiber.Ctx) error {
	familiaID, err := c.ParamsInt("id")
	if err != nil || familiaID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID de familia inválido")
	}

	var rows []model.HermanoModel
	if err := h.DB.
		Where("familia_id = ?", familiaID).
		Order("nombre, primer_apellido").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener los hermanos de la familia")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

/* ======================= CREATE ======================= */

// POST /hermanos
func (h *HermanoController) Create(c *fiber.Ctx) error {
	var req dto.HermanoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()

	// Número de hermano autogenerado cuando el formulario lo deja en blanco
	if m.NumeroHermano == "" {
		var count int64
		if err := h.DB.Model(&model.HermanoModel{}).Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al generar el número de hermano")
		}
		m.NumeroHermano = fmt.Sprintf("H%04d", count+1)
	}

	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un hermano con ese número")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al crear hermano")
	}

	return helper.JsonCreated(c, "Hermano creado correctamente", dto.FromModel(*m))
}

// POST /hermanos/import-legacy
// Acepta registros con el campo único "apellidos" de versiones anteriores.
func (h *HermanoController) ImportLegacy(c *fiber.Ctx) error {
	var reqs []dto.HermanoLegacyRequest
	if err := c.BodyParser(&reqs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}

	v := validator.New()
	created := 0
	for _, legacy := range reqs {
		if err := v.Struct(legacy); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		m := legacy.ToCanonical().ToModel()
		if m.NumeroHermano == "" {
			var count int64
			if err := h.DB.Model(&model.HermanoModel{}).Count(&count).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Error al generar el número de hermano")
			}
			m.NumeroHermano = fmt.Sprintf("H%04d", count+1)
		}
		if err := h.DB.Create(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError,
				fmt.Sprintf("Error al importar el hermano %s: %v", m.NumeroHermano, err))
		}
		created++
	}

	return helper.JsonCreated(c, "Importación completada", fiber.Map{"importados": created})
}

/* ======================= UPDATE ======================= */

// PUT /hermanos/:id
func (h *HermanoController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.HermanoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var row model.HermanoModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Hermano no encontrado")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Ya existe un hermano con ese número")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al actualizar hermano")
	}

	return helper.JsonUpdated(c, "Hermano actualizado correctamente", dto.FromModel(row))
}

// PATCH /hermanos/:id/familia
func (h *HermanoController) UpdateFamilia(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateHermanoFamiliaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}

	res := h.DB.Model(&model.HermanoModel{}).
		Where("id = ?", id).
		Update("familia_id", req.FamiliaID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al actualizar la familia del hermano")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Hermano no encontrado")
	}

	return helper.JsonUpdated(c, "Familia del hermano actualizada", fiber.Map{"id": id, "familia_id": req.FamiliaID})
}

// PATCH /hermanos/:id/baja
func (h *HermanoController) SetInactive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Model(&model.HermanoModel{}).
		Where("id = ?", id).
		Update("activo", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al dar de baja al hermano")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Hermano no encontrado")
	}

	return helper.JsonUpdated(c, "Hermano dado de baja", fiber.Map{"id": id, "activo": false})
}

/* ======================= DELETE ======================= */

// DELETE /hermanos/:id
// El borrado de sus cuotas lo resuelve la FK con ON DELETE CASCADE.
func (h *HermanoController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Delete(&model.HermanoModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al eliminar hermano")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Hermano no encontrado")
	}

	return helper.JsonDeleted(c, "Hermano eliminado", fiber.Map{"id": id})
}
