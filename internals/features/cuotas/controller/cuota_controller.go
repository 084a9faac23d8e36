package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hermanar_backend/internals/features/cuotas/dto"
	model "hermanar_backend/internals/features/cuotas/model"
	helper "hermanar_backend/internals/helpers"
)

type CuotaController struct {
	DB *gorm.DB
}

func NewCuotaController(db *gorm.DB) *CuotaController {
	return &CuotaController{DB: db}
}

/* ======================= LISTADOS ======================= */

// GET /cuotas
func (h *CuotaController) GetAll(c *fiber.Ctx) error {
	var rows []model.CuotaModel
	if err := h.DB.
		Order("anio DESC, trimestre DESC, hermano_id").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener cuotas")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GET /cuotas/pendientes
func (h *CuotaController) GetPendientes(c *fiber.Ctx) error {
	var rows []model.CuotaModel
	if err := h.DB.
		Where("pagado = ?", false).
		Order("anio ASC, trimestre ASC, hermano_id").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener cuotas pendientes")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GET /cuotas/anio/:anio
func (h *CuotaController) GetByYear(c *fiber.Ctx) error {
	anio, err := c.ParamsInt("anio")
	if err != nil || anio <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Año inválido")
	}

	var rows []model.CuotaModel
	if err := h.DB.
		Where("anio = ?", anio).
		Order("trimestre, hermano_id").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener las cuotas del año")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GET /hermanos/:id/cuotas
func (h *CuotaController) GetByHermano(c *fiber.Ctx) error {
	hermanoID, err := c.ParamsInt("id")
	if err != nil || hermanoID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID de hermano inválido")
	}

	var rows []model.CuotaModel
	if err := h.DB.
		Where("hermano_id = ?", hermanoID).
		Order("anio DESC, trimestre DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener las cuotas del hermano")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

/* ======================= CREATE / UPDATE ======================= */

// POST /cuotas
func (h *CuotaController) Create(c *fiber.Ctx) error {
	var req dto.CuotaRequest
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
			return fiber.NewError(fiber.StatusConflict, "El hermano ya tiene una cuota para ese periodo")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al crear cuota")
	}

	return helper.JsonCreated(c, "Cuota creada correctamente", dto.FromModel(*m))
}

// PUT /cuotas/:id
func (h *CuotaController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.CuotaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var row model.CuotaModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cuota no encontrada")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "El hermano ya tiene una cuota para ese periodo")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error al actualizar cuota")
	}

	return helper.JsonUpdated(c, "Cuota actualizada correctamente", dto.FromModel(row))
}

/* ======================= ESTADO DE PAGO ======================= */

// PATCH /cuotas/:id/pagado
// Conmuta el flag sin registrar fecha ni método (acción rápida del listado).
// Al despagar se limpian fecha y método.
func (h *CuotaController) TogglePagado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.TogglePagadoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}

	updates := map[string]any{"pagado": req.Pagado}
	if !req.Pagado {
		updates["fecha_pago"] = nil
		updates["metodo_pago"] = nil
	}

	res := h.DB.Model(&model.CuotaModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al actualizar el estado de la cuota")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Cuota no encontrada")
	}

	return helper.JsonUpdated(c, "Estado de la cuota actualizado", fiber.Map{"id": id, "pagado": req.Pagado})
}

// PATCH /cuotas/:id/pagar
// Marca la cuota como pagada registrando fecha y método (flujo de pago).
func (h *CuotaController) MarcarPagada(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.MarcarPagadaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Model(&model.CuotaModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"pagado":      true,
			"fecha_pago":  req.FechaPago,
			"metodo_pago": req.MetodoPago,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al marcar la cuota como pagada")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Cuota no encontrada")
	}

	return helper.JsonUpdated(c, "Cuota marcada como pagada", fiber.Map{"id": id, "pagado": true})
}

/* ======================= GENERACIÓN MASIVA ======================= */

// POST /cuotas/generar
// Crea una cuota por cada hermano activo para (anio, trimestre). Los hermanos
// que ya tienen cuota para ese periodo se omiten vía ON CONFLICT DO NOTHING.
// Devuelve el número de cuotas realmente creadas.
func (h *CuotaController) Generar(c *fiber.Ctx) error {
	var req dto.GenerarCuotasRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Exec(`
		INSERT INTO cuotas (hermano_id, anio, trimestre, importe, pagado, created_at)
		SELECT h.id, ?, ?, ?, FALSE, NOW()
		FROM hermanos h
		WHERE h.activo
		ON CONFLICT (hermano_id, anio, trimestre) DO NOTHING
	`, req.Anio, req.Trimestre, req.Importe)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al generar las cuotas: "+res.Error.Error())
	}

	return helper.JsonCreated(c, "Generación completada",
		dto.GenerarCuotasResponse{CuotasCreadas: int(res.RowsAffected)})
}

/* ======================= ESTADÍSTICAS ======================= */

// GET /cuotas/estadisticas?anio=
func (h *CuotaController) GetEstadisticas(c *fiber.Ctx) error {
	var anio *int
	if raw := c.Query("anio"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Año inválido")
		}
		anio = &v
	}

	base := h.DB.Model(&model.CuotaModel{})
	if anio != nil {
		base = base.Where("anio = ?", *anio)
	}

	var stats model.EstadisticasCuotas
	row := base.Select(`
		COALESCE(SUM(CASE WHEN pagado THEN importe ELSE 0 END), 0) AS total_recaudado,
		COUNT(CASE WHEN NOT pagado THEN 1 END) AS cuotas_pendientes,
		COUNT(CASE WHEN pagado THEN 1 END) AS cuotas_pagadas
	`).Row()
	if err := row.Scan(&stats.TotalRecaudado, &stats.CuotasPendientes, &stats.CuotasPagadas); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al calcular las estadísticas")
	}

	// Un hermano es moroso si conserva alguna cuota pendiente en el ámbito consultado.
	morososSQL := `
		SELECT
			COUNT(CASE WHEN NOT moroso THEN 1 END) AS al_dia,
			COUNT(CASE WHEN moroso THEN 1 END) AS morosos
		FROM (
			SELECT hermano_id,
			       COUNT(CASE WHEN NOT pagado THEN 1 END) > 0 AS moroso
			FROM cuotas
			%s
			GROUP BY hermano_id
		) resumen
	`
	var hermRow *gorm.DB
	if anio != nil {
		hermRow = h.DB.Raw(strings.Replace(morososSQL, "%s", "WHERE anio = ?", 1), *anio)
	} else {
		hermRow = h.DB.Raw(strings.Replace(morososSQL, "%s", "", 1))
	}
	if err := hermRow.Row().Scan(&stats.HermanosAlDia, &stats.HermanosMorosos); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al calcular los hermanos morosos")
	}

	return helper.JsonOK(c, "OK", stats)
}

/* ======================= DELETE ======================= */

// DELETE /cuotas/:id
func (h *CuotaController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.Delete(&model.CuotaModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al eliminar cuota")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Cuota no encontrada")
	}

	return helper.JsonDeleted(c, "Cuota eliminada", fiber.Map{"id": id})
}
