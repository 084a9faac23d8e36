package controller

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	cuotaModel "hermanar_backend/internals/features/cuotas/model"
	hermanoModel "hermanar_backend/internals/features/hermanos/model"
)

var cuotaExportHeader = []string{
	"Nº Hermano",
	"Hermano",
	"Año",
	"Trimestre",
	"Importe",
	"Pagado",
	"Fecha de pago",
	"Método de pago",
	"Observaciones",
}

// GET /cuotas/export?anio=
// Exporta el listado de cuotas a XLSX con el nombre del hermano resuelto.
func (h *CuotaController) Export(c *fiber.Ctx) error {
	query := h.DB.Order("anio DESC, trimestre DESC, hermano_id")
	if raw := c.Query("anio"); raw != "" {
		query = query.Where("anio = ?", raw)
	}

	var cuotas []cuotaModel.CuotaModel
	if err := query.Find(&cuotas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener cuotas")
	}

	var hermanos []hermanoModel.HermanoModel
	if err := h.DB.Find(&hermanos).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al obtener hermanos")
	}
	byID := make(map[uint]hermanoModel.HermanoModel, len(hermanos))
	for _, hm := range hermanos {
		byID[hm.ID] = hm
	}

	payload, err := generateCuotasExcel(cuotas, byID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error al generar el fichero: "+err.Error())
	}

	filename := fmt.Sprintf("cuotas_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(payload)
}

func generateCuotasExcel(cuotas []cuotaModel.CuotaModel, hermanos map[uint]hermanoModel.HermanoModel) ([]byte, error) {
	f := excelize.NewFile()

	sheet := "Cuotas"
	f.SetSheetName("Sheet1", sheet)

	for i, title := range cuotaExportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for rowIdx, cuota := range cuotas {
		nombre := "Desconocido"
		numero := "-"
		if hm, ok := hermanos[cuota.HermanoID]; ok {
			nombre = hm.NombreCompleto()
			numero = hm.NumeroHermano
		}

		pagado := "No"
		if cuota.Pagado {
			pagado = "Sí"
		}

		values := []any{
			numero,
			nombre,
			cuota.Anio,
			cuota.Trimestre,
			cuota.Importe,
			pagado,
			deref(cuota.FechaPago),
			deref(cuota.MetodoPago),
			deref(cuota.Observaciones),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
