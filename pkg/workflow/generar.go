package workflow

import (
	"fmt"

	"go.uber.org/zap"
)

// GeneradorCuotas es la única operación remota que necesita este flujo.
type GeneradorCuotas interface {
	GenerarCuotasTrimestre(anio, trimestre int, importe float64) (int, error)
}

// GeneracionCuotas es el flujo de generación anual: crea una cuota por cada
// hermano activo para el año indicado, en una sola llamada remota.
type GeneracionCuotas struct {
	Generador GeneradorCuotas
	Confirmar ConfirmFunc
	Notificar Notifier
	// Refrescar lo aporta la vista que invoca el flujo; solo se llama cuando
	// se ha creado al menos una cuota.
	Refrescar func()

	Logger *zap.Logger
}

type ResultadoGeneracion struct {
	Cancelado     bool
	CuotasCreadas int
}

// Ejecutar valida, confirma y lanza la generación.
//
// Las cuotas anuales se envían siempre con trimestre 1; el backend usa ese
// valor como marcador del periodo anual.
func (w *GeneracionCuotas) Ejecutar(anio int, importe float64) ResultadoGeneracion {
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if anio == 0 || importe == 0 {
		w.Notificar.Error("Por favor, completa todos los campos")
		return ResultadoGeneracion{Cancelado: true}
	}
	if importe <= 0 {
		w.Notificar.Error("El importe debe ser mayor que 0")
		return ResultadoGeneracion{Cancelado: true}
	}

	mensaje := fmt.Sprintf(
		"¿Confirma la generación de cuotas anuales para:\n\nAño: %d\nImporte: €%.2f\n\nSe generarán cuotas anuales para todos los hermanos activos. Esta acción no se puede deshacer.",
		anio, importe,
	)
	if !w.Confirmar(mensaje) {
		return ResultadoGeneracion{Cancelado: true}
	}

	creadas, err := w.Generador.GenerarCuotasTrimestre(anio, 1, importe)
	if err != nil {
		logger.Error("fallo al generar cuotas", zap.Int("anio", anio), zap.Error(err))
		w.Notificar.Error(fmt.Sprintf("Error al generar las cuotas: %v", err))
		return ResultadoGeneracion{}
	}

	if creadas == 0 {
		w.Notificar.Error("No se generaron cuotas. Es posible que ya existan para este período.")
		return ResultadoGeneracion{}
	}

	logger.Info("cuotas generadas", zap.Int("anio", anio), zap.Int("creadas", creadas))
	w.Notificar.Success(fmt.Sprintf("Se han generado %d cuotas correctamente", creadas))
	if w.Refrescar != nil {
		w.Refrescar()
	}
	return ResultadoGeneracion{CuotasCreadas: creadas}
}
