package workflow

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	cuotaDTO "hermanar_backend/internals/features/cuotas/dto"
	cuotaModel "hermanar_backend/internals/features/cuotas/model"
	hermanoDTO "hermanar_backend/internals/features/hermanos/dto"
)

// FuenteDatosPago son las lecturas que la vista de pago hace al montarse.
type FuenteDatosPago interface {
	GetCuotasPendientes() ([]cuotaDTO.CuotaResponse, error)
	GetAllHermanos() ([]hermanoDTO.HermanoResponse, error)
}

// PagadorCuotas es la transición de estado que se aplica a cada cuota elegida.
type PagadorCuotas interface {
	SetPaidWithDetails(id uint, fechaPago, metodoPago string) error
}

// ResultadoPago es el desenlace de una cuota dentro del lote. El llamante
// decide qué hacer con los fallos; el flujo no reintenta.
type ResultadoPago struct {
	CuotaID uint
	Err     error
}

type ResumenPago struct {
	Cancelado  bool
	Pagadas    int
	Errores    int
	Resultados []ResultadoPago
}

// PagoMasivo es el flujo de pago por lotes: una selección de cuotas pendientes
// se marca como pagada con una llamada remota por cuota, secuencialmente.
type PagoMasivo struct {
	Datos     FuenteDatosPago
	Pagador   PagadorCuotas
	Confirmar ConfirmFunc
	Notificar Notifier

	// Hoy permite fijar la fecha de pago en tests; por defecto time.Now.
	Hoy func() time.Time
	// RetrasoRecarga es la espera fija antes de recargar el listado tras un lote.
	RetrasoRecarga time.Duration

	Logger *zap.Logger

	pendientes []cuotaDTO.CuotaResponse
	hermanos   map[uint]hermanoDTO.HermanoResponse
	seleccion  map[uint]struct{}
}

// Cargar trae cuotas pendientes y hermanos a la vez y espera a ambos.
func (w *PagoMasivo) Cargar() error {
	var (
		wg          sync.WaitGroup
		cuotas      []cuotaDTO.CuotaResponse
		hermanos    []hermanoDTO.HermanoResponse
		errCuotas   error
		errHermanos error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cuotas, errCuotas = w.Datos.GetCuotasPendientes()
	}()
	go func() {
		defer wg.Done()
		hermanos, errHermanos = w.Datos.GetAllHermanos()
	}()
	wg.Wait()

	if errCuotas != nil {
		return errCuotas
	}
	if errHermanos != nil {
		return errHermanos
	}

	w.pendientes = cuotas
	w.hermanos = IndexarHermanos(hermanos)
	if w.seleccion == nil {
		w.seleccion = make(map[uint]struct{})
	}
	return nil
}

// Pendientes devuelve la colección cargada completa.
func (w *PagoMasivo) Pendientes() []cuotaDTO.CuotaResponse {
	return w.pendientes
}

// Filtradas aplica el filtro de búsqueda/año sobre las pendientes cargadas.
func (w *PagoMasivo) Filtradas(busqueda, anio string) []cuotaDTO.CuotaResponse {
	return FiltrarCuotas(w.pendientes, w.hermanos, FiltroCuotas{
		Anio:     anio,
		Busqueda: busqueda,
	})
}

// NombreHermano y NumeroHermano resuelven la columna de hermano del listado.
func (w *PagoMasivo) NombreHermano(hermanoID uint) string {
	return ResolverNombre(w.hermanos, hermanoID)
}

func (w *PagoMasivo) NumeroHermano(hermanoID uint) string {
	return ResolverNumero(w.hermanos, hermanoID)
}

/* ======================= SELECCIÓN ======================= */

func (w *PagoMasivo) ToggleSeleccion(cuotaID uint) {
	if w.seleccion == nil {
		w.seleccion = make(map[uint]struct{})
	}
	if _, ok := w.seleccion[cuotaID]; ok {
		delete(w.seleccion, cuotaID)
	} else {
		w.seleccion[cuotaID] = struct{}{}
	}
}

// ToggleTodas selecciona todas las cuotas de la vista filtrada; si ya estaban
// todas seleccionadas, vacía la selección por completo.
func (w *PagoMasivo) ToggleTodas(filtradas []cuotaDTO.CuotaResponse) {
	if w.seleccion == nil {
		w.seleccion = make(map[uint]struct{})
	}

	todas := len(filtradas) > 0
	for _, c := range filtradas {
		if _, ok := w.seleccion[c.ID]; !ok {
			todas = false
			break
		}
	}

	if todas {
		w.seleccion = make(map[uint]struct{})
		return
	}
	for _, c := range filtradas {
		w.seleccion[c.ID] = struct{}{}
	}
}

func (w *PagoMasivo) Seleccionadas() int {
	return len(w.seleccion)
}

func (w *PagoMasivo) EstaSeleccionada(cuotaID uint) bool {
	_, ok := w.seleccion[cuotaID]
	return ok
}

// TotalSeleccionado suma el importe de las cuotas elegidas.
func (w *PagoMasivo) TotalSeleccionado() float64 {
	var total float64
	for _, c := range w.pendientes {
		if _, ok := w.seleccion[c.ID]; ok {
			total += c.Importe
		}
	}
	return total
}

/* ======================= PAGO ======================= */

func etiquetaMetodo(metodo string) string {
	switch metodo {
	case cuotaModel.MetodoPagoEfectivo:
		return "Efectivo"
	case cuotaModel.MetodoPagoTransferencia:
		return "Transferencia"
	case cuotaModel.MetodoPagoDomiciliacion:
		return "Domiciliación"
	case cuotaModel.MetodoPagoBizum:
		return "Bizum"
	default:
		return metodo
	}
}

// Pagar marca las cuotas seleccionadas como pagadas, una llamada por cuota y
// en orden. Cada fallo se registra y se cuenta sin abortar el resto del lote.
// La selección se vacía y la lista se recarga al terminar, con o sin errores.
func (w *PagoMasivo) Pagar(metodo string) ResumenPago {
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(w.seleccion) == 0 {
		w.Notificar.Error("Selecciona al menos una cuota para pagar")
		return ResumenPago{Cancelado: true}
	}

	total := w.TotalSeleccionado()
	mensaje := fmt.Sprintf(
		"¿Confirma el pago de %d cuotas?\n\nTotal a pagar: €%.2f\nMétodo de pago: %s\n\nEsta acción marcará las cuotas como pagadas.",
		len(w.seleccion), total, etiquetaMetodo(metodo),
	)
	if !w.Confirmar(mensaje) {
		return ResumenPago{Cancelado: true}
	}

	hoy := time.Now
	if w.Hoy != nil {
		hoy = w.Hoy
	}
	fechaPago := hoy().Format("2006-01-02")

	var resumen ResumenPago
	for _, c := range w.pendientes {
		if _, ok := w.seleccion[c.ID]; !ok {
			continue
		}
		err := w.Pagador.SetPaidWithDetails(c.ID, fechaPago, metodo)
		resumen.Resultados = append(resumen.Resultados, ResultadoPago{CuotaID: c.ID, Err: err})
		if err != nil {
			logger.Error("fallo al marcar cuota como pagada",
				zap.Uint("cuota_id", c.ID),
				zap.Error(err),
			)
			resumen.Errores++
			continue
		}
		resumen.Pagadas++
	}

	if resumen.Errores == 0 {
		w.Notificar.Success(fmt.Sprintf("Se han marcado %d cuotas como pagadas correctamente", resumen.Pagadas))
	} else {
		w.Notificar.Error(fmt.Sprintf("Se procesaron %d cuotas correctamente, pero hubo %d errores",
			resumen.Pagadas, resumen.Errores))
	}

	w.seleccion = make(map[uint]struct{})

	if w.RetrasoRecarga > 0 {
		time.Sleep(w.RetrasoRecarga)
	}
	if err := w.Cargar(); err != nil {
		logger.Error("fallo al recargar las cuotas pendientes", zap.Error(err))
	}

	return resumen
}
