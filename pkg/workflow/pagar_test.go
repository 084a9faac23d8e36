package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cuotaDTO "hermanar_backend/internals/features/cuotas/dto"
	hermanoDTO "hermanar_backend/internals/features/hermanos/dto"
)

type datosPagoFake struct {
	cuotas   []cuotaDTO.CuotaResponse
	hermanos []hermanoDTO.HermanoResponse
	cargas   int
}

func (d *datosPagoFake) GetCuotasPendientes() ([]cuotaDTO.CuotaResponse, error) {
	d.cargas++
	return d.cuotas, nil
}

func (d *datosPagoFake) GetAllHermanos() ([]hermanoDTO.HermanoResponse, error) {
	return d.hermanos, nil
}

type pagadorFake struct {
	fallan map[uint]error
	pagos  []struct {
		ID     uint
		Fecha  string
		Metodo string
	}
}

func (p *pagadorFake) SetPaidWithDetails(id uint, fechaPago, metodoPago string) error {
	p.pagos = append(p.pagos, struct {
		ID     uint
		Fecha  string
		Metodo string
	}{id, fechaPago, metodoPago})
	return p.fallan[id]
}

func pendientesFixture() []cuotaDTO.CuotaResponse {
	out := make([]cuotaDTO.CuotaResponse, 0, len(fixtureCuotas()))
	for _, c := range fixtureCuotas() {
		if !c.Pagado {
			out = append(out, c)
		}
	}
	return out
}

func nuevoPagoMasivo(t *testing.T, datos *datosPagoFake, pagador *pagadorFake, avisos *avisosGrabados, confirmar ConfirmFunc) *PagoMasivo {
	t.Helper()
	w := &PagoMasivo{
		Datos:     datos,
		Pagador:   pagador,
		Confirmar: confirmar,
		Notificar: avisos,
		Hoy:       func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) },
	}
	require.NoError(t, w.Cargar())
	return w
}

func TestPagoSeleccionVacia(t *testing.T) {
	avisos := &avisosGrabados{}
	pagador := &pagadorFake{}
	datos := &datosPagoFake{cuotas: pendientesFixture(), hermanos: fixtureHermanos()}
	w := nuevoPagoMasivo(t, datos, pagador, avisos, func(string) bool {
		t.Fatal("no debe pedir confirmación")
		return false
	})

	res := w.Pagar("efectivo")

	assert.True(t, res.Cancelado)
	require.Len(t, avisos.errores, 1)
	assert.Equal(t, "Selecciona al menos una cuota para pagar", avisos.errores[0])
	assert.Empty(t, pagador.pagos)
}

func TestPagoToggleSeleccion(t *testing.T) {
	datos := &datosPagoFake{cuotas: pendientesFixture(), hermanos: fixtureHermanos()}
	w := nuevoPagoMasivo(t, datos, &pagadorFake{}, &avisosGrabados{}, func(string) bool { return false })

	w.ToggleSeleccion(11)
	w.ToggleSeleccion(12)
	assert.Equal(t, 2, w.Seleccionadas())
	assert.True(t, w.EstaSeleccionada(11))

	w.ToggleSeleccion(11)
	assert.Equal(t, 1, w.Seleccionadas())
	assert.False(t, w.EstaSeleccionada(11))
}

func TestPagoToggleTodasSobreVistaFiltrada(t *testing.T) {
	datos := &datosPagoFake{cuotas: pendientesFixture(), hermanos: fixtureHermanos()}
	w := nuevoPagoMasivo(t, datos, &pagadorFake{}, &avisosGrabados{}, func(string) bool { return false })

	filtradas := w.Filtradas("", "2024")
	require.Equal(t, []uint{11, 12}, idsDe(filtradas))

	w.ToggleTodas(filtradas)
	assert.Equal(t, 2, w.Seleccionadas())
	assert.False(t, w.EstaSeleccionada(13))

	// Un segundo toggle sobre la misma vista vacía la selección
	w.ToggleTodas(filtradas)
	assert.Zero(t, w.Seleccionadas())
}

func TestPagoConfirmacionIncluyeTotalYMetodo(t *testing.T) {
	var confirmacion string
	datos := &datosPagoFake{cuotas: pendientesFixture(), hermanos: fixtureHermanos()}
	w := nuevoPagoMasivo(t, datos, &pagadorFake{}, &avisosGrabados{}, func(m string) bool {
		confirmacion = m
		return false
	})

	w.ToggleSeleccion(11)
	w.ToggleSeleccion(13)
	assert.InDelta(t, 85.0, w.TotalSeleccionado(), 0.001)

	res := w.Pagar("domiciliacion")

	assert.True(t, res.Cancelado)
	assert.Contains(t, confirmacion, "2 cuotas")
	assert.Contains(t, confirmacion, "€85.00")
	assert.Contains(t, confirmacion, "Domiciliación")
	// Cancelar mantiene la selección intacta
	assert.Equal(t, 2, w.Seleccionadas())
}

func TestPagoMasivoConExito(t *testing.T) {
	avisos := &avisosGrabados{}
	pagador := &pagadorFake{}
	datos := &datosPagoFake{cuotas: pendientesFixture(), hermanos: fixtureHermanos()}
	w := nuevoPagoMasivo(t, datos, pagador, avisos, func(string) bool { return true })

	w.ToggleSeleccion(11)
	w.ToggleSeleccion(12)
	w.ToggleSeleccion(13)

	res := w.Pagar("transferencia")

	assert.Equal(t, 3, res.Pagadas)
	assert.Zero(t, res.Errores)
	require.Len(t, pagador.pagos, 3)
	for _, p := range pagador.pagos {
		assert.Equal(t, "2025-03-14", p.Fecha)
		assert.Equal(t, "transferencia", p.Metodo)
	}
	require.Len(t, avisos.exitos, 1)
	assert.Equal(t, "Se han marcado 3 cuotas como pagadas correctamente", avisos.exitos[0])

	// La selección queda vacía y el listado se ha recargado
	assert.Zero(t, w.Seleccionadas())
	assert.Equal(t, 2, datos.cargas)
}

func TestPagoMasivoConFallosParciales(t *testing.T) {
	avisos := &avisosGrabados{}
	pagador := &pagadorFake{fallan: map[uint]error{12: errors.New("timeout")}}
	datos := &datosPagoFake{cuotas: pendientesFixture(), hermanos: fixtureHermanos()}
	w := nuevoPagoMasivo(t, datos, pagador, avisos, func(string) bool { return true })

	w.ToggleSeleccion(11)
	w.ToggleSeleccion(12)
	w.ToggleSeleccion(13)

	res := w.Pagar("efectivo")

	assert.Equal(t, 2, res.Pagadas)
	assert.Equal(t, 1, res.Errores)
	require.Len(t, res.Resultados, 3)

	// El fallo no interrumpe el resto del lote
	require.Len(t, pagador.pagos, 3)

	var fallidas []uint
	for _, r := range res.Resultados {
		if r.Err != nil {
			fallidas = append(fallidas, r.CuotaID)
		}
	}
	assert.Equal(t, []uint{12}, fallidas)

	require.Len(t, avisos.errores, 1)
	assert.Equal(t, "Se procesaron 2 cuotas correctamente, pero hubo 1 errores", avisos.errores[0])

	// También con errores se limpia la selección y se recarga
	assert.Zero(t, w.Seleccionadas())
	assert.Equal(t, 2, datos.cargas)
}
