package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type avisosGrabados struct {
	exitos  []string
	errores []string
}

func (n *avisosGrabados) Success(mensaje string) { n.exitos = append(n.exitos, mensaje) }
func (n *avisosGrabados) Error(mensaje string)   { n.errores = append(n.errores, mensaje) }

type generadorFake struct {
	creadas  int
	err      error
	llamadas []int
	anios    []int
	trims    []int
	importes []float64
}

func (g *generadorFake) GenerarCuotasTrimestre(anio, trimestre int, importe float64) (int, error) {
	g.llamadas = append(g.llamadas, 1)
	g.anios = append(g.anios, anio)
	g.trims = append(g.trims, trimestre)
	g.importes = append(g.importes, importe)
	return g.creadas, g.err
}

func TestGeneracionRechazaCamposVacios(t *testing.T) {
	avisos := &avisosGrabados{}
	gen := &generadorFake{}
	w := &GeneracionCuotas{
		Generador: gen,
		Confirmar: func(string) bool { t.Fatal("no debe pedir confirmación"); return false },
		Notificar: avisos,
	}

	res := w.Ejecutar(0, 40)
	assert.True(t, res.Cancelado)

	res = w.Ejecutar(2025, 0)
	assert.True(t, res.Cancelado)

	require.Len(t, avisos.errores, 2)
	assert.Equal(t, "Por favor, completa todos los campos", avisos.errores[0])
	assert.Empty(t, gen.llamadas)
}

func TestGeneracionRechazaImporteNegativo(t *testing.T) {
	avisos := &avisosGrabados{}
	w := &GeneracionCuotas{
		Generador: &generadorFake{},
		Confirmar: func(string) bool { return true },
		Notificar: avisos,
	}

	res := w.Ejecutar(2025, -10)
	assert.True(t, res.Cancelado)
	require.Len(t, avisos.errores, 1)
	assert.Equal(t, "El importe debe ser mayor que 0", avisos.errores[0])
}

func TestGeneracionCancelada(t *testing.T) {
	avisos := &avisosGrabados{}
	gen := &generadorFake{creadas: 5}
	w := &GeneracionCuotas{
		Generador: gen,
		Confirmar: func(string) bool { return false },
		Notificar: avisos,
	}

	res := w.Ejecutar(2025, 40)
	assert.True(t, res.Cancelado)
	assert.Empty(t, gen.llamadas)
	assert.Empty(t, avisos.exitos)
	assert.Empty(t, avisos.errores)
}

func TestGeneracionEnviaSiempreTrimestreUno(t *testing.T) {
	var confirmacion string
	gen := &generadorFake{creadas: 12}
	w := &GeneracionCuotas{
		Generador: gen,
		Confirmar: func(m string) bool { confirmacion = m; return true },
		Notificar: &avisosGrabados{},
	}

	w.Ejecutar(2025, 42.5)

	require.Len(t, gen.llamadas, 1)
	assert.Equal(t, 2025, gen.anios[0])
	assert.Equal(t, 1, gen.trims[0])
	assert.InDelta(t, 42.5, gen.importes[0], 0.001)
	assert.Contains(t, confirmacion, "Año: 2025")
	assert.Contains(t, confirmacion, "€42.50")
}

func TestGeneracionSinCuotasNuevas(t *testing.T) {
	avisos := &avisosGrabados{}
	refrescos := 0
	w := &GeneracionCuotas{
		Generador: &generadorFake{creadas: 0},
		Confirmar: func(string) bool { return true },
		Notificar: avisos,
		Refrescar: func() { refrescos++ },
	}

	res := w.Ejecutar(2025, 40)

	assert.False(t, res.Cancelado)
	assert.Zero(t, res.CuotasCreadas)
	require.Len(t, avisos.errores, 1)
	assert.Equal(t, "No se generaron cuotas. Es posible que ya existan para este período.", avisos.errores[0])
	assert.Empty(t, avisos.exitos)
	assert.Zero(t, refrescos)
}

func TestGeneracionConExito(t *testing.T) {
	avisos := &avisosGrabados{}
	refrescos := 0
	w := &GeneracionCuotas{
		Generador: &generadorFake{creadas: 37},
		Confirmar: func(string) bool { return true },
		Notificar: avisos,
		Refrescar: func() { refrescos++ },
	}

	res := w.Ejecutar(2025, 40)

	assert.Equal(t, 37, res.CuotasCreadas)
	require.Len(t, avisos.exitos, 1)
	assert.Equal(t, "Se han generado 37 cuotas correctamente", avisos.exitos[0])
	assert.Equal(t, 1, refrescos)
}

func TestGeneracionConErrorRemoto(t *testing.T) {
	avisos := &avisosGrabados{}
	refrescos := 0
	w := &GeneracionCuotas{
		Generador: &generadorFake{err: errors.New("conexión rechazada")},
		Confirmar: func(string) bool { return true },
		Notificar: avisos,
		Refrescar: func() { refrescos++ },
	}

	res := w.Ejecutar(2025, 40)

	assert.False(t, res.Cancelado)
	assert.Zero(t, res.CuotasCreadas)
	require.Len(t, avisos.errores, 1)
	assert.Contains(t, avisos.errores[0], "Error al generar las cuotas")
	assert.Contains(t, avisos.errores[0], "conexión rechazada")
	assert.Zero(t, refrescos)
}
