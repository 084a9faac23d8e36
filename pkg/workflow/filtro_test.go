package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cuotaDTO "hermanar_backend/internals/features/cuotas/dto"
	hermanoDTO "hermanar_backend/internals/features/hermanos/dto"
)

func strPtr(s string) *string { return &s }

func fixtureHermanos() []hermanoDTO.HermanoResponse {
	return []hermanoDTO.HermanoResponse{
		{ID: 1, NumeroHermano: "H0001", Nombre: "Antonio", PrimerApellido: "García", SegundoApellido: strPtr("Moreno")},
		{ID: 2, NumeroHermano: "H0002", Nombre: "María", PrimerApellido: "López"},
		{ID: 3, NumeroHermano: "H0003", Nombre: "José", PrimerApellido: "Romero", SegundoApellido: strPtr("García")},
	}
}

func fixtureCuotas() []cuotaDTO.CuotaResponse {
	return []cuotaDTO.CuotaResponse{
		{ID: 10, HermanoID: 1, Anio: 2024, Trimestre: 1, Importe: 40, Pagado: true},
		{ID: 11, HermanoID: 2, Anio: 2024, Trimestre: 1, Importe: 40, Pagado: false},
		{ID: 12, HermanoID: 3, Anio: 2024, Trimestre: 1, Importe: 40, Pagado: false},
		{ID: 13, HermanoID: 1, Anio: 2025, Trimestre: 1, Importe: 45, Pagado: false},
		{ID: 14, HermanoID: 99, Anio: 2025, Trimestre: 1, Importe: 45, Pagado: true},
	}
}

func idsDe(cuotas []cuotaDTO.CuotaResponse) []uint {
	ids := make([]uint, 0, len(cuotas))
	for _, c := range cuotas {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFiltrarCuotasPorAnio(t *testing.T) {
	byID := IndexarHermanos(fixtureHermanos())

	out := FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Anio: "2024"})
	assert.Equal(t, []uint{10, 11, 12}, idsDe(out))

	out = FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Anio: FiltroTodos})
	assert.Len(t, out, 5)
}

func TestFiltrarCuotasPorEstado(t *testing.T) {
	byID := IndexarHermanos(fixtureHermanos())

	out := FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Pagado: "pendiente"})
	assert.Equal(t, []uint{11, 12, 13}, idsDe(out))

	out = FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Pagado: "pagado"})
	assert.Equal(t, []uint{10, 14}, idsDe(out))
}

func TestFiltrarCuotasPorBusqueda(t *testing.T) {
	byID := IndexarHermanos(fixtureHermanos())

	// La subcadena no distingue mayúsculas y busca en nombre y apellidos
	out := FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Busqueda: "garcía"})
	assert.Equal(t, []uint{10, 12, 13}, idsDe(out))

	// También sobre el número de hermano
	out = FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Busqueda: "h0002"})
	assert.Equal(t, []uint{11}, idsDe(out))
}

func TestFiltrarCuotasConjuncion(t *testing.T) {
	byID := IndexarHermanos(fixtureHermanos())

	// Año + estado
	out := FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Anio: "2024", Pagado: "pendiente"})
	assert.Equal(t, []uint{11, 12}, idsDe(out))

	// Año + búsqueda
	out = FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Anio: "2025", Busqueda: "garcía"})
	assert.Equal(t, []uint{13}, idsDe(out))

	// Las tres condiciones a la vez
	out = FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Anio: "2024", Pagado: "pendiente", Busqueda: "romero"})
	assert.Equal(t, []uint{12}, idsDe(out))

	// Conjunción sin resultados
	out = FiltrarCuotas(fixtureCuotas(), byID, FiltroCuotas{Anio: "2025", Pagado: "pendiente", Busqueda: "lópez"})
	assert.Empty(t, out)
}

func TestResolverHermanoDesconocido(t *testing.T) {
	byID := IndexarHermanos(fixtureHermanos())

	assert.Equal(t, "Antonio García Moreno", ResolverNombre(byID, 1))
	assert.Equal(t, "María López", ResolverNombre(byID, 2))
	assert.Equal(t, "H0003", ResolverNumero(byID, 3))

	// Un id sin hermano cargado muestra los marcadores, nunca falla
	assert.Equal(t, NombreDesconocido, ResolverNombre(byID, 99))
	assert.Equal(t, NumeroDesconocido, ResolverNumero(byID, 99))
}

func TestAniosDisponibles(t *testing.T) {
	assert.Equal(t, []int{2025, 2024}, AniosDisponibles(fixtureCuotas()))
	assert.Empty(t, AniosDisponibles(nil))
}

func TestResumirCuotas(t *testing.T) {
	r := ResumirCuotas(fixtureCuotas())
	require.Equal(t, 5, r.Total)
	assert.Equal(t, 2, r.Pagadas)
	assert.Equal(t, 3, r.Pendientes)
	assert.InDelta(t, 210.0, r.ImporteTotal, 0.001)
	assert.InDelta(t, 85.0, r.ImportePagado, 0.001)
	assert.InDelta(t, 125.0, r.ImportePendiente, 0.001)
}
