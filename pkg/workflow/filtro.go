// Package workflow implementa los flujos de pantalla sobre la fachada de
// comandos: generación anual de cuotas, pago masivo y los filtros de listado.
package workflow

import (
	"sort"
	"strconv"
	"strings"

	cuotaDTO "hermanar_backend/internals/features/cuotas/dto"
	hermanoDTO "hermanar_backend/internals/features/hermanos/dto"
)

// Marcadores para referencias a hermanos que no están en la colección cargada.
const (
	NombreDesconocido = "Desconocido"
	NumeroDesconocido = "-"
)

// FiltroTodos es el valor de filtro que no descarta nada.
const FiltroTodos = "todos"

// IndexarHermanos construye el índice por id para resolver nombres en listados.
func IndexarHermanos(hermanos []hermanoDTO.HermanoResponse) map[uint]hermanoDTO.HermanoResponse {
	byID := make(map[uint]hermanoDTO.HermanoResponse, len(hermanos))
	for _, h := range hermanos {
		byID[h.ID] = h
	}
	return byID
}

func nombreCompleto(h hermanoDTO.HermanoResponse) string {
	parts := []string{h.Nombre, h.PrimerApellido}
	if h.SegundoApellido != nil && strings.TrimSpace(*h.SegundoApellido) != "" {
		parts = append(parts, *h.SegundoApellido)
	}
	return strings.Join(parts, " ")
}

// ResolverNombre busca el nombre completo del hermano; "Desconocido" si el id
// no está en la colección.
func ResolverNombre(byID map[uint]hermanoDTO.HermanoResponse, hermanoID uint) string {
	if h, ok := byID[hermanoID]; ok {
		return nombreCompleto(h)
	}
	return NombreDesconocido
}

// ResolverNumero busca el número de hermano; "-" si el id no está.
func ResolverNumero(byID map[uint]hermanoDTO.HermanoResponse, hermanoID uint) string {
	if h, ok := byID[hermanoID]; ok {
		return h.NumeroHermano
	}
	return NumeroDesconocido
}

// FiltroCuotas es la conjunción de condiciones del listado de cuotas. Cada
// condición vacía (o "todos") se considera inactiva; las activas se combinan
// siempre con AND.
type FiltroCuotas struct {
	// Año exacto como texto, "" o "todos" para no filtrar
	Anio string
	// "pagado", "pendiente", "" o "todos"
	Pagado string
	// Subcadena sobre nombre resuelto o número de hermano, sin distinguir mayúsculas
	Busqueda string
}

func (f FiltroCuotas) matches(c cuotaDTO.CuotaResponse, byID map[uint]hermanoDTO.HermanoResponse) bool {
	if f.Anio != "" && f.Anio != FiltroTodos && f.Anio != strconv.Itoa(c.Anio) {
		return false
	}

	switch f.Pagado {
	case "", FiltroTodos:
	case "pagado":
		if !c.Pagado {
			return false
		}
	case "pendiente":
		if c.Pagado {
			return false
		}
	}

	if f.Busqueda != "" {
		needle := strings.ToLower(f.Busqueda)
		nombre := strings.ToLower(ResolverNombre(byID, c.HermanoID))
		numero := strings.ToLower(ResolverNumero(byID, c.HermanoID))
		if !strings.Contains(nombre, needle) && !strings.Contains(numero, needle) {
			return false
		}
	}

	return true
}

// FiltrarCuotas devuelve el subconjunto que satisface todas las condiciones
// activas del filtro, en el orden de entrada.
func FiltrarCuotas(cuotas []cuotaDTO.CuotaResponse, byID map[uint]hermanoDTO.HermanoResponse, f FiltroCuotas) []cuotaDTO.CuotaResponse {
	out := make([]cuotaDTO.CuotaResponse, 0, len(cuotas))
	for _, c := range cuotas {
		if f.matches(c, byID) {
			out = append(out, c)
		}
	}
	return out
}

// AniosDisponibles extrae los años presentes en la colección, de mayor a menor.
func AniosDisponibles(cuotas []cuotaDTO.CuotaResponse) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, c := range cuotas {
		if _, ok := seen[c.Anio]; !ok {
			seen[c.Anio] = struct{}{}
			years = append(years, c.Anio)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// ResumenCuotas son los totales que el listado muestra sobre el conjunto filtrado.
type ResumenCuotas struct {
	Total            int
	Pagadas          int
	Pendientes       int
	ImporteTotal     float64
	ImportePagado    float64
	ImportePendiente float64
}

func ResumirCuotas(cuotas []cuotaDTO.CuotaResponse) ResumenCuotas {
	var r ResumenCuotas
	for _, c := range cuotas {
		r.Total++
		r.ImporteTotal += c.Importe
		if c.Pagado {
			r.Pagadas++
			r.ImportePagado += c.Importe
		}
	}
	r.Pendientes = r.Total - r.Pagadas
	r.ImportePendiente = r.ImporteTotal - r.ImportePagado
	return r
}
