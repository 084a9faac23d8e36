package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cuotaDTO "hermanar_backend/internals/features/cuotas/dto"
)

func servidorDePrueba(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, nil)
}

func escribirJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestInvokeDecodificaEnvelope(t *testing.T) {
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cuotas/pendientes", r.URL.Path)
		escribirJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"message": "OK",
			"data": []map[string]any{
				{"id": 11, "hermano_id": 2, "anio": 2024, "trimestre": 1, "importe": 40, "pagado": false},
			},
		})
	})

	cuotas, err := c.GetCuotasPendientes()

	require.NoError(t, err)
	require.Len(t, cuotas, 1)
	assert.Equal(t, uint(11), cuotas[0].ID)
	assert.Equal(t, 2024, cuotas[0].Anio)
	assert.False(t, cuotas[0].Pagado)
}

func TestInvokeDevuelveAPIError(t *testing.T) {
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		escribirJSON(t, w, http.StatusNotFound, map[string]any{
			"success":    false,
			"message":    "Hermano no encontrado",
			"error_code": "NOT_FOUND",
		})
	})

	_, err := c.GetHermano(42)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Hermano no encontrado", apiErr.Message)
}

func TestDeleteFamiliaRechazadaConMiembrosActivos(t *testing.T) {
	borrados := 0
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			escribirJSON(t, w, http.StatusConflict, map[string]any{
				"success":    false,
				"message":    "No se puede eliminar la familia porque tiene hermanos activos asociados",
				"error_code": "CONFLICT",
			})
			return
		}
		borrados++ // nunca debe llegar aquí
		w.WriteHeader(http.StatusOK)
	})

	err := c.DeleteFamilia(7)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Contains(t, apiErr.Message, "hermanos activos")
	assert.Zero(t, borrados)
}

func TestGenerarCuotasDevuelveRecuento(t *testing.T) {
	var recibido cuotaDTO.GenerarCuotasRequest
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cuotas/generar", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		escribirJSON(t, w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "Cuotas generadas",
			"data":    map[string]any{"cuotas_creadas": 12},
		})
	})

	creadas, err := c.GenerarCuotasTrimestre(2025, 1, 40)

	require.NoError(t, err)
	assert.Equal(t, 12, creadas)
	assert.Equal(t, 2025, recibido.Anio)
	assert.Equal(t, 1, recibido.Trimestre)
	assert.InDelta(t, 40.0, recibido.Importe, 0.001)
}

func TestSetTokenEnviaBearer(t *testing.T) {
	var auth string
	c := servidorDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		escribirJSON(t, w, http.StatusOK, map[string]any{
			"success": true, "message": "OK", "data": []any{},
		})
	})

	c.SetToken("abc123")
	_, err := c.GetAllCuotas()

	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", auth)
}
