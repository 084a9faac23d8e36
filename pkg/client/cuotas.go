package client

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	cuotaDTO "hermanar_backend/internals/features/cuotas/dto"
	cuotaModel "hermanar_backend/internals/features/cuotas/model"
)

func (c *Client) GetAllCuotas() ([]cuotaDTO.CuotaResponse, error) {
	var out []cuotaDTO.CuotaResponse
	err := c.invoke(http.MethodGet, "/api/cuotas", nil, nil, &out)
	return out, err
}

func (c *Client) GetCuotasPendientes() ([]cuotaDTO.CuotaResponse, error) {
	var out []cuotaDTO.CuotaResponse
	err := c.invoke(http.MethodGet, "/api/cuotas/pendientes", nil, nil, &out)
	return out, err
}

func (c *Client) GetCuotasByYear(anio int) ([]cuotaDTO.CuotaResponse, error) {
	var out []cuotaDTO.CuotaResponse
	err := c.invoke(http.MethodGet, fmt.Sprintf("/api/cuotas/anio/%d", anio), nil, nil, &out)
	return out, err
}

func (c *Client) GetCuotasByHermano(hermanoID uint) ([]cuotaDTO.CuotaResponse, error) {
	var out []cuotaDTO.CuotaResponse
	err := c.invoke(http.MethodGet, fmt.Sprintf("/api/hermanos/%d/cuotas", hermanoID), nil, nil, &out)
	return out, err
}

func (c *Client) CreateCuota(req cuotaDTO.CuotaRequest) (*cuotaDTO.CuotaResponse, error) {
	var out cuotaDTO.CuotaResponse
	err := c.invoke(http.MethodPost, "/api/cuotas", req, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCuota(id uint, req cuotaDTO.CuotaRequest) (*cuotaDTO.CuotaResponse, error) {
	var out cuotaDTO.CuotaResponse
	err := c.invoke(http.MethodPut, fmt.Sprintf("/api/cuotas/%d", id), req, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCuota(id uint) error {
	return c.invoke(http.MethodDelete, fmt.Sprintf("/api/cuotas/%d", id), nil, nil, nil)
}

// TogglePaid conmuta el flag pagado sin registrar fecha ni método.
func (c *Client) TogglePaid(id uint, pagado bool) error {
	return c.invoke(http.MethodPatch, fmt.Sprintf("/api/cuotas/%d/pagado", id),
		cuotaDTO.TogglePagadoRequest{Pagado: pagado}, nil, nil)
}

// SetPaidWithDetails marca la cuota como pagada con fecha y método.
func (c *Client) SetPaidWithDetails(id uint, fechaPago, metodoPago string) error {
	return c.invoke(http.MethodPatch, fmt.Sprintf("/api/cuotas/%d/pagar", id),
		cuotaDTO.MarcarPagadaRequest{FechaPago: fechaPago, MetodoPago: metodoPago}, nil, nil)
}

// GenerarCuotasTrimestre crea una cuota por hermano activo para el periodo y
// devuelve cuántas se crearon realmente (los duplicados se omiten en el backend).
func (c *Client) GenerarCuotasTrimestre(anio, trimestre int, importe float64) (int, error) {
	var out cuotaDTO.GenerarCuotasResponse
	err := c.invoke(http.MethodPost, "/api/cuotas/generar",
		cuotaDTO.GenerarCuotasRequest{Anio: anio, Trimestre: trimestre, Importe: importe}, nil, &out)
	if err != nil {
		return 0, err
	}
	return out.CuotasCreadas, nil
}

// ExportCuotas descarga el listado en XLSX. Devuelve el contenido del fichero
// y el nombre sugerido por el backend.
func (c *Client) ExportCuotas(anio *int) ([]byte, string, error) {
	req := c.http.R()
	if anio != nil {
		req.SetQueryParam("anio", strconv.Itoa(*anio))
	}

	resp, err := req.Get("/api/cuotas/export")
	if err != nil {
		return nil, "", &APIError{Message: err.Error()}
	}
	if !resp.IsSuccess() {
		var apiErr errorEnvelope
		msg := resp.Status()
		if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return nil, "", &APIError{Status: resp.StatusCode(), Code: apiErr.ErrorCode, Message: msg}
	}

	filename := "cuotas.xlsx"
	if cd := resp.Header().Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}
	return resp.Body(), filename, nil
}

func (c *Client) GetEstadisticasCuotas(anio *int) (*cuotaModel.EstadisticasCuotas, error) {
	query := map[string]string{}
	if anio != nil {
		query["anio"] = strconv.Itoa(*anio)
	}
	var out cuotaModel.EstadisticasCuotas
	err := c.invoke(http.MethodGet, "/api/cuotas/estadisticas", nil, query, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
