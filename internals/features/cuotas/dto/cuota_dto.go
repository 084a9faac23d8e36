package dto

import (
	"time"

	m "hermanar_backend/internals/features/cuotas/model"
)

/* =============== REQUESTS =============== */

// Create / Update. Los formularios de alta y edición no ofrecen bizum;
// ese método solo entra por el flujo de pago masivo.
type CuotaRequest struct {
	HermanoID uint    `json:"hermano_id" validate:"required,gt=0"`
	Anio      int     `json:"anio" validate:"required,gte=2000,lte=2100"`
	Trimestre int     `json:"trimestre" validate:"required,min=1,max=4"`
	Importe   float64 `json:"importe" validate:"required,gt=0"`

	Pagado     bool    `json:"pagado"`
	FechaPago  *string `json:"fecha_pago" validate:"omitempty,datetime=2006-01-02"`
	MetodoPago *string `json:"metodo_pago" validate:"omitempty,oneof=efectivo transferencia domiciliacion"`

	Observaciones *string `json:"observaciones" validate:"omitempty"`
}

func (r CuotaRequest) ToModel() *m.CuotaModel {
	return &m.CuotaModel{
		HermanoID:     r.HermanoID,
		Anio:          r.Anio,
		Trimestre:     r.Trimestre,
		Importe:       r.Importe,
		Pagado:        r.Pagado,
		FechaPago:     r.FechaPago,
		MetodoPago:    r.MetodoPago,
		Observaciones: r.Observaciones,
	}
}

func (r CuotaRequest) ApplyTo(mo *m.CuotaModel) {
	mo.HermanoID = r.HermanoID
	mo.Anio = r.Anio
	mo.Trimestre = r.Trimestre
	mo.Importe = r.Importe
	mo.Pagado = r.Pagado
	mo.FechaPago = r.FechaPago
	mo.MetodoPago = r.MetodoPago
	mo.Observaciones = r.Observaciones
}

// Conmutar el estado pagado sin detalles (acción rápida del listado)
type TogglePagadoRequest struct {
	Pagado bool `json:"pagado"`
}

// Marcar como pagada registrando fecha y método (flujo de pago)
type MarcarPagadaRequest struct {
	FechaPago  string `json:"fecha_pago" validate:"required,datetime=2006-01-02"`
	MetodoPago string `json:"metodo_pago" validate:"required,oneof=efectivo transferencia domiciliacion bizum"`
}

// Generación masiva de cuotas para todos los hermanos activos
type GenerarCuotasRequest struct {
	Anio      int     `json:"anio" validate:"required,gte=2000,lte=2100"`
	Trimestre int     `json:"trimestre" validate:"required,min=1,max=4"`
	Importe   float64 `json:"importe" validate:"required,gt=0"`
}

/* =============== RESPONSES =============== */

type CuotaResponse struct {
	ID        uint    `json:"id"`
	HermanoID uint    `json:"hermano_id"`
	Anio      int     `json:"anio"`
	Trimestre int     `json:"trimestre"`
	Importe   float64 `json:"importe"`

	Pagado     bool    `json:"pagado"`
	FechaPago  *string `json:"fecha_pago,omitempty"`
	MetodoPago *string `json:"metodo_pago,omitempty"`

	Observaciones *string `json:"observaciones,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type GenerarCuotasResponse struct {
	CuotasCreadas int `json:"cuotas_creadas"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.CuotaModel) CuotaResponse {
	return CuotaResponse{
		ID:            x.ID,
		HermanoID:     x.HermanoID,
		Anio:          x.Anio,
		Trimestre:     x.Trimestre,
		Importe:       x.Importe,
		Pagado:        x.Pagado,
		FechaPago:     x.FechaPago,
		MetodoPago:    x.MetodoPago,
		Observaciones: x.Observaciones,
		CreatedAt:     x.CreatedAt,
		UpdatedAt:     x.UpdatedAt,
	}
}

func FromModels(list []m.CuotaModel) []CuotaResponse {
	out := make([]CuotaResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
