package dto

import (
	"strings"
	"time"

	m "hermanar_backend/internals/features/familias/model"
)

/* =============== REQUESTS =============== */

type FamiliaRequest struct {
	NombreFamilia      string `json:"nombre_familia" validate:"required,min=1"`
	HermanoDireccionID *uint  `json:"hermano_direccion_id" validate:"omitempty"`
}

func (r FamiliaRequest) ToModel() *m.FamiliaModel {
	return &m.FamiliaModel{
		NombreFamilia:      strings.TrimSpace(r.NombreFamilia),
		HermanoDireccionID: r.HermanoDireccionID,
	}
}

func (r FamiliaRequest) ApplyTo(mo *m.FamiliaModel) {
	mo.NombreFamilia = strings.TrimSpace(r.NombreFamilia)
	mo.HermanoDireccionID = r.HermanoDireccionID
}

/* =============== RESPONSES =============== */

type FamiliaResponse struct {
	ID                 uint       `json:"id"`
	NombreFamilia      string     `json:"nombre_familia"`
	HermanoDireccionID *uint      `json:"hermano_direccion_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// Totales de hermanos de una familia
type FamiliaStatsResponse struct {
	TotalHermanos   int `json:"total_hermanos"`
	HermanosActivos int `json:"hermanos_activos"`
}

// Dirección postal de referencia de la familia, tomada del hermano
// apuntado por hermano_direccion_id (null si no está establecido).
type DireccionPrincipal struct {
	Direccion     *string `json:"direccion,omitempty"`
	Telefono      *string `json:"telefono,omitempty"`
	Email         *string `json:"email,omitempty"`
	NombreHermano string  `json:"nombre_hermano"`
}

type FamiliaWithAddressResponse struct {
	ID                 uint                `json:"id"`
	NombreFamilia      string              `json:"nombre_familia"`
	HermanoDireccionID *uint               `json:"hermano_direccion_id,omitempty"`
	DireccionPrincipal *DireccionPrincipal `json:"direccion_principal,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.FamiliaModel) FamiliaResponse {
	return FamiliaResponse{
		ID:                 x.ID,
		NombreFamilia:      x.NombreFamilia,
		HermanoDireccionID: x.HermanoDireccionID,
		CreatedAt:          x.CreatedAt,
		UpdatedAt:          x.UpdatedAt,
	}
}

func FromModels(list []m.FamiliaModel) []FamiliaResponse {
	out := make([]FamiliaResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
