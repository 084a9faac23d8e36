package dto

import (
	"strings"
	"time"

	m "hermanar_backend/internals/features/hermanos/model"
)

/* =============== REQUESTS =============== */

// Create / Update (el formulario envía siempre el borrador completo)
type HermanoRequest struct {
	NumeroHermano string `json:"numero_hermano" validate:"omitempty,max=20"`

	Nombre          string  `json:"nombre" validate:"required,min=1"`
	PrimerApellido  string  `json:"primer_apellido" validate:"required,min=1"`
	SegundoApellido *string `json:"segundo_apellido" validate:"omitempty"`

	DNI                 *string `json:"dni" validate:"omitempty,max=20"`
	FechaNacimiento     *string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	LocalidadNacimiento *string `json:"localidad_nacimiento" validate:"omitempty"`
	ProvinciaNacimiento *string `json:"provincia_nacimiento" validate:"omitempty"`

	FechaAlta string `json:"fecha_alta" validate:"required,datetime=2006-01-02"`

	FamiliaID *uint `json:"familia_id" validate:"omitempty"`

	Telefono     *string `json:"telefono" validate:"omitempty,max=20"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Direccion    *string `json:"direccion" validate:"omitempty"`
	Localidad    *string `json:"localidad" validate:"omitempty"`
	Provincia    *string `json:"provincia" validate:"omitempty"`
	CodigoPostal *string `json:"codigo_postal" validate:"omitempty,max=10"`

	ParroquiaBautismo *string `json:"parroquia_bautismo" validate:"omitempty"`
	LocalidadBautismo *string `json:"localidad_bautismo" validate:"omitempty"`
	ProvinciaBautismo *string `json:"provincia_bautismo" validate:"omitempty"`

	AutorizacionMenores      bool    `json:"autorizacion_menores"`
	NombreRepresentanteLegal *string `json:"nombre_representante_legal" validate:"omitempty"`
	DNIRepresentanteLegal    *string `json:"dni_representante_legal" validate:"omitempty,max=20"`

	HermanoAval1 *string `json:"hermano_aval_1" validate:"omitempty"`
	HermanoAval2 *string `json:"hermano_aval_2" validate:"omitempty"`

	Activo        bool    `json:"activo"`
	Observaciones *string `json:"observaciones" validate:"omitempty"`
}

// normalizeOptional descarta los opcionales en blanco para guardarlos como NULL.
func normalizeOptional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func (r HermanoRequest) ToModel() *m.HermanoModel {
	return &m.HermanoModel{
		NumeroHermano:            strings.TrimSpace(r.NumeroHermano),
		Nombre:                   strings.TrimSpace(r.Nombre),
		PrimerApellido:           strings.TrimSpace(r.PrimerApellido),
		SegundoApellido:          normalizeOptional(r.SegundoApellido),
		DNI:                      normalizeOptional(r.DNI),
		FechaNacimiento:          normalizeOptional(r.FechaNacimiento),
		LocalidadNacimiento:      normalizeOptional(r.LocalidadNacimiento),
		ProvinciaNacimiento:      normalizeOptional(r.ProvinciaNacimiento),
		FechaAlta:                r.FechaAlta,
		FamiliaID:                r.FamiliaID,
		Telefono:                 normalizeOptional(r.Telefono),
		Email:                    normalizeOptional(r.Email),
		Direccion:                normalizeOptional(r.Direccion),
		Localidad:                normalizeOptional(r.Localidad),
		Provincia:                normalizeOptional(r.Provincia),
		CodigoPostal:             normalizeOptional(r.CodigoPostal),
		ParroquiaBautismo:        normalizeOptional(r.ParroquiaBautismo),
		LocalidadBautismo:        normalizeOptional(r.LocalidadBautismo),
		ProvinciaBautismo:        normalizeOptional(r.ProvinciaBautismo),
		AutorizacionMenores:      r.AutorizacionMenores,
		NombreRepresentanteLegal: normalizeOptional(r.NombreRepresentanteLegal),
		DNIRepresentanteLegal:    normalizeOptional(r.DNIRepresentanteLegal),
		HermanoAval1:             normalizeOptional(r.HermanoAval1),
		HermanoAval2:             normalizeOptional(r.HermanoAval2),
		Activo:                   r.Activo,
		Observaciones:            normalizeOptional(r.Observaciones),
	}
}

// ApplyTo aplica el borrador completo sobre un modelo existente (PUT).
func (r HermanoRequest) ApplyTo(mo *m.HermanoModel) {
	updated := r.ToModel()
	updated.ID = mo.ID
	updated.CreatedAt = mo.CreatedAt
	*mo = *updated
}

// Reasignar o desvincular la familia de un hermano
type UpdateHermanoFamiliaRequest struct {
	FamiliaID *uint `json:"familia_id" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type HermanoResponse struct {
	ID            uint   `json:"id"`
	NumeroHermano string `json:"numero_hermano"`

	Nombre          string  `json:"nombre"`
	PrimerApellido  string  `json:"primer_apellido"`
	SegundoApellido *string `json:"segundo_apellido,omitempty"`

	DNI                 *string `json:"dni,omitempty"`
	FechaNacimiento     *string `json:"fecha_nacimiento,omitempty"`
	LocalidadNacimiento *string `json:"localidad_nacimiento,omitempty"`
	ProvinciaNacimiento *string `json:"provincia_nacimiento,omitempty"`

	FechaAlta string `json:"fecha_alta"`

	FamiliaID *uint `json:"familia_id,omitempty"`

	Telefono     *string `json:"telefono,omitempty"`
	Email        *string `json:"email,omitempty"`
	Direccion    *string `json:"direccion,omitempty"`
	Localidad    *string `json:"localidad,omitempty"`
	Provincia    *string `json:"provincia,omitempty"`
	CodigoPostal *string `json:"codigo_postal,omitempty"`

	ParroquiaBautismo *string `json:"parroquia_bautismo,omitempty"`
	LocalidadBautismo *string `json:"localidad_bautismo,omitempty"`
	ProvinciaBautismo *string `json:"provincia_bautismo,omitempty"`

	AutorizacionMenores      bool    `json:"autorizacion_menores"`
	NombreRepresentanteLegal *string `json:"nombre_representante_legal,omitempty"`
	DNIRepresentanteLegal    *string `json:"dni_representante_legal,omitempty"`

	HermanoAval1 *string `json:"hermano_aval_1,omitempty"`
	HermanoAval2 *string `json:"hermano_aval_2,omitempty"`

	Activo        bool    `json:"activo"`
	Observaciones *string `json:"observaciones,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.HermanoModel) HermanoResponse {
	return HermanoResponse{
		ID:                       x.ID,
		NumeroHermano:            x.NumeroHermano,
		Nombre:                   x.Nombre,
		PrimerApellido:           x.PrimerApellido,
		SegundoApellido:          x.SegundoApellido,
		DNI:                      x.DNI,
		FechaNacimiento:          x.FechaNacimiento,
		LocalidadNacimiento:      x.LocalidadNacimiento,
		ProvinciaNacimiento:      x.ProvinciaNacimiento,
		FechaAlta:                x.FechaAlta,
		FamiliaID:                x.FamiliaID,
		Telefono:                 x.Telefono,
		Email:                    x.Email,
		Direccion:                x.Direccion,
		Localidad:                x.Localidad,
		Provincia:                x.Provincia,
		CodigoPostal:             x.CodigoPostal,
		ParroquiaBautismo:        x.ParroquiaBautismo,
		LocalidadBautismo:        x.LocalidadBautismo,
		ProvinciaBautismo:        x.ProvinciaBautismo,
		AutorizacionMenores:      x.AutorizacionMenores,
		NombreRepresentanteLegal: x.NombreRepresentanteLegal,
		DNIRepresentanteLegal:    x.DNIRepresentanteLegal,
		HermanoAval1:             x.HermanoAval1,
		HermanoAval2:             x.HermanoAval2,
		Activo:                   x.Activo,
		Observaciones:            x.Observaciones,
		CreatedAt:                x.CreatedAt,
		UpdatedAt:                x.UpdatedAt,
	}
}

func FromModels(list []m.HermanoModel) []HermanoResponse {
	out := make([]HermanoResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
