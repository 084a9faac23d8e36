package dto

import "strings"

// HermanoLegacyRequest es la forma antigua del registro, con un único campo
// "apellidos". Se acepta en el endpoint de importación para ficheros exportados
// por versiones anteriores y se adapta a la forma canónica antes de persistir.
type HermanoLegacyRequest struct {
	NumeroHermano string  `json:"numero_hermano" validate:"omitempty,max=20"`
	Nombre        string  `json:"nombre" validate:"required,min=1"`
	Apellidos     string  `json:"apellidos" validate:"required,min=1"`
	DNI           *string `json:"dni" validate:"omitempty,max=20"`
	FechaAlta     string  `json:"fecha_alta" validate:"required,datetime=2006-01-02"`
	FamiliaID     *uint   `json:"familia_id" validate:"omitempty"`
	Telefono      *string `json:"telefono" validate:"omitempty,max=20"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Direccion     *string `json:"direccion" validate:"omitempty"`
	Activo        bool    `json:"activo"`
	Observaciones *string `json:"observaciones" validate:"omitempty"`
}

// ToCanonical divide "apellidos" en primer/segundo apellido por el primer
// espacio. Un solo apellido queda como primer_apellido.
func (r HermanoLegacyRequest) ToCanonical() HermanoRequest {
	primer := strings.TrimSpace(r.Apellidos)
	var segundo *string
	if idx := strings.IndexByte(primer, ' '); idx > 0 {
		rest := strings.TrimSpace(primer[idx+1:])
		if rest != "" {
			segundo = &rest
		}
		primer = primer[:idx]
	}

	return HermanoRequest{
		NumeroHermano:   r.NumeroHermano,
		Nombre:          r.Nombre,
		PrimerApellido:  primer,
		SegundoApellido: segundo,
		DNI:             r.DNI,
		FechaAlta:       r.FechaAlta,
		FamiliaID:       r.FamiliaID,
		Telefono:        r.Telefono,
		Email:           r.Email,
		Direccion:       r.Direccion,
		Activo:          r.Activo,
		Observaciones:   r.Observaciones,
	}
}
