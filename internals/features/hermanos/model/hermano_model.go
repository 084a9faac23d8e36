package model

import (
	"strings"
	"time"
)

type HermanoModel struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	NumeroHermano string `gorm:"column:numero_hermano;type:varchar(20);not null;uniqueIndex" json:"numero_hermano"`

	Nombre          string  `gorm:"column:nombre;type:text;not null" json:"nombre"`
	PrimerApellido  string  `gorm:"column:primer_apellido;type:text;not null" json:"primer_apellido"`
	SegundoApellido *string `gorm:"column:segundo_apellido;type:text" json:"segundo_apellido,omitempty"`

	DNI                 *string `gorm:"column:dni;type:varchar(20)" json:"dni,omitempty"`
	FechaNacimiento     *string `gorm:"column:fecha_nacimiento;type:date" json:"fecha_nacimiento,omitempty"` // YYYY-MM-DD
	LocalidadNacimiento *string `gorm:"column:localidad_nacimiento;type:text" json:"localidad_nacimiento,omitempty"`
	ProvinciaNacimiento *string `gorm:"column:provincia_nacimiento;type:text" json:"provincia_nacimiento,omitempty"`

	FechaAlta string `gorm:"column:fecha_alta;type:date;not null" json:"fecha_alta"` // YYYY-MM-DD

	// FK nullable: un hermano puede no pertenecer a ninguna familia
	FamiliaID *uint `gorm:"column:familia_id;index" json:"familia_id,omitempty"`

	Telefono     *string `gorm:"column:telefono;type:varchar(20)" json:"telefono,omitempty"`
	Email        *string `gorm:"column:email;type:text" json:"email,omitempty"`
	Direccion    *string `gorm:"column:direccion;type:text" json:"direccion,omitempty"`
	Localidad    *string `gorm:"column:localidad;type:text" json:"localidad,omitempty"`
	Provincia    *string `gorm:"column:provincia;type:text" json:"provincia,omitempty"`
	CodigoPostal *string `gorm:"column:codigo_postal;type:varchar(10)" json:"codigo_postal,omitempty"`

	ParroquiaBautismo *string `gorm:"column:parroquia_bautismo;type:text" json:"parroquia_bautismo,omitempty"`
	LocalidadBautismo *string `gorm:"column:localidad_bautismo;type:text" json:"localidad_bautismo,omitempty"`
	ProvinciaBautismo *string `gorm:"column:provincia_bautismo;type:text" json:"provincia_bautismo,omitempty"`

	AutorizacionMenores      bool    `gorm:"column:autorizacion_menores;not null;default:false" json:"autorizacion_menores"`
	NombreRepresentanteLegal *string `gorm:"column:nombre_representante_legal;type:text" json:"nombre_representante_legal,omitempty"`
	DNIRepresentanteLegal    *string `gorm:"column:dni_representante_legal;type:varchar(20)" json:"dni_representante_legal,omitempty"`

	HermanoAval1 *string `gorm:"column:hermano_aval_1;type:text" json:"hermano_aval_1,omitempty"`
	HermanoAval2 *string `gorm:"column:hermano_aval_2;type:text" json:"hermano_aval_2,omitempty"`

	Activo        bool    `gorm:"column:activo;not null;default:true;index" json:"activo"`
	Observaciones *string `gorm:"column:observaciones;type:text" json:"observaciones,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (HermanoModel) TableName() string { return "hermanos" }

// NombreCompleto concatena nombre y apellidos para mostrar en listados.
func (h HermanoModel) NombreCompleto() string {
	parts := []string{h.Nombre, h.PrimerApellido}
	if h.SegundoApellido != nil && strings.TrimSpace(*h.SegundoApellido) != "" {
		parts = append(parts, *h.SegundoApellido)
	}
	return strings.Join(parts, " ")
}
