package model

import "time"

type FamiliaModel struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	NombreFamilia string `gorm:"column:nombre_familia;type:text;not null;uniqueIndex" json:"nombre_familia"`

	// Hermano cuya dirección se toma como dirección postal de la familia.
	// Invariante blanda: debería pertenecer a esta familia, pero no se revalida.
	HermanoDireccionID *uint `gorm:"column:hermano_direccion_id" json:"hermano_direccion_id,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (FamiliaModel) TableName() string { return "familias" }
