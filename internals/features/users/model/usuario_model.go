package model

import "time"

type UsuarioModel struct {
	UsuarioID int64 `gorm:"column:usuario_id;primaryKey;autoIncrement" json:"usuario_id"`

	UsuarioUserName string `gorm:"column:usuario_user_name;type:varchar(50);not null;uniqueIndex" json:"usuario_user_name"`
	UsuarioPassword string `gorm:"column:usuario_password;type:text;not null" json:"-"`

	UsuarioIsActive bool `gorm:"column:usuario_is_active;not null;default:true" json:"usuario_is_active"`

	UsuarioCreatedAt time.Time  `gorm:"column:usuario_created_at;autoCreateTime" json:"usuario_created_at"`
	UsuarioUpdatedAt *time.Time `gorm:"column:usuario_updated_at;autoUpdateTime" json:"usuario_updated_at,omitempty"`
}

func (UsuarioModel) TableName() string { return "usuarios" }
