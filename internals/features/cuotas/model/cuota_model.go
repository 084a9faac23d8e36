package model

import "time"

// Métodos de pago admitidos. Bizum solo se ofrece en el flujo de pago masivo,
// no en los formularios de alta/edición.
const (
	MetodoPagoEfectivo      = "efectivo"
	MetodoPagoTransferencia = "transferencia"
	MetodoPagoDomiciliacion = "domiciliacion"
	MetodoPagoBizum         = "bizum"
)

type CuotaModel struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	HermanoID uint `gorm:"column:hermano_id;not null;index;uniqueIndex:uq_cuotas_hermano_periodo,priority:1" json:"hermano_id"`

	Anio      int `gorm:"column:anio;not null;index;uniqueIndex:uq_cuotas_hermano_periodo,priority:2" json:"anio"`
	Trimestre int `gorm:"column:trimestre;not null;check:trimestre >= 1 AND trimestre <= 4;uniqueIndex:uq_cuotas_hermano_periodo,priority:3" json:"trimestre"`

	Importe float64 `gorm:"column:importe;not null" json:"importe"`

	Pagado     bool    `gorm:"column:pagado;not null;default:false;index" json:"pagado"`
	FechaPago  *string `gorm:"column:fecha_pago;type:date" json:"fecha_pago,omitempty"` // YYYY-MM-DD
	MetodoPago *string `gorm:"column:metodo_pago;type:varchar(20)" json:"metodo_pago,omitempty"`

	Observaciones *string `gorm:"column:observaciones;type:text" json:"observaciones,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (CuotaModel) TableName() string { return "cuotas" }

type EstadisticasCuotas struct {
	TotalRecaudado   float64 `json:"total_recaudado"`
	CuotasPendientes int     `json:"cuotas_pendientes"`
	CuotasPagadas    int     `json:"cuotas_pagadas"`
	HermanosAlDia    int     `json:"hermanos_al_dia"`
	HermanosMorosos  int     `json:"hermanos_morosos"`
}
