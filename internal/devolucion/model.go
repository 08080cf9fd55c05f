// internal/devolucion/model.go
package devolucion

import (
	"time"

	"gorm.io/gorm"
)

// Devolucion representa una devolución registrada contra una factura.
// El valor devuelto llega con IVA incluido, igual que la factura. Solo
// las devoluciones con AfectaComision=true reducen la base de comisión;
// las demás quedan registradas para auditoría.
type Devolucion struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FacturaID       uint      `gorm:"not null;index" json:"facturaId"`
	ValorDevuelto   float64   `gorm:"not null" json:"valorDevuelto"`
	FechaDevolucion time.Time `gorm:"not null" json:"fechaDevolucion"`
	Motivo          string    `gorm:"size:500" json:"motivo"`
	AfectaComision  bool      `gorm:"not null;default:true" json:"afectaComision"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TableName fija el plural correcto en español.
func (Devolucion) TableName() string { return "devoluciones" }

// Migrate crea la tabla en la base de datos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Devolucion{})
}
