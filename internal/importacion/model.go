// internal/importacion/model.go
package importacion

import (
	"time"

	"gorm.io/gorm"
)

// Fuentes del archivo de movimientos del cliente: FE marca compras
// facturadas, DV marca devoluciones.
const (
	FuenteCompra     = "FE"
	FuenteDevolucion = "DV"
)

// Compra es una fila del flujo de compras de un cliente, cargada en
// bloque desde el sistema externo de planillas. Las devoluciones se
// almacenan con total negativo.
type Compra struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ClienteID     uint      `gorm:"not null;index" json:"clienteId"`
	NITCliente    string    `gorm:"column:nit_cliente;size:30;not null;index" json:"nitCliente"`
	Fuente        string    `gorm:"size:10;not null" json:"fuente"`
	NumDocumento  string    `gorm:"size:50;not null" json:"numDocumento"`
	Fecha         time.Time `gorm:"not null" json:"fecha"`
	CodArticulo   string    `gorm:"size:50" json:"codArticulo"`
	Detalle       string    `gorm:"size:255" json:"detalle"`
	Cantidad      int       `gorm:"not null;default:0" json:"cantidad"`
	ValorUnitario float64   `gorm:"not null;default:0" json:"valorUnitario"`
	Descuento     float64   `gorm:"not null;default:0" json:"descuento"`
	Total         float64   `gorm:"not null;default:0" json:"total"`
	Familia       string    `gorm:"size:100" json:"familia"`
	Marca         string    `gorm:"size:100" json:"marca"`
	Subgrupo      string    `gorm:"size:100" json:"subgrupo"`
	Grupo         string    `gorm:"size:100" json:"grupo"`
	EsDevolucion  bool      `gorm:"not null;default:false;index" json:"esDevolucion"`
	FechaCarga    time.Time `gorm:"not null" json:"fechaCarga"`
}

// Migrate crea la tabla en la base de datos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Compra{})
}
