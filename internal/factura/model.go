package factura

import (
	"time"

	"github.com/distriandina/api-comisiones/internal/cliente"
	"gorm.io/gorm"
)

// Factura representa una venta facturada y su ciclo de pago. Los campos
// de valoración y comisión son una foto derivada por internal/comision
// que se recalcula en cada edición o devolución registrada, dentro de la
// misma transacción, para que una lectura nunca vea una devolución sin
// su ajuste de base correspondiente.
type Factura struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Pedido        string `gorm:"size:50;not null;index" json:"pedido"`
	NumeroFactura string `gorm:"size:50;not null;index" json:"numeroFactura"`
	Referencia    string `gorm:"size:100" json:"referencia"`

	ClienteID uint            `gorm:"not null;index" json:"clienteId"`
	Cliente   cliente.Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`

	FechaFactura  time.Time `gorm:"not null;index" json:"fechaFactura"`
	Valor         float64   `gorm:"not null" json:"valor"` // total con IVA y flete
	ValorFlete    float64   `gorm:"not null;default:0" json:"valorFlete"`
	CiudadDestino string    `gorm:"size:100" json:"ciudadDestino"`
	RecogidaLocal bool      `gorm:"not null;default:false" json:"recogidaLocal"`

	// Condición especial extiende el plazo de pago a 60 días.
	CondicionEspecial  bool    `gorm:"not null;default:false" json:"condicionEspecial"`
	DescuentoAdicional float64 `gorm:"not null;default:0" json:"descuentoAdicional"`

	// Foto del cliente al momento de la venta: cambiar la ficha del
	// cliente después no reescribe comisiones históricas.
	ClientePropio           bool    `gorm:"not null;default:false" json:"clientePropio"`
	DescuentoPredeterminado float64 `gorm:"not null;default:0" json:"descuentoPredeterminado"`

	// Valoración y comisión derivadas.
	ValorNeto        float64 `gorm:"not null;default:0" json:"valorNeto"`
	IVA              float64 `gorm:"not null;default:0" json:"iva"`
	BaseComision     float64 `gorm:"not null;default:0" json:"baseComision"`
	Porcentaje       float64 `gorm:"not null;default:0" json:"porcentaje"`
	Comision         float64 `gorm:"not null;default:0" json:"comision"`
	RequiereRevision bool    `gorm:"not null;default:false" json:"requiereRevision"`

	// Ciclo de pago.
	FechaPagoEstimada time.Time  `json:"fechaPagoEstimada"`
	FechaPagoMaxima   time.Time  `json:"fechaPagoMaxima"`
	Pagado            bool       `gorm:"not null;default:false;index" json:"pagado"`
	FechaPago         *time.Time `json:"fechaPago"`
	DiasPagoReal      *int       `json:"diasPagoReal"`

	// Comprobante de pago adjunto.
	ComprobanteArchivo []byte `gorm:"type:bytea" json:"-"`
	ComprobanteMime    string `gorm:"size:100" json:"comprobanteMime,omitempty"`
	ComprobanteNombre  string `gorm:"size:255" json:"comprobanteNombre,omitempty"`
}

// Migrate crea la tabla en la base de datos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Factura{})
}
