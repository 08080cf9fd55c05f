package cliente

import "gorm.io/gorm"

// Cliente representa un cliente B2B de la cartera del vendedor.
// Nunca se elimina físicamente: se desactiva con Activo=false y el
// historial de facturas queda para auditoría.
type Cliente struct {
	gorm.Model
	Nombre                  string  `json:"nombre" gorm:"size:255;not null"`
	NIT                     string  `json:"nit" gorm:"size:30;uniqueIndex"`
	Contacto                string  `json:"contacto"`
	Email                   string  `json:"email"`
	Telefono                string  `json:"telefono"`
	Ciudad                  string  `json:"ciudad"`
	Direccion               string  `json:"direccion"`
	CupoTotal               float64 `json:"cupoTotal" gorm:"not null;default:0"`
	PlazoPago               int     `json:"plazoPago" gorm:"not null;default:30"` // días
	DescuentoPredeterminado float64 `json:"descuentoPredeterminado" gorm:"not null;default:0"`
	ClientePropio           bool    `json:"clientePropio" gorm:"not null;default:true"`
	Vendedor                string  `json:"vendedor"`
	Activo                  bool    `json:"activo" gorm:"not null;default:true"`
}

// Migrate crea la tabla en la base de datos
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
