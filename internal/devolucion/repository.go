// internal/devolucion/repository.go
package devolucion

import (
	"gorm.io/gorm"
)

// Repository encapsula operaciones de banco para Devolucion
type Repository struct {
	DB *gorm.DB
}

// NewRepository crea un nuevo repositorio
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create inserta una nueva devolución
func (r *Repository) Create(d *Devolucion) error {
	return r.DB.Create(d).Error
}

// FindByID retorna una devolución por su ID
func (r *Repository) FindByID(id uint) (*Devolucion, error) {
	var d Devolucion
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// Filtros de listado; los punteros distinguen "sin filtro" de un valor.
type Filtros struct {
	FacturaID      *uint
	Cliente        string
	Mes            string // YYYY-MM sobre la fecha de devolución
	AfectaComision *bool
}

// ConFactura es una fila de devolución con los datos de su factura para
// las vistas de auditoría.
type ConFactura struct {
	Devolucion
	FacturaPedido  string  `json:"facturaPedido"`
	FacturaNumero  string  `json:"facturaNumero"`
	FacturaValor   float64 `json:"facturaValor"`
	FacturaCliente string  `json:"facturaCliente"`
}

// Listar retorna devoluciones con la información de factura y cliente
// relacionadas, aplicando los filtros recibidos.
func (r *Repository) Listar(f Filtros) ([]ConFactura, error) {
	q := r.DB.Table("devoluciones").
		Select(`devoluciones.*,
			facturas.pedido AS factura_pedido,
			facturas.numero_factura AS factura_numero,
			facturas.valor AS factura_valor,
			clientes.nombre AS factura_cliente`).
		Joins("JOIN facturas ON facturas.id = devoluciones.factura_id").
		Joins("JOIN clientes ON clientes.id = facturas.cliente_id").
		Order("devoluciones.fecha_devolucion DESC")

	if f.FacturaID != nil {
		q = q.Where("devoluciones.factura_id = ?", *f.FacturaID)
	}
	if f.Cliente != "" {
		q = q.Where("clientes.nombre ILIKE ?", "%"+f.Cliente+"%")
	}
	if f.Mes != "" {
		q = q.Where("to_char(devoluciones.fecha_devolucion, 'YYYY-MM') = ?", f.Mes)
	}
	if f.AfectaComision != nil {
		q = q.Where("devoluciones.afecta_comision = ?", *f.AfectaComision)
	}

	var lista []ConFactura
	err := q.Scan(&lista).Error
	return lista, err
}

// Update guarda los cambios de una devolución existente
func (r *Repository) Update(d *Devolucion) error {
	return r.DB.Save(d).Error
}

// Delete elimina una devolución
func (r *Repository) Delete(d *Devolucion) error {
	return r.DB.Delete(d).Error
}
