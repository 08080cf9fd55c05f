// internal/factura/repository.go
package factura

import (
	"time"

	"github.com/distriandina/api-comisiones/internal/comision"
	"gorm.io/gorm"
)

// Repository encapsula operaciones de banco para Factura
type Repository struct {
	DB *gorm.DB
}

// NewRepository crea un nuevo repositorio. Puede recibir una transacción
// abierta para participar en escrituras atómicas.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create inserta una nueva factura
func (r *Repository) Create(f *Factura) error {
	return r.DB.Create(f).Error
}

// FindByID retorna una factura por su ID
func (r *Repository) FindByID(id uint) (*Factura, error) {
	var f Factura
	if err := r.DB.Preload("Cliente").First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// Listar retorna facturas con filtros opcionales: mes (YYYY-MM sobre la
// fecha de factura), nombre de cliente (búsqueda parcial) y solo
// clientes propios.
func (r *Repository) Listar(mes, nombreCliente string, soloPropios bool) ([]Factura, error) {
	q := r.DB.Preload("Cliente").Order("fecha_factura DESC")

	if mes != "" {
		q = q.Where("to_char(fecha_factura, 'YYYY-MM') = ?", mes)
	}
	if nombreCliente != "" {
		q = q.Joins("JOIN clientes ON clientes.id = facturas.cliente_id").
			Where("clientes.nombre ILIKE ?", "%"+nombreCliente+"%")
	}
	if soloPropios {
		q = q.Where("facturas.cliente_propio = ?", true)
	}

	var facturas []Factura
	err := q.Find(&facturas).Error
	return facturas, err
}

// Update guarda los cambios de una factura existente
func (r *Repository) Update(f *Factura) error {
	return r.DB.Save(f).Error
}

// PagadasSinFecha retorna las facturas anómalas: marcadas como pagadas
// pero sin fecha de pago. Vienen de cargas de datos externas y deben
// corregirse a mano; nunca se tratan como pendientes ni entran en los
// totales pagados por mes.
func (r *Repository) PagadasSinFecha() ([]Factura, error) {
	var facturas []Factura
	err := r.DB.Preload("Cliente").
		Where("pagado = ? AND fecha_pago IS NULL", true).
		Find(&facturas).Error
	return facturas, err
}

// filaDevolucion es la proyección mínima de la tabla devoluciones que el
// recálculo necesita. Se consulta por nombre de tabla para no acoplar
// este paquete al de devoluciones.
type filaDevolucion struct {
	ValorDevuelto  float64
	AfectaComision bool
}

// DevolucionesParaCalculo carga las devoluciones de una factura en la
// forma que espera el motor de comisiones.
func (r *Repository) DevolucionesParaCalculo(facturaID uint) ([]comision.Devolucion, error) {
	var filas []filaDevolucion
	err := r.DB.Table("devoluciones").
		Select("valor_devuelto, afecta_comision").
		Where("factura_id = ?", facturaID).
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}

	devs := make([]comision.Devolucion, 0, len(filas))
	for _, f := range filas {
		devs = append(devs, comision.Devolucion{
			ValorDevuelto:  f.ValorDevuelto,
			AfectaComision: f.AfectaComision,
		})
	}
	return devs, nil
}

// RecalcularComision recalcula la foto de valoración y comisión de una
// factura a partir de sus campos crudos y devoluciones vigentes, y la
// persiste. Debe llamarse dentro de la transacción que modificó la
// factura o sus devoluciones.
func (r *Repository) RecalcularComision(f *Factura) error {
	devs, err := r.DevolucionesParaCalculo(f.ID)
	if err != nil {
		return err
	}

	res, err := comision.CalcularConDevoluciones(comision.Entrada{
		ValorTotal:              f.Valor,
		ValorFlete:              f.ValorFlete,
		ClientePropio:           f.ClientePropio,
		DescuentoAdicional:      f.DescuentoAdicional,
		DescuentoPredeterminado: f.DescuentoPredeterminado,
	}, devs)
	if err != nil {
		return err
	}

	f.ValorNeto = res.ValorNeto
	f.IVA = res.IVA
	f.BaseComision = res.BaseComision
	f.Porcentaje = res.Porcentaje
	f.Comision = res.Comision
	f.RequiereRevision = res.RequiereRevision

	return r.DB.Model(f).Updates(map[string]interface{}{
		"valor_neto":        res.ValorNeto,
		"iva":               res.IVA,
		"base_comision":     res.BaseComision,
		"porcentaje":        res.Porcentaje,
		"comision":          res.Comision,
		"requiere_revision": res.RequiereRevision,
	}).Error
}

// MarcarPagada registra el pago de una factura. La fecha es obligatoria:
// la validación de frontera vive en el handler, aquí solo se persiste el
// estado completo en una sola actualización.
func (r *Repository) MarcarPagada(f *Factura, fechaPago time.Time, diasPago int) error {
	f.Pagado = true
	f.FechaPago = &fechaPago
	f.DiasPagoReal = &diasPago

	return r.DB.Model(f).Updates(map[string]interface{}{
		"pagado":         true,
		"fecha_pago":     fechaPago,
		"dias_pago_real": diasPago,
	}).Error
}

// GuardarComprobante adjunta el comprobante de pago a la factura.
func (r *Repository) GuardarComprobante(f *Factura, archivo []byte, mime, nombre string) error {
	return r.DB.Model(f).Updates(map[string]interface{}{
		"comprobante_archivo": archivo,
		"comprobante_mime":    mime,
		"comprobante_nombre":  nombre,
	}).Error
}
