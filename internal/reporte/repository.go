// internal/reporte/repository.go
package reporte

import (
	"time"

	"github.com/distriandina/api-comisiones/internal/comision"
	"gorm.io/gorm"
)

// Repository arma los registros de comisión que consumen los reportes.
// Cada factura pasa por internal/comision con sus devoluciones: es el
// mismo cálculo del estimador, no una segunda implementación.
type Repository struct {
	DB *gorm.DB
}

// NewRepository crea un nuevo repositorio
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

type filaFactura struct {
	ID                      uint
	Pedido                  string
	NumeroFactura           string
	Cliente                 string
	ClientePropio           bool
	DescuentoPredeterminado float64
	DescuentoAdicional      float64
	Valor                   float64
	ValorFlete              float64
	FechaFactura            time.Time
	Pagado                  bool
	FechaPago               *time.Time
}

type filaDevolucion struct {
	FacturaID      uint
	ValorDevuelto  float64
	AfectaComision bool
}

// CargarRegistros lee todas las facturas con sus devoluciones y resuelve
// la comisión de cada una. Las facturas con datos de origen inválidos
// (por ejemplo flete mayor que el valor, de cargas externas) no se
// descartan: entran con comisión cero y marcadas para revisión.
func (r *Repository) CargarRegistros() ([]Registro, error) {
	var facturas []filaFactura
	err := r.DB.Table("facturas").
		Select(`facturas.id, facturas.pedido, facturas.numero_factura,
			clientes.nombre AS cliente, facturas.cliente_propio,
			facturas.descuento_predeterminado, facturas.descuento_adicional,
			facturas.valor, facturas.valor_flete, facturas.fecha_factura,
			facturas.pagado, facturas.fecha_pago`).
		Joins("LEFT JOIN clientes ON clientes.id = facturas.cliente_id").
		Where("facturas.deleted_at IS NULL").
		Order("facturas.fecha_factura").
		Scan(&facturas).Error
	if err != nil {
		return nil, err
	}

	var devoluciones []filaDevolucion
	if err := r.DB.Table("devoluciones").
		Select("factura_id, valor_devuelto, afecta_comision").
		Scan(&devoluciones).Error; err != nil {
		return nil, err
	}

	porFactura := map[uint][]comision.Devolucion{}
	for _, d := range devoluciones {
		porFactura[d.FacturaID] = append(porFactura[d.FacturaID], comision.Devolucion{
			ValorDevuelto:  d.ValorDevuelto,
			AfectaComision: d.AfectaComision,
		})
	}

	registros := make([]Registro, 0, len(facturas))
	for _, f := range facturas {
		reg := Registro{
			FacturaID:     f.ID,
			Pedido:        f.Pedido,
			NumeroFactura: f.NumeroFactura,
			Cliente:       f.Cliente,
			ClientePropio: f.ClientePropio,
			FechaFactura:  f.FechaFactura,
			Pagado:        f.Pagado,
			FechaPago:     f.FechaPago,
			Valor:         f.Valor,
		}

		res, err := comision.CalcularConDevoluciones(comision.Entrada{
			ValorTotal:              f.Valor,
			ValorFlete:              f.ValorFlete,
			ClientePropio:           f.ClientePropio,
			DescuentoAdicional:      f.DescuentoAdicional,
			DescuentoPredeterminado: f.DescuentoPredeterminado,
		}, porFactura[f.ID])
		if err != nil {
			reg.RequiereRevision = true
		} else {
			reg.ValorNeto = res.ValorNeto
			reg.Comision = res.Comision
			reg.RequiereRevision = res.RequiereRevision
		}

		registros = append(registros, reg)
	}
	return registros, nil
}

// CargarCompras lee el flujo de compras importado para el análisis de
// frecuencia.
func (r *Repository) CargarCompras() ([]CompraCliente, error) {
	type fila struct {
		Cliente      string
		NITCliente   string
		Fecha        time.Time
		Total        float64
		EsDevolucion bool
	}

	var filas []fila
	err := r.DB.Table("compras").
		Select(`clientes.nombre AS cliente, compras.nit_cliente,
			compras.fecha, compras.total, compras.es_devolucion`).
		Joins("LEFT JOIN clientes ON clientes.id = compras.cliente_id").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}

	compras := make([]CompraCliente, 0, len(filas))
	for _, f := range filas {
		compras = append(compras, CompraCliente{
			Cliente:      f.Cliente,
			NIT:          f.NITCliente,
			Fecha:        f.Fecha,
			Total:        f.Total,
			EsDevolucion: f.EsDevolucion,
		})
	}
	return compras, nil
}

// ContarClientesActivos cuenta los clientes no desactivados.
func (r *Repository) ContarClientesActivos() (int64, error) {
	var total int64
	err := r.DB.Table("clientes").
		Where("activo = ? AND deleted_at IS NULL", true).
		Count(&total).Error
	return total, err
}
