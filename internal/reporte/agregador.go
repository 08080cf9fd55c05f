// internal/reporte/agregador.go
package reporte

import (
	"sort"
	"time"
)

// Vista define por cuál fecha se agrupan las facturas en los reportes
// mensuales. Las dos vistas se calculan por separado y nunca se mezclan
// en un mismo reporte.
type Vista string

const (
	// VistaFechaFactura agrupa por mes de facturación: lo facturado.
	VistaFechaFactura Vista = "fechaFactura"
	// VistaFechaPago agrupa por mes de pago: lo efectivamente cobrado y
	// comisionable. Solo entran facturas pagadas con fecha.
	VistaFechaPago Vista = "fechaPago"
)

// Registro es la comisión resuelta de una factura, lista para agregar.
// Lo arma el repositorio pasando cada factura por internal/comision.
type Registro struct {
	FacturaID        uint       `json:"facturaId"`
	Pedido           string     `json:"pedido"`
	NumeroFactura    string     `json:"numeroFactura"`
	Cliente          string     `json:"cliente"`
	ClientePropio    bool       `json:"clientePropio"`
	FechaFactura     time.Time  `json:"fechaFactura"`
	Pagado           bool       `json:"pagado"`
	FechaPago        *time.Time `json:"fechaPago"`
	Valor            float64    `json:"valor"`
	ValorNeto        float64    `json:"valorNeto"`
	Comision         float64    `json:"comision"`
	RequiereRevision bool       `json:"requiereRevision"`
}

// ResumenMes es un balde mensual de comisiones. Crecimiento es nil
// cuando el mes anterior no tiene total contra el cual comparar: se
// reporta como indefinido, nunca como un porcentaje fabricado.
type ResumenMes struct {
	Mes                string   `json:"mes"`
	TotalComision      float64  `json:"totalComision"`
	NumFacturas        int      `json:"numFacturas"`
	ComisionPagada     float64  `json:"comisionPagada"`
	FacturasPagadas    int      `json:"facturasPagadas"`
	ComisionPendiente  float64  `json:"comisionPendiente"`
	FacturasPendientes int      `json:"facturasPendientes"`
	FacturasEnRevision int      `json:"facturasEnRevision"`
	Crecimiento        *float64 `json:"crecimiento"`
}

// MesDe devuelve la clave de balde mensual (YYYY-MM) de una fecha.
func MesDe(t time.Time) string {
	return t.Format("2006-01")
}

func mesAnterior(mes string) string {
	t, err := time.Parse("2006-01", mes)
	if err != nil {
		return ""
	}
	return t.AddDate(0, -1, 0).Format("2006-01")
}

// EsAnomalia detecta el caso pagado-sin-fecha: la factura dice pagada
// pero no puede ubicarse en ningún mes de pago.
func EsAnomalia(r Registro) bool {
	return r.Pagado && r.FechaPago == nil
}

// Agregar agrupa los registros en baldes mensuales según la vista.
//
// En la vista por fecha de pago solo entran facturas pagadas con fecha;
// las pendientes no tienen mes de pago y las anómalas (pagadas sin
// fecha) se segregan aparte con AnomaliasPagoSinFecha, nunca dentro de
// un total pagado con fecha.
//
// En la vista por fecha de factura entran todas; el corte pagado/
// pendiente usa el estado de cada factura al momento de agregar, y las
// anómalas se cuentan en FacturasEnRevision sin entrar en ninguno de
// los dos cortes.
func Agregar(registros []Registro, vista Vista) []ResumenMes {
	baldes := map[string]*ResumenMes{}

	for _, r := range registros {
		var clave string
		switch vista {
		case VistaFechaPago:
			if !r.Pagado || r.FechaPago == nil {
				continue
			}
			clave = MesDe(*r.FechaPago)
		default:
			clave = MesDe(r.FechaFactura)
		}

		b, ok := baldes[clave]
		if !ok {
			b = &ResumenMes{Mes: clave}
			baldes[clave] = b
		}

		b.TotalComision += r.Comision
		b.NumFacturas++

		switch {
		case EsAnomalia(r):
			b.FacturasEnRevision++
		case r.Pagado:
			b.ComisionPagada += r.Comision
			b.FacturasPagadas++
		default:
			b.ComisionPendiente += r.Comision
			b.FacturasPendientes++
		}
	}

	meses := make([]string, 0, len(baldes))
	for mes := range baldes {
		meses = append(meses, mes)
	}
	sort.Strings(meses)

	resumen := make([]ResumenMes, 0, len(meses))
	for _, mes := range meses {
		b := baldes[mes]
		if anterior, ok := baldes[mesAnterior(mes)]; ok && anterior.TotalComision != 0 {
			crecimiento := (b.TotalComision - anterior.TotalComision) / anterior.TotalComision
			b.Crecimiento = &crecimiento
		}
		resumen = append(resumen, *b)
	}
	return resumen
}

// AnomaliasPagoSinFecha filtra las facturas pagadas sin fecha de pago.
// Se muestran en una lista propia de "necesita atención" para que el
// operador corrija la fuente; no se ocultan ni se tratan como
// pendientes.
func AnomaliasPagoSinFecha(registros []Registro) []Registro {
	anomalias := []Registro{}
	for _, r := range registros {
		if EsAnomalia(r) {
			anomalias = append(anomalias, r)
		}
	}
	return anomalias
}

// TotalPendiente suma las comisiones de las facturas aún no pagadas.
func TotalPendiente(registros []Registro) (total float64, cantidad int) {
	for _, r := range registros {
		if !r.Pagado {
			total += r.Comision
			cantidad++
		}
	}
	return total, cantidad
}
