package factura

import "time"

// Plazos de pago en días. La condición especial (acordada por gerencia
// para algunos pedidos) extiende ambos límites a 60.
const (
	diasPagoEstandar    = 35
	diasPagoMaxEstandar = 45
	diasPagoEspecial    = 60
)

// FechasDePago calcula la fecha estimada y la fecha máxima de pago de
// una factura según su condición.
func FechasDePago(fechaFactura time.Time, condicionEspecial bool) (estimada, maxima time.Time) {
	if condicionEspecial {
		estimada = fechaFactura.AddDate(0, 0, diasPagoEspecial)
		return estimada, estimada
	}
	return fechaFactura.AddDate(0, 0, diasPagoEstandar),
		fechaFactura.AddDate(0, 0, diasPagoMaxEstandar)
}

// DiasDePago devuelve los días calendario transcurridos entre la factura
// y su pago. Pagos el mismo día cuentan como 0.
func DiasDePago(fechaFactura, fechaPago time.Time) int {
	return int(fechaPago.Sub(fechaFactura).Hours() / 24)
}
