// internal/factura/dto.go
package factura

// NuevaVentaDTO es el cuerpo de POST /ventas.
type NuevaVentaDTO struct {
	Pedido             string  `json:"pedido"`
	ClienteID          uint    `json:"clienteId"`
	NumeroFactura      string  `json:"numeroFactura"`
	FechaFactura       string  `json:"fechaFactura"`
	ValorTotal         float64 `json:"valorTotal"`
	ValorFlete         float64 `json:"valorFlete"`
	DescuentoAdicional float64 `json:"descuentoAdicional"`
	CondicionEspecial  bool    `json:"condicionEspecial"`
	CiudadDestino      string  `json:"ciudadDestino"`
	RecogidaLocal      bool    `json:"recogidaLocal"`
	Referencia         string  `json:"referencia"`
}

// ActualizarFacturaDTO es el cuerpo de PUT /comisiones/facturas/{id}.
// Solo los campos crudos son editables; la valoración y la comisión se
// recalculan siempre a partir de ellos. Los punteros distinguen campo
// ausente de valor cero: un campo omitido conserva el valor actual.
type ActualizarFacturaDTO struct {
	Pedido             *string  `json:"pedido"`
	NumeroFactura      *string  `json:"numeroFactura"`
	FechaFactura       *string  `json:"fechaFactura"`
	ValorTotal         *float64 `json:"valorTotal"`
	ValorFlete         *float64 `json:"valorFlete"`
	DescuentoAdicional *float64 `json:"descuentoAdicional"`
	CondicionEspecial  *bool    `json:"condicionEspecial"`
	CiudadDestino      *string  `json:"ciudadDestino"`
	RecogidaLocal      *bool    `json:"recogidaLocal"`
	Referencia         *string  `json:"referencia"`
}

// AplicarA copia sobre la factura solo los campos presentes en el
// cuerpo y recalcula las fechas de pago con la fecha y condición
// resultantes.
func (d ActualizarFacturaDTO) AplicarA(f *Factura) error {
	if d.FechaFactura != nil {
		fecha, err := parseFecha(*d.FechaFactura)
		if err != nil {
			return err
		}
		f.FechaFactura = fecha
	}
	if d.Pedido != nil {
		f.Pedido = *d.Pedido
	}
	if d.NumeroFactura != nil {
		f.NumeroFactura = *d.NumeroFactura
	}
	if d.Referencia != nil {
		f.Referencia = *d.Referencia
	}
	if d.ValorTotal != nil {
		f.Valor = *d.ValorTotal
	}
	if d.ValorFlete != nil {
		f.ValorFlete = *d.ValorFlete
	}
	if d.DescuentoAdicional != nil {
		f.DescuentoAdicional = *d.DescuentoAdicional
	}
	if d.CondicionEspecial != nil {
		f.CondicionEspecial = *d.CondicionEspecial
	}
	if d.CiudadDestino != nil {
		f.CiudadDestino = *d.CiudadDestino
	}
	if d.RecogidaLocal != nil {
		f.RecogidaLocal = *d.RecogidaLocal
	}
	f.FechaPagoEstimada, f.FechaPagoMaxima = FechasDePago(f.FechaFactura, f.CondicionEspecial)
	return nil
}

// MarcarPagadaDTO es el cuerpo de PATCH /comisiones/facturas/{id}/marcar-pagado.
type MarcarPagadaDTO struct {
	FechaPago string `json:"fechaPago"`
	DiasPago  *int   `json:"diasPago"`
}
