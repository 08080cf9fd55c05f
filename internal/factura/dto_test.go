package factura

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func facturaDePrueba() Factura {
	fecha := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	est, max := FechasDePago(fecha, false)
	return Factura{
		Pedido:             "P-100",
		NumeroFactura:      "FAC-P-100",
		Referencia:         "OC-55",
		FechaFactura:       fecha,
		Valor:              1190000,
		ValorFlete:         50000,
		DescuentoAdicional: 0,
		CiudadDestino:      "Cali",
		FechaPagoEstimada:  est,
		FechaPagoMaxima:    max,
	}
}

func TestAplicarAConservaCamposOmitidos(t *testing.T) {
	// Una edición parcial que solo cambia el descuento adicional no
	// puede poner en cero el valor ni el flete de la factura.
	f := facturaDePrueba()
	dto := ActualizarFacturaDTO{DescuentoAdicional: ptr(5.0)}

	require.NoError(t, dto.AplicarA(&f))

	assert.Equal(t, 1190000.0, f.Valor)
	assert.Equal(t, 50000.0, f.ValorFlete)
	assert.Equal(t, "P-100", f.Pedido)
	assert.Equal(t, "OC-55", f.Referencia)
	assert.Equal(t, "Cali", f.CiudadDestino)
	assert.Equal(t, 5.0, f.DescuentoAdicional)
}

func TestAplicarARecalculaFechasDePago(t *testing.T) {
	// Cambiar solo la condición especial debe refrescar las fechas de
	// pago aunque la fecha de factura no venga en el cuerpo.
	f := facturaDePrueba()
	dto := ActualizarFacturaDTO{CondicionEspecial: ptr(true)}

	require.NoError(t, dto.AplicarA(&f))

	esperada := f.FechaFactura.AddDate(0, 0, 60)
	assert.Equal(t, esperada, f.FechaPagoEstimada)
	assert.Equal(t, esperada, f.FechaPagoMaxima)
}

func TestAplicarAFechaInvalida(t *testing.T) {
	f := facturaDePrueba()
	dto := ActualizarFacturaDTO{FechaFactura: ptr("01/03/2025")}

	assert.Error(t, dto.AplicarA(&f))
}
