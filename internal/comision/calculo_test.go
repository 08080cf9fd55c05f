package comision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValorarFactura(t *testing.T) {
	val, err := ValorarFactura(1190000, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1000000, val.ValorNeto, 0.01)
	assert.InDelta(t, 190000, val.IVA, 0.01)
}

func TestValorarFacturaDescuentaFlete(t *testing.T) {
	val, err := ValorarFactura(1190000, 119000)
	require.NoError(t, err)
	assert.InDelta(t, 900000, val.ValorNeto, 0.01)
	assert.InDelta(t, 171000, val.IVA, 0.01)
}

func TestValorarFacturaIdaYVuelta(t *testing.T) {
	// neto*1.19 debe reconstruir el valor de productos para cualquier
	// par válido (flete <= total).
	casos := []struct{ total, flete float64 }{
		{0, 0},
		{1190000, 0},
		{595000, 50000},
		{123456.78, 123.45},
		{999999999, 1},
		{50000, 50000},
	}
	for _, c := range casos {
		val, err := ValorarFactura(c.total, c.flete)
		require.NoError(t, err)
		assert.InDelta(t, c.total-c.flete, val.ValorNeto*FactorIVA, 0.001)
		assert.InDelta(t, c.total-c.flete, val.ValorNeto+val.IVA, 0.001)
	}
}

func TestValorarFacturaValidaciones(t *testing.T) {
	_, err := ValorarFactura(-1, 0)
	assert.ErrorIs(t, err, ErrValorNegativo)

	_, err = ValorarFactura(100, -1)
	assert.ErrorIs(t, err, ErrFleteNegativo)

	_, err = ValorarFactura(100, 101)
	assert.ErrorIs(t, err, ErrFleteMayorQueValor)
}

func TestResolverPorcentajeMatrizCompleta(t *testing.T) {
	// La matriz es exhaustiva y exclusiva: cada combinación produce
	// exactamente uno de los cuatro porcentajes válidos.
	casos := []struct {
		propio    bool
		adicional bool
		esperado  float64
	}{
		{true, false, 2.5},
		{true, true, 1.5},
		{false, false, 1.0},
		{false, true, 0.5},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, ResolverPorcentaje(c.propio, c.adicional))
	}
}

func TestCalcularClientePropioSinDescuentos(t *testing.T) {
	// Cliente propio, sin descuentos: base reducida al 85%, tasa 2.5%.
	res, err := Calcular(Entrada{ValorTotal: 1190000, ClientePropio: true})
	require.NoError(t, err)
	assert.InDelta(t, 1000000, res.ValorNeto, 0.01)
	assert.InDelta(t, 850000, res.BaseComision, 0.01)
	assert.Equal(t, 2.5, res.Porcentaje)
	assert.InDelta(t, 21250, res.Comision, 0.01)
	assert.False(t, res.TieneDescuentoAdicional)
	assert.False(t, res.TieneDescuentoPredeterminado)
}

func TestCalcularClientePropioConDescuentoAdicional(t *testing.T) {
	// El descuento adicional baja la tasa a 1.5% pero no cambia la base.
	res, err := Calcular(Entrada{
		ValorTotal:         1190000,
		ClientePropio:      true,
		DescuentoAdicional: 5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 850000, res.BaseComision, 0.01)
	assert.Equal(t, 1.5, res.Porcentaje)
	assert.InDelta(t, 12750, res.Comision, 0.01)
}

func TestCalcularClienteExternoConDescuentoPredeterminado(t *testing.T) {
	// Con descuento predeterminado la base es el neto completo (sin
	// reducción del 85%) y la tasa de externo sin adicional es 1.0%.
	res, err := Calcular(Entrada{
		ValorTotal:              595000,
		ClientePropio:           false,
		DescuentoPredeterminado: 10,
	})
	require.NoError(t, err)
	assert.InDelta(t, 500000, res.ValorNeto, 0.01)
	assert.InDelta(t, 500000, res.BaseComision, 0.01)
	assert.Equal(t, 1.0, res.Porcentaje)
	assert.InDelta(t, 5000, res.Comision, 0.01)
}

func TestCalcularPropagaErroresDeValoracion(t *testing.T) {
	_, err := Calcular(Entrada{ValorTotal: 100, ValorFlete: 200})
	assert.ErrorIs(t, err, ErrFleteMayorQueValor)
}

func TestAjustarBaseDevolucionQueAfecta(t *testing.T) {
	// Factura de $1.000.000 neto, cliente propio sin descuentos:
	// base 850.000. Una devolución de $238.000 (200.000 neto) reduce la
	// base a 650.000 y la comisión queda en 16.250.
	res, err := CalcularConDevoluciones(
		Entrada{ValorTotal: 1190000, ClientePropio: true},
		[]Devolucion{{ValorDevuelto: 238000, AfectaComision: true}},
	)
	require.NoError(t, err)
	assert.InDelta(t, 650000, res.BaseComision, 0.01)
	assert.Equal(t, 2.5, res.Porcentaje)
	assert.InDelta(t, 16250, res.Comision, 0.01)
	assert.False(t, res.RequiereRevision)
}

func TestAjustarBaseDevolucionQueNoAfecta(t *testing.T) {
	sin, err := Calcular(Entrada{ValorTotal: 1190000, ClientePropio: true})
	require.NoError(t, err)

	con, err := CalcularConDevoluciones(
		Entrada{ValorTotal: 1190000, ClientePropio: true},
		[]Devolucion{{ValorDevuelto: 238000, AfectaComision: false}},
	)
	require.NoError(t, err)

	// Registrada solo para auditoría: ninguna cifra cambia.
	assert.Equal(t, sin.BaseComision, con.BaseComision)
	assert.Equal(t, sin.Comision, con.Comision)
}

func TestAjustarBaseDevolucionesSuperanElNeto(t *testing.T) {
	res, err := CalcularConDevoluciones(
		Entrada{ValorTotal: 1190000, ClientePropio: true},
		[]Devolucion{
			{ValorDevuelto: 1190000, AfectaComision: true},
			{ValorDevuelto: 119000, AfectaComision: true},
		},
	)
	require.NoError(t, err)

	// La base se fija en cero, nunca negativa, y se marca para revisión.
	assert.Equal(t, 0.0, res.BaseComision)
	assert.Equal(t, 0.0, res.Comision)
	assert.True(t, res.RequiereRevision)
}

func TestAjustarBaseDevolucionReduceEstrictamente(t *testing.T) {
	sin, err := Calcular(Entrada{ValorTotal: 1190000, ClientePropio: true})
	require.NoError(t, err)

	con, err := CalcularConDevoluciones(
		Entrada{ValorTotal: 1190000, ClientePropio: true},
		[]Devolucion{{ValorDevuelto: 1000, AfectaComision: true}},
	)
	require.NoError(t, err)

	assert.Less(t, con.Comision, sin.Comision)
}
