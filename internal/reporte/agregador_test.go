package reporte

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

func fechaPtr(anio int, mes time.Month, dia int) *time.Time {
	f := fecha(anio, mes, dia)
	return &f
}

func registrosDePrueba() []Registro {
	return []Registro{
		// Facturada en enero, pagada en febrero.
		{FacturaID: 1, Pedido: "P-1", Comision: 1000, FechaFactura: fecha(2025, 1, 10), Pagado: true, FechaPago: fechaPtr(2025, 2, 15)},
		// Facturada y pagada en febrero.
		{FacturaID: 2, Pedido: "P-2", Comision: 2000, FechaFactura: fecha(2025, 2, 5), Pagado: true, FechaPago: fechaPtr(2025, 2, 20)},
		// Facturada en febrero, sigue pendiente.
		{FacturaID: 3, Pedido: "P-3", Comision: 500, FechaFactura: fecha(2025, 2, 25), Pagado: false},
		// Anómala: pagada sin fecha de pago.
		{FacturaID: 4, Pedido: "P-4", Comision: 300, FechaFactura: fecha(2025, 2, 27), Pagado: true, FechaPago: nil},
		// Facturada en marzo, pagada en marzo.
		{FacturaID: 5, Pedido: "P-5", Comision: 1500, FechaFactura: fecha(2025, 3, 3), Pagado: true, FechaPago: fechaPtr(2025, 3, 30)},
	}
}

func buscarMes(t *testing.T, meses []ResumenMes, mes string) ResumenMes {
	t.Helper()
	for _, m := range meses {
		if m.Mes == mes {
			return m
		}
	}
	t.Fatalf("mes %s no encontrado", mes)
	return ResumenMes{}
}

func TestAgregarVistaFechaPago(t *testing.T) {
	meses := Agregar(registrosDePrueba(), VistaFechaPago)

	// Solo facturas pagadas con fecha entran en esta vista: ni la
	// pendiente ni la anómala tienen mes de pago.
	require.Len(t, meses, 2)

	feb := buscarMes(t, meses, "2025-02")
	assert.Equal(t, 3000.0, feb.TotalComision)
	assert.Equal(t, 2, feb.NumFacturas)
	assert.Equal(t, 3000.0, feb.ComisionPagada)

	mar := buscarMes(t, meses, "2025-03")
	assert.Equal(t, 1500.0, mar.TotalComision)
	assert.Equal(t, 1, mar.NumFacturas)
}

func TestAgregarVistaFechaFactura(t *testing.T) {
	meses := Agregar(registrosDePrueba(), VistaFechaFactura)
	require.Len(t, meses, 3)

	ene := buscarMes(t, meses, "2025-01")
	assert.Equal(t, 1000.0, ene.TotalComision)

	feb := buscarMes(t, meses, "2025-02")
	assert.Equal(t, 2800.0, feb.TotalComision)
	assert.Equal(t, 3, feb.NumFacturas)
	// El corte usa el estado de cada factura: una pagada, una
	// pendiente, y la anómala segregada sin entrar en ningún corte.
	assert.Equal(t, 2000.0, feb.ComisionPagada)
	assert.Equal(t, 1, feb.FacturasPagadas)
	assert.Equal(t, 500.0, feb.ComisionPendiente)
	assert.Equal(t, 1, feb.FacturasPendientes)
	assert.Equal(t, 1, feb.FacturasEnRevision)
}

func TestAgregarTotalEsSumaDeComisiones(t *testing.T) {
	registros := registrosDePrueba()

	for _, vista := range []Vista{VistaFechaFactura, VistaFechaPago} {
		meses := Agregar(registros, vista)
		for _, m := range meses {
			var esperado float64
			for _, r := range registros {
				switch vista {
				case VistaFechaPago:
					if r.Pagado && r.FechaPago != nil && MesDe(*r.FechaPago) == m.Mes {
						esperado += r.Comision
					}
				default:
					if MesDe(r.FechaFactura) == m.Mes {
						esperado += r.Comision
					}
				}
			}
			assert.InDelta(t, esperado, m.TotalComision, 0.001, "vista %s mes %s", vista, m.Mes)
		}
	}
}

func TestAgregarCrecimiento(t *testing.T) {
	meses := Agregar(registrosDePrueba(), VistaFechaFactura)

	// Enero no tiene mes anterior: crecimiento indefinido, no un
	// porcentaje fabricado.
	ene := buscarMes(t, meses, "2025-01")
	assert.Nil(t, ene.Crecimiento)

	feb := buscarMes(t, meses, "2025-02")
	require.NotNil(t, feb.Crecimiento)
	assert.InDelta(t, (2800.0-1000.0)/1000.0, *feb.Crecimiento, 0.001)
}

func TestAgregarCrecimientoIndefinidoConBaseCero(t *testing.T) {
	registros := []Registro{
		{FacturaID: 1, Comision: 0, FechaFactura: fecha(2025, 1, 1)},
		{FacturaID: 2, Comision: 900, FechaFactura: fecha(2025, 2, 1)},
	}
	meses := Agregar(registros, VistaFechaFactura)

	feb := buscarMes(t, meses, "2025-02")
	assert.Nil(t, feb.Crecimiento)
}

func TestAnomaliasPagoSinFecha(t *testing.T) {
	anomalias := AnomaliasPagoSinFecha(registrosDePrueba())
	require.Len(t, anomalias, 1)
	assert.Equal(t, uint(4), anomalias[0].FacturaID)

	// La anómala nunca aparece en un total pagado con fecha.
	meses := Agregar(registrosDePrueba(), VistaFechaPago)
	var totalPagado float64
	for _, m := range meses {
		totalPagado += m.TotalComision
	}
	assert.Equal(t, 4500.0, totalPagado)
}

func TestTotalPendiente(t *testing.T) {
	total, cantidad := TotalPendiente(registrosDePrueba())
	assert.Equal(t, 500.0, total)
	assert.Equal(t, 1, cantidad)
}
