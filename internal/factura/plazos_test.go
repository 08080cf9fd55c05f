package factura

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFechasDePagoEstandar(t *testing.T) {
	fecha := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	est, max := FechasDePago(fecha, false)
	assert.Equal(t, time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), est)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), max)
}

func TestFechasDePagoCondicionEspecial(t *testing.T) {
	fecha := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	est, max := FechasDePago(fecha, true)
	assert.Equal(t, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), est)
	assert.Equal(t, est, max)
}

func TestDiasDePago(t *testing.T) {
	factura := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DiasDePago(factura, factura))
	assert.Equal(t, 35, DiasDePago(factura, factura.AddDate(0, 0, 35)))
}
