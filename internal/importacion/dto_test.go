package importacion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizarFilaCompra(t *testing.T) {
	compra, err := NormalizarFila(FilaDTO{
		Fuente:       "fe",
		NumDocumento: "FE-1001",
		Fecha:        "2025-04-02",
		Total:        250000,
	}, 7, "900111222")
	require.NoError(t, err)

	assert.Equal(t, FuenteCompra, compra.Fuente)
	assert.False(t, compra.EsDevolucion)
	assert.Equal(t, 250000.0, compra.Total)
	assert.Equal(t, uint(7), compra.ClienteID)
	assert.Equal(t, "900111222", compra.NITCliente)
}

func TestNormalizarFilaDevolucionFuerzaTotalNegativo(t *testing.T) {
	// Las devoluciones se guardan con total negativo sin importar el
	// signo con que vengan en la planilla.
	for _, total := range []float64{80000, -80000} {
		compra, err := NormalizarFila(FilaDTO{
			Fuente:       "DV",
			NumDocumento: "DV-20",
			Fecha:        "2025-04-10",
			Total:        total,
		}, 7, "900111222")
		require.NoError(t, err)
		assert.True(t, compra.EsDevolucion)
		assert.Equal(t, -80000.0, compra.Total)
	}
}

func TestNormalizarFilaFuenteDesconocida(t *testing.T) {
	_, err := NormalizarFila(FilaDTO{Fuente: "XX"}, 1, "1")
	assert.Error(t, err)
}

func TestNormalizarFilaFechaInvalida(t *testing.T) {
	_, err := NormalizarFila(FilaDTO{Fuente: "FE", Fecha: "10/04/2025"}, 1, "1")
	assert.Error(t, err)
}
