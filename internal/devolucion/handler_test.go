package devolucion

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Las validaciones de frontera responden antes de abrir la transacción,
// así que un Handler sin conexión alcanza para probarlas.

func TestCrearSinFactura(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/devoluciones", strings.NewReader(`{"valorDevuelto":100000,"fechaDevolucion":"2025-03-01"}`))
	w := httptest.NewRecorder()

	NewHandler(nil).Crear(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "facturaId")
}

func TestCrearValorNoPositivo(t *testing.T) {
	for _, cuerpo := range []string{
		`{"facturaId":1,"valorDevuelto":0,"fechaDevolucion":"2025-03-01"}`,
		`{"facturaId":1,"valorDevuelto":-50000,"fechaDevolucion":"2025-03-01"}`,
	} {
		r := httptest.NewRequest(http.MethodPost, "/devoluciones", strings.NewReader(cuerpo))
		w := httptest.NewRecorder()

		NewHandler(nil).Crear(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "mayor que cero")
	}
}

func TestCrearFechaInvalida(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/devoluciones", strings.NewReader(`{"facturaId":1,"valorDevuelto":100000,"fechaDevolucion":"01-03-2025"}`))
	w := httptest.NewRecorder()

	NewHandler(nil).Crear(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Fecha de devolución inválida")
}
