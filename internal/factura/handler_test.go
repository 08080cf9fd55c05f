package factura

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// Las validaciones de frontera responden antes de tocar la base de
// datos, así que un Handler sin conexión alcanza para probarlas.

func TestMarcarPagadaSinFechaRechaza(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/comisiones/facturas/1/marcar-pagado", strings.NewReader(`{}`))
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	NewHandler(nil).MarcarPagada(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "La fecha de pago es obligatoria")
}

func TestMarcarPagadaFechaInvalida(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/comisiones/facturas/1/marcar-pagado", strings.NewReader(`{"fechaPago":"15/02/2025"}`))
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	NewHandler(nil).MarcarPagada(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Fecha de pago inválida")
}

func TestMarcarPagadaIDInvalido(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/comisiones/facturas/abc/marcar-pagado", strings.NewReader(`{"fechaPago":"2025-02-15"}`))
	r = mux.SetURLVars(r, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()

	NewHandler(nil).MarcarPagada(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubirComprobanteSinMultipart(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/comisiones/facturas/1/comprobante", strings.NewReader("no es multipart"))
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	NewHandler(nil).SubirComprobante(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrearVentaSinPedido(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/ventas", strings.NewReader(`{"clienteId":1,"fechaFactura":"2025-02-01","valorTotal":1190000}`))
	w := httptest.NewRecorder()

	NewHandler(nil).CrearVenta(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pedido")
}
