package reporte

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// La validación del mes responde antes de tocar la base de datos, así
// que un Handler sin conexión alcanza para probarla.

func TestFacturasPorMesFormatoInvalido(t *testing.T) {
	for _, mes := range []string{"2025-3", "marzo", "2025/03", "2025-13"} {
		r := httptest.NewRequest(http.MethodGet, "/analytics/comisiones-mensuales/"+mes+"/facturas", nil)
		r = mux.SetURLVars(r, map[string]string{"mes": mes})
		w := httptest.NewRecorder()

		NewHandler(nil).FacturasPorMes(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code, "mes %q", mes)
		assert.Contains(t, w.Body.String(), "YYYY-MM")
	}
}
