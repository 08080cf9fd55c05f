// internal/reporte/handler.go
package reporte

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia los endpoints de analítica y dashboard
type Handler struct {
	Repo *Repository
}

// NewHandler crea un nuevo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// ComisionesMensuales trata GET /analytics/comisiones-mensuales:
// comisiones mes a mes por fecha de pago (lo efectivamente cobrado),
// más el total pendiente y las facturas pagadas sin fecha segregadas.
func (h *Handler) ComisionesMensuales(w http.ResponseWriter, r *http.Request) {
	registros, err := h.Repo.CargarRegistros()
	if err != nil {
		http.Error(w, "Error al cargar los registros de comisión", http.StatusInternalServerError)
		return
	}

	meses := Agregar(registros, VistaFechaPago)
	totalPendiente, numPendientes := TotalPendiente(registros)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"comisionesMensuales":       meses,
		"totalComisionesPendientes": totalPendiente,
		"numFacturasPendientes":     numPendientes,
		"facturasSinFechaPago":      AnomaliasPagoSinFecha(registros),
		"fechaCalculo":              time.Now().Format(time.RFC3339),
	})
}

// FacturasPorMes trata GET /analytics/comisiones-mensuales/{mes}/facturas:
// el detalle de facturas que componen las comisiones de un mes de pago.
func (h *Handler) FacturasPorMes(w http.ResponseWriter, r *http.Request) {
	mes := mux.Vars(r)["mes"]
	if _, err := time.Parse("2006-01", mes); err != nil {
		http.Error(w, "Formato de mes inválido; use YYYY-MM", http.StatusBadRequest)
		return
	}

	registros, err := h.Repo.CargarRegistros()
	if err != nil {
		http.Error(w, "Error al cargar los registros de comisión", http.StatusInternalServerError)
		return
	}

	facturas := []Registro{}
	for _, reg := range registros {
		if reg.Pagado && reg.FechaPago != nil && MesDe(*reg.FechaPago) == mes {
			facturas = append(facturas, reg)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"mes":      mes,
		"facturas": facturas,
	})
}

// AnalisisComercial trata GET /analytics/analisis-comercial: lo
// facturado mes a mes (vista por fecha de factura) con crecimiento
// intermensual. Nunca se mezcla con la vista por fecha de pago.
func (h *Handler) AnalisisComercial(w http.ResponseWriter, r *http.Request) {
	registros, err := h.Repo.CargarRegistros()
	if err != nil {
		http.Error(w, "Error al cargar los registros de comisión", http.StatusInternalServerError)
		return
	}

	meses := Agregar(registros, VistaFechaFactura)

	// Crecimiento del último mes con datos frente al anterior; nil si
	// no hay línea base.
	var crecimientoActual *float64
	if len(meses) > 0 {
		crecimientoActual = meses[len(meses)-1].Crecimiento
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ventasMensuales":    meses,
		"crecimientoMensual": crecimientoActual,
	})
}

// FrecuenciaCompras trata GET /analytics/frecuencia-compras: cadencia
// de compra por cliente derivada del flujo importado.
func (h *Handler) FrecuenciaCompras(w http.ResponseWriter, r *http.Request) {
	compras, err := h.Repo.CargarCompras()
	if err != nil {
		http.Error(w, "Error al cargar las compras", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalizarFrecuencia(compras))
}

// Metrics trata GET /dashboard/metrics
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	registros, err := h.Repo.CargarRegistros()
	if err != nil {
		http.Error(w, "Error al cargar los registros de comisión", http.StatusInternalServerError)
		return
	}
	clientesActivos, err := h.Repo.ContarClientesActivos()
	if err != nil {
		http.Error(w, "Error al contar clientes", http.StatusInternalServerError)
		return
	}

	mesActual := MesDe(time.Now())
	var totalVentas, totalComisiones float64
	var pedidosMes int
	for _, reg := range registros {
		totalVentas += reg.Valor
		totalComisiones += reg.Comision
		if MesDe(reg.FechaFactura) == mesActual {
			pedidosMes++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"totalVentas":     totalVentas,
		"comisiones":      totalComisiones,
		"clientesActivos": clientesActivos,
		"pedidosMes":      pedidosMes,
	})
}
