// internal/devolucion/handler.go
package devolucion

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/distriandina/api-comisiones/internal/factura"
	"github.com/distriandina/api-comisiones/internal/notificacion"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia las rutas de devoluciones. Cada escritura recalcula
// la comisión de la factura afectada dentro de la misma transacción.
type Handler struct {
	DB *gorm.DB
}

// NewHandler crea un nuevo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// Crear trata POST /devoluciones
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	// 1) decodifica y valida
	var dto CrearDevolucionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.FacturaID == 0 {
		http.Error(w, "El campo 'facturaId' es obligatorio", http.StatusBadRequest)
		return
	}
	if dto.ValorDevuelto <= 0 {
		http.Error(w, "El valor devuelto debe ser mayor que cero", http.StatusBadRequest)
		return
	}
	fecha, err := parseFecha(dto.FechaDevolucion)
	if err != nil {
		http.Error(w, "Fecha de devolución inválida", http.StatusBadRequest)
		return
	}
	afecta := true
	if dto.AfectaComision != nil {
		afecta = *dto.AfectaComision
	}

	// 2) inicia la transacción
	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "No fue posible iniciar la transacción", http.StatusInternalServerError)
		return
	}

	// 3) la factura debe existir
	facturaRepo := factura.NewRepository(tx)
	f, err := facturaRepo.FindByID(dto.FacturaID)
	if err != nil {
		_ = tx.Rollback()
		http.Error(w, "Factura no encontrada", http.StatusNotFound)
		return
	}

	// 4) crea la devolución
	d := Devolucion{
		FacturaID:       dto.FacturaID,
		ValorDevuelto:   dto.ValorDevuelto,
		FechaDevolucion: fecha,
		Motivo:          dto.Motivo,
		AfectaComision:  afecta,
	}
	if err := NewRepository(tx).Create(&d); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al crear la devolución", http.StatusInternalServerError)
		return
	}

	// 5) recalcula la comisión con la devolución ya visible en la tx
	if err := facturaRepo.RecalcularComision(f); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al recalcular la comisión", http.StatusInternalServerError)
		return
	}

	// 6) confirma
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al confirmar la transacción", http.StatusInternalServerError)
		return
	}

	if f.RequiereRevision {
		go notificacion.EnviarAlertaRevision(f.Pedido, "las devoluciones superan el valor neto de la factura")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// Listar trata GET /devoluciones
// Filtros: ?facturaId, ?cliente, ?mes=YYYY-MM, ?afectaComision=true|false
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var filtros Filtros

	if v := r.URL.Query().Get("facturaId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "facturaId inválido", http.StatusBadRequest)
			return
		}
		fid := uint(id)
		filtros.FacturaID = &fid
	}
	filtros.Cliente = r.URL.Query().Get("cliente")
	filtros.Mes = r.URL.Query().Get("mes")
	if v := r.URL.Query().Get("afectaComision"); v != "" {
		b := v == "true"
		filtros.AfectaComision = &b
	}

	lista, err := NewRepository(h.DB).Listar(filtros)
	if err != nil {
		http.Error(w, "Error al buscar devoluciones", http.StatusInternalServerError)
		return
	}

	var totalDevuelto float64
	for _, d := range lista {
		totalDevuelto += d.ValorDevuelto
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"devoluciones":       lista,
		"totalDevoluciones":  len(lista),
		"totalValorDevuelto": totalDevuelto,
	})
}

// Actualizar trata PUT /devoluciones/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de devolución inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto ActualizarDevolucionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	d, err := NewRepository(h.DB).FindByID(uint(id))
	if err != nil {
		http.Error(w, "Devolución no encontrada", http.StatusNotFound)
		return
	}

	if dto.ValorDevuelto != nil {
		if *dto.ValorDevuelto <= 0 {
			http.Error(w, "El valor devuelto debe ser mayor que cero", http.StatusBadRequest)
			return
		}
		d.ValorDevuelto = *dto.ValorDevuelto
	}
	if dto.FechaDevolucion != nil {
		fecha, err := parseFecha(*dto.FechaDevolucion)
		if err != nil {
			http.Error(w, "Fecha de devolución inválida", http.StatusBadRequest)
			return
		}
		d.FechaDevolucion = fecha
	}
	if dto.Motivo != nil {
		d.Motivo = *dto.Motivo
	}
	if dto.AfectaComision != nil {
		d.AfectaComision = *dto.AfectaComision
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "No fue posible iniciar la transacción", http.StatusInternalServerError)
		return
	}

	if err := NewRepository(tx).Update(d); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al actualizar la devolución", http.StatusInternalServerError)
		return
	}

	facturaRepo := factura.NewRepository(tx)
	f, err := facturaRepo.FindByID(d.FacturaID)
	if err != nil {
		_ = tx.Rollback()
		http.Error(w, "Factura no encontrada", http.StatusNotFound)
		return
	}
	if err := facturaRepo.RecalcularComision(f); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al recalcular la comisión", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al confirmar la transacción", http.StatusInternalServerError)
		return
	}

	if f.RequiereRevision {
		go notificacion.EnviarAlertaRevision(f.Pedido, "las devoluciones superan el valor neto de la factura")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// Eliminar trata DELETE /devoluciones/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de devolución inválido", http.StatusBadRequest)
		return
	}

	d, err := NewRepository(h.DB).FindByID(uint(id))
	if err != nil {
		http.Error(w, "Devolución no encontrada", http.StatusNotFound)
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "No fue posible iniciar la transacción", http.StatusInternalServerError)
		return
	}

	if err := NewRepository(tx).Delete(d); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al eliminar la devolución", http.StatusInternalServerError)
		return
	}

	facturaRepo := factura.NewRepository(tx)
	f, err := facturaRepo.FindByID(d.FacturaID)
	if err != nil {
		_ = tx.Rollback()
		http.Error(w, "Factura no encontrada", http.StatusNotFound)
		return
	}
	if err := facturaRepo.RecalcularComision(f); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al recalcular la comisión", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al confirmar la transacción", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FacturasDisponibles trata GET /devoluciones/facturas-disponibles:
// proyección liviana de facturas para el selector de nueva devolución.
func (h *Handler) FacturasDisponibles(w http.ResponseWriter, r *http.Request) {
	type fila struct {
		ID            uint      `json:"id"`
		Pedido        string    `json:"pedido"`
		NumeroFactura string    `json:"numeroFactura"`
		Cliente       string    `json:"cliente"`
		FechaFactura  time.Time `json:"fechaFactura"`
		Valor         float64   `json:"valor"`
		ValorNeto     float64   `json:"valorNeto"`
	}

	var filas []fila
	err := h.DB.Table("facturas").
		Select(`facturas.id, facturas.pedido, facturas.numero_factura,
			clientes.nombre AS cliente, facturas.fecha_factura,
			facturas.valor, facturas.valor_neto`).
		Joins("JOIN clientes ON clientes.id = facturas.cliente_id").
		Where("facturas.deleted_at IS NULL").
		Order("facturas.fecha_factura DESC").
		Scan(&filas).Error
	if err != nil {
		http.Error(w, "Error al buscar facturas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(filas)
}
