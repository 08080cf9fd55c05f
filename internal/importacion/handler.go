// internal/importacion/handler.go
package importacion

import (
	"encoding/json"
	"net/http"

	"github.com/distriandina/api-comisiones/internal/cliente"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Handler gerencia la carga en bloque del flujo de compras
type Handler struct {
	DB          *gorm.DB
	ClienteRepo cliente.Repository
}

// NewHandler crea un nuevo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		ClienteRepo: cliente.NewRepository(),
	}
}

// ImportarCompras trata POST /importaciones/compras. Recibe las filas
// ya extraídas de la planilla, las normaliza (FE=compra, DV=devolución)
// y hace upsert por llave natural. Las filas inválidas se saltan y se
// cuentan, sin abortar la carga completa.
func (h *Handler) ImportarCompras(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto ImportarComprasDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.NITCliente == "" {
		http.Error(w, "El campo 'nitCliente' es obligatorio", http.StatusBadRequest)
		return
	}

	cli, err := h.ClienteRepo.BuscarPorNIT(h.DB, dto.NITCliente)
	if err != nil {
		http.Error(w, "Cliente no encontrado; regístralo primero", http.StatusNotFound)
		return
	}

	repo := NewRepository(h.DB)
	var comprasNuevas, comprasActualizadas, devolucionesNuevas, devolucionesActualizadas, filasConError int

	for i, fila := range dto.Filas {
		compra, err := NormalizarFila(fila, cli.ID, dto.NITCliente)
		if err != nil {
			filasConError++
			log.Warn().Err(err).Int("fila", i).Str("nit", dto.NITCliente).Msg("fila de importación descartada")
			continue
		}

		nueva, err := repo.Upsert(&compra)
		if err != nil {
			filasConError++
			log.Error().Err(err).Int("fila", i).Str("nit", dto.NITCliente).Msg("error al guardar fila de importación")
			continue
		}

		switch {
		case compra.EsDevolucion && nueva:
			devolucionesNuevas++
		case compra.EsDevolucion:
			devolucionesActualizadas++
		case nueva:
			comprasNuevas++
		default:
			comprasActualizadas++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"cliente":                  cli.Nombre,
		"totalFilas":               len(dto.Filas),
		"comprasNuevas":            comprasNuevas,
		"comprasActualizadas":      comprasActualizadas,
		"devolucionesNuevas":       devolucionesNuevas,
		"devolucionesActualizadas": devolucionesActualizadas,
		"filasConError":            filasConError,
	})
}

// ListarCompras trata GET /importaciones/compras/{nit}
// Con ?incluirDevoluciones=true trae también las filas DV.
func (h *Handler) ListarCompras(w http.ResponseWriter, r *http.Request) {
	nit := mux.Vars(r)["nit"]
	incluirDevoluciones := r.URL.Query().Get("incluirDevoluciones") == "true"

	compras, err := NewRepository(h.DB).ListarPorNIT(nit, incluirDevoluciones)
	if err != nil {
		http.Error(w, "Error al buscar compras", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(compras)
}
