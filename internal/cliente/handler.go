package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB y repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler crea un nuevo handler de clientes
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// CrearCliente trata POST /clientes
func (h *Handler) CrearCliente(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto ClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Nombre == "" {
		http.Error(w, "El campo 'nombre' es obligatorio", http.StatusBadRequest)
		return
	}

	c := dto.AModelo()
	c.Activo = true
	if err := h.Repository.Guardar(h.DB, c); err != nil {
		http.Error(w, "Error al crear cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarClientes trata GET /clientes. Con ?activos=true excluye los
// clientes desactivados.
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	soloActivos := r.URL.Query().Get("activos") == "true"

	clientes, err := h.Repository.ListarTodos(h.DB, soloActivos)
	if err != nil {
		http.Error(w, "Error al listar clientes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

// BuscarPorID trata GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de cliente inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Cliente no encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al buscar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// ActualizarCliente trata PUT /clientes/{id}
func (h *Handler) ActualizarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de cliente inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto ClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	actualizado, err := h.Repository.Actualizar(h.DB, uint(id), dto.AModelo())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Cliente no encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al actualizar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(actualizado)
}

// DesactivarCliente trata DELETE /clientes/{id} (borrado suave)
func (h *Handler) DesactivarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de cliente inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "Cliente no encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repository.Desactivar(h.DB, uint(id)); err != nil {
		http.Error(w, "Error al desactivar cliente", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
