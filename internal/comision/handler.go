// internal/comision/handler.go
package comision

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Handler expone el estimador de comisiones. No toca base de datos: el
// mismo cálculo puro que usa el pipeline de reportes responde el preview.
type Handler struct{}

// NewHandler crea un nuevo Handler
func NewHandler() *Handler {
	return &Handler{}
}

// Preview trata POST /comisiones/preview
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto PreviewDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	devoluciones := make([]Devolucion, 0, len(dto.Devoluciones))
	for _, d := range dto.Devoluciones {
		devoluciones = append(devoluciones, Devolucion{
			ValorDevuelto:  d.ValorDevuelto,
			AfectaComision: d.AfectaComision,
		})
	}

	res, err := CalcularConDevoluciones(Entrada{
		ValorTotal:              dto.ValorTotal,
		ValorFlete:              dto.ValorFlete,
		ClientePropio:           dto.ClientePropio,
		DescuentoAdicional:      dto.DescuentoAdicional,
		DescuentoPredeterminado: dto.DescuentoPredeterminado,
	}, devoluciones)
	if err != nil {
		if errors.Is(err, ErrValorNegativo) || errors.Is(err, ErrFleteNegativo) || errors.Is(err, ErrFleteMayorQueValor) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Error al calcular la comisión", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
