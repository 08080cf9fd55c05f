// internal/factura/handler.go
package factura

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/distriandina/api-comisiones/internal/cliente"
	"github.com/distriandina/api-comisiones/internal/comision"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia las rutas de facturas y su ciclo de pago
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

// parseFecha acepta fechas en RFC3339 o YYYY-MM-DD.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// CrearVenta trata POST /ventas
func (h *Handler) CrearVenta(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	// 1) decodifica el DTO
	var dto NuevaVentaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	// 2) validaciones de frontera
	if dto.Pedido == "" {
		http.Error(w, "El campo 'pedido' es obligatorio", http.StatusBadRequest)
		return
	}
	if dto.ClienteID == 0 {
		http.Error(w, "El campo 'clienteId' es obligatorio", http.StatusBadRequest)
		return
	}
	fechaFactura, err := parseFecha(dto.FechaFactura)
	if err != nil {
		http.Error(w, "Fecha de factura inválida", http.StatusBadRequest)
		return
	}

	// 3) busca el cliente para copiar su clasificación
	cli, err := h.ClienteRepo.BuscarPorID(h.DB, dto.ClienteID)
	if err != nil {
		http.Error(w, "Cliente no encontrado", http.StatusNotFound)
		return
	}

	// 4) número de factura por defecto a partir del pedido
	numero := dto.NumeroFactura
	if numero == "" {
		numero = fmt.Sprintf("FAC-%s", dto.Pedido)
	}

	// 5) fechas de pago según la condición
	fechaEst, fechaMax := FechasDePago(fechaFactura, dto.CondicionEspecial)

	f := Factura{
		Pedido:                  dto.Pedido,
		NumeroFactura:           numero,
		Referencia:              dto.Referencia,
		ClienteID:               cli.ID,
		FechaFactura:            fechaFactura,
		Valor:                   dto.ValorTotal,
		ValorFlete:              dto.ValorFlete,
		CiudadDestino:           dto.CiudadDestino,
		RecogidaLocal:           dto.RecogidaLocal,
		CondicionEspecial:       dto.CondicionEspecial,
		DescuentoAdicional:      dto.DescuentoAdicional,
		ClientePropio:           cli.ClientePropio,
		DescuentoPredeterminado: cli.DescuentoPredeterminado,
		FechaPagoEstimada:       fechaEst,
		FechaPagoMaxima:         fechaMax,
	}

	// 6) valida y calcula la comisión antes de abrir la transacción
	res, err := comision.Calcular(comision.Entrada{
		ValorTotal:              f.Valor,
		ValorFlete:              f.ValorFlete,
		ClientePropio:           f.ClientePropio,
		DescuentoAdicional:      f.DescuentoAdicional,
		DescuentoPredeterminado: f.DescuentoPredeterminado,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.ValorNeto = res.ValorNeto
	f.IVA = res.IVA
	f.BaseComision = res.BaseComision
	f.Porcentaje = res.Porcentaje
	f.Comision = res.Comision

	// 7) persiste
	if err := NewRepository(h.DB).Create(&f); err != nil {
		http.Error(w, "Error al crear la venta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// Listar trata GET /comisiones/facturas
// Filtros opcionales: ?mes=YYYY-MM, ?cliente=nombre, ?soloPropios=true
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	mes := r.URL.Query().Get("mes")
	nombreCliente := r.URL.Query().Get("cliente")
	soloPropios := r.URL.Query().Get("soloPropios") == "true"

	facturas, err := NewRepository(h.DB).Listar(mes, nombreCliente, soloPropios)
	if err != nil {
		http.Error(w, "Error al buscar facturas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(facturas)
}

// BuscarPorID trata GET /comisiones/facturas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de factura inválido", http.StatusBadRequest)
		return
	}

	f, err := NewRepository(h.DB).FindByID(uint(id))
	if err != nil {
		http.Error(w, "Factura no encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// Actualizar trata PUT /comisiones/facturas/{id}. Cualquier edición de
// los campos crudos recalcula la valoración y la comisión en la misma
// transacción.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de factura inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto ActualizarFacturaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	f, err := NewRepository(h.DB).FindByID(uint(id))
	if err != nil {
		http.Error(w, "Factura no encontrada", http.StatusNotFound)
		return
	}

	if err := dto.AplicarA(f); err != nil {
		http.Error(w, "Fecha de factura inválida", http.StatusBadRequest)
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "No fue posible iniciar la transacción", http.StatusInternalServerError)
		return
	}

	repo := NewRepository(tx)
	if err := repo.Update(f); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al actualizar la factura", http.StatusInternalServerError)
		return
	}
	if err := repo.RecalcularComision(f); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, comision.ErrValorNegativo) || errors.Is(err, comision.ErrFleteNegativo) || errors.Is(err, comision.ErrFleteMayorQueValor) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Error al recalcular la comisión", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al confirmar la transacción", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// MarcarPagada trata PATCH /comisiones/facturas/{id}/marcar-pagado.
// La fecha de pago es obligatoria: marcar pagado sin fecha se rechaza en
// la frontera para no fabricar nuevas anomalías.
func (h *Handler) MarcarPagada(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de factura inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto MarcarPagadaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.FechaPago == "" {
		http.Error(w, "La fecha de pago es obligatoria", http.StatusBadRequest)
		return
	}
	fechaPago, err := parseFecha(dto.FechaPago)
	if err != nil {
		http.Error(w, "Fecha de pago inválida", http.StatusBadRequest)
		return
	}

	repo := NewRepository(h.DB)
	f, err := repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Factura no encontrada", http.StatusNotFound)
		return
	}

	dias := DiasDePago(f.FechaFactura, fechaPago)
	if dto.DiasPago != nil {
		dias = *dto.DiasPago
	}

	if err := repo.MarcarPagada(f, fechaPago, dias); err != nil {
		http.Error(w, "Error al marcar la factura como pagada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// SubirComprobante trata POST /comisiones/facturas/{id}/comprobante.
// Guarda el adjunto y marca la factura como pagada en la misma
// transacción: un fallo en la subida no deja la factura pagada sin
// comprobante ni al revés.
func (h *Handler) SubirComprobante(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de factura inválido", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(20 << 20); err != nil {
		http.Error(w, "Formulario multipart inválido", http.StatusBadRequest)
		return
	}
	archivo, header, err := r.FormFile("archivo")
	if err != nil {
		http.Error(w, "El archivo 'archivo' es obligatorio", http.StatusBadRequest)
		return
	}
	defer archivo.Close()

	contenido, err := io.ReadAll(archivo)
	if err != nil {
		http.Error(w, "Error al leer el archivo", http.StatusInternalServerError)
		return
	}

	f, err := NewRepository(h.DB).FindByID(uint(id))
	if err != nil {
		http.Error(w, "Factura no encontrada", http.StatusNotFound)
		return
	}

	fechaPagoStr := r.FormValue("fechaPago")
	yaPagadaConFecha := f.Pagado && f.FechaPago != nil
	if fechaPagoStr == "" && !yaPagadaConFecha {
		http.Error(w, "La fecha de pago es obligatoria", http.StatusBadRequest)
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "No fue posible iniciar la transacción", http.StatusInternalServerError)
		return
	}
	repo := NewRepository(tx)

	if err := repo.GuardarComprobante(f, contenido, header.Header.Get("Content-Type"), header.Filename); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al guardar el comprobante", http.StatusInternalServerError)
		return
	}

	if fechaPagoStr != "" {
		fechaPago, err := parseFecha(fechaPagoStr)
		if err != nil {
			_ = tx.Rollback()
			http.Error(w, "Fecha de pago inválida", http.StatusBadRequest)
			return
		}
		if err := repo.MarcarPagada(f, fechaPago, DiasDePago(f.FechaFactura, fechaPago)); err != nil {
			_ = tx.Rollback()
			http.Error(w, "Error al marcar la factura como pagada", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Error al confirmar la transacción", http.StatusInternalServerError)
		return
	}

	f.ComprobanteMime = header.Header.Get("Content-Type")
	f.ComprobanteNombre = header.Filename

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// ObtenerComprobante trata GET /comisiones/facturas/{id}/comprobante
func (h *Handler) ObtenerComprobante(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de factura inválido", http.StatusBadRequest)
		return
	}

	f, err := NewRepository(h.DB).FindByID(uint(id))
	if err != nil {
		http.Error(w, "Factura no encontrada", http.StatusNotFound)
		return
	}
	if len(f.ComprobanteArchivo) == 0 {
		http.Error(w, "La factura no tiene comprobante", http.StatusNotFound)
		return
	}

	mime := f.ComprobanteMime
	if mime == "" {
		mime = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.ComprobanteNombre))
	_, _ = w.Write(f.ComprobanteArchivo)
}

// Anomalias trata GET /comisiones/facturas/anomalias: facturas pagadas
// sin fecha de pago, segregadas para corrección manual.
func (h *Handler) Anomalias(w http.ResponseWriter, r *http.Request) {
	facturas, err := NewRepository(h.DB).PagadasSinFecha()
	if err != nil {
		http.Error(w, "Error al buscar anomalías", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(facturas)
}
