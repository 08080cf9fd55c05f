// internal/importacion/dto.go
package importacion

import (
	"errors"
	"math"
	"strings"
	"time"
)

// FilaDTO es una fila ya extraída de la planilla por el colaborador de
// ingesta externo. Aquí solo se normaliza y persiste.
type FilaDTO struct {
	Fuente        string  `json:"fuente"`
	NumDocumento  string  `json:"numDocumento"`
	Fecha         string  `json:"fecha"`
	CodArticulo   string  `json:"codArticulo"`
	Detalle       string  `json:"detalle"`
	Cantidad      int     `json:"cantidad"`
	ValorUnitario float64 `json:"valorUnitario"`
	Descuento     float64 `json:"descuento"`
	Total         float64 `json:"total"`
	Familia       string  `json:"familia"`
	Marca         string  `json:"marca"`
	Subgrupo      string  `json:"subgrupo"`
	Grupo         string  `json:"grupo"`
}

// ImportarComprasDTO es el cuerpo de POST /importaciones/compras.
type ImportarComprasDTO struct {
	NITCliente string    `json:"nitCliente"`
	Filas      []FilaDTO `json:"filas"`
}

var errFuenteDesconocida = errors.New("fuente desconocida: se espera FE o DV")

// NormalizarFila convierte una fila del archivo en el modelo
// persistible: valida la fuente, parsea la fecha y fuerza el signo del
// total (negativo para devoluciones).
func NormalizarFila(f FilaDTO, clienteID uint, nit string) (Compra, error) {
	fuente := strings.ToUpper(strings.TrimSpace(f.Fuente))
	if fuente != FuenteCompra && fuente != FuenteDevolucion {
		return Compra{}, errFuenteDesconocida
	}
	esDevolucion := fuente == FuenteDevolucion

	fecha := time.Now()
	if f.Fecha != "" {
		parseada, err := time.Parse(time.RFC3339, f.Fecha)
		if err != nil {
			parseada, err = time.Parse("2006-01-02", f.Fecha)
			if err != nil {
				return Compra{}, err
			}
		}
		fecha = parseada
	}

	total := f.Total
	if esDevolucion {
		total = -math.Abs(total)
	}

	return Compra{
		ClienteID:     clienteID,
		NITCliente:    nit,
		Fuente:        fuente,
		NumDocumento:  f.NumDocumento,
		Fecha:         fecha,
		CodArticulo:   f.CodArticulo,
		Detalle:       f.Detalle,
		Cantidad:      f.Cantidad,
		ValorUnitario: f.ValorUnitario,
		Descuento:     f.Descuento,
		Total:         total,
		Familia:       f.Familia,
		Marca:         f.Marca,
		Subgrupo:      f.Subgrupo,
		Grupo:         f.Grupo,
		EsDevolucion:  esDevolucion,
		FechaCarga:    time.Now(),
	}, nil
}
