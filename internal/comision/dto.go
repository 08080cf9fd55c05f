// internal/comision/dto.go
package comision

// PreviewDTO es el cuerpo del estimador interactivo de comisiones.
type PreviewDTO struct {
	ValorTotal              float64 `json:"valorTotal"`
	ValorFlete              float64 `json:"valorFlete"`
	ClientePropio           bool    `json:"clientePropio"`
	DescuentoAdicional      float64 `json:"descuentoAdicional"`
	DescuentoPredeterminado float64 `json:"descuentoPredeterminado"`
	Devoluciones            []struct {
		ValorDevuelto  float64 `json:"valorDevuelto"`
		AfectaComision bool    `json:"afectaComision"`
	} `json:"devoluciones"`
}
