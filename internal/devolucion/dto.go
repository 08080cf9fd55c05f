// internal/devolucion/dto.go
package devolucion

// CrearDevolucionDTO es el cuerpo de POST /devoluciones. AfectaComision
// omitido cuenta como true, que es el caso normal.
type CrearDevolucionDTO struct {
	FacturaID       uint    `json:"facturaId"`
	ValorDevuelto   float64 `json:"valorDevuelto"`
	FechaDevolucion string  `json:"fechaDevolucion"`
	Motivo          string  `json:"motivo"`
	AfectaComision  *bool   `json:"afectaComision"`
}

// ActualizarDevolucionDTO es el cuerpo de PUT /devoluciones/{id}. Los
// punteros distinguen campo ausente de valor cero.
type ActualizarDevolucionDTO struct {
	ValorDevuelto   *float64 `json:"valorDevuelto"`
	FechaDevolucion *string  `json:"fechaDevolucion"`
	Motivo          *string  `json:"motivo"`
	AfectaComision  *bool    `json:"afectaComision"`
}
