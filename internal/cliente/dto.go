package cliente

// ClienteDTO es el cuerpo de creación/actualización de clientes.
type ClienteDTO struct {
	Nombre                  string  `json:"nombre"`
	NIT                     string  `json:"nit"`
	Contacto                string  `json:"contacto"`
	Email                   string  `json:"email"`
	Telefono                string  `json:"telefono"`
	Ciudad                  string  `json:"ciudad"`
	Direccion               string  `json:"direccion"`
	CupoTotal               float64 `json:"cupoTotal"`
	PlazoPago               int     `json:"plazoPago"`
	DescuentoPredeterminado float64 `json:"descuentoPredeterminado"`
	ClientePropio           bool    `json:"clientePropio"`
	Vendedor                string  `json:"vendedor"`
	Activo                  bool    `json:"activo"`
}

// AModelo convierte el DTO en el modelo persistible.
func (d ClienteDTO) AModelo() *Cliente {
	plazo := d.PlazoPago
	if plazo == 0 {
		plazo = 30
	}
	return &Cliente{
		Nombre:                  d.Nombre,
		NIT:                     d.NIT,
		Contacto:                d.Contacto,
		Email:                   d.Email,
		Telefono:                d.Telefono,
		Ciudad:                  d.Ciudad,
		Direccion:               d.Direccion,
		CupoTotal:               d.CupoTotal,
		PlazoPago:               plazo,
		DescuentoPredeterminado: d.DescuentoPredeterminado,
		ClientePropio:           d.ClientePropio,
		Vendedor:                d.Vendedor,
		Activo:                  d.Activo,
	}
}
