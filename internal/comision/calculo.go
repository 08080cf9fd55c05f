// internal/comision/calculo.go
package comision

import "errors"

// FactorIVA es la tasa de IVA vigente (19%). Los valores de factura
// llegan con IVA incluido.
const FactorIVA = 1.19

// FactorBaseSinDescuento es la reducción del 15% que se aplica a la base
// cuando el cliente no tiene descuento predeterminado a pie de factura.
const FactorBaseSinDescuento = 0.85

var (
	ErrValorNegativo      = errors.New("el valor total no puede ser negativo")
	ErrFleteNegativo      = errors.New("el valor del flete no puede ser negativo")
	ErrFleteMayorQueValor = errors.New("el flete no puede superar el valor total")
)

// Valoracion es el resultado de separar el IVA de una factura.
type Valoracion struct {
	ValorNeto float64 `json:"valorNeto"`
	IVA       float64 `json:"iva"`
}

// ValorarFactura separa el valor de productos (sin flete) en neto e IVA.
// Aritmética pura, sin efectos secundarios.
func ValorarFactura(valorTotal, valorFlete float64) (Valoracion, error) {
	if valorTotal < 0 {
		return Valoracion{}, ErrValorNegativo
	}
	if valorFlete < 0 {
		return Valoracion{}, ErrFleteNegativo
	}
	if valorFlete > valorTotal {
		return Valoracion{}, ErrFleteMayorQueValor
	}

	productos := valorTotal - valorFlete
	neto := productos / FactorIVA
	return Valoracion{
		ValorNeto: neto,
		IVA:       productos - neto,
	}, nil
}

// ResolverPorcentaje devuelve el porcentaje de comisión según la matriz
// de tipo de cliente y descuento adicional. Solo el descuento ADICIONAL
// (a nivel de factura) baja el porcentaje; el predeterminado del cliente
// nunca lo afecta.
//
//	propio  + sin descuento adicional -> 2.5
//	propio  + con descuento adicional -> 1.5
//	externo + sin descuento adicional -> 1.0
//	externo + con descuento adicional -> 0.5
func ResolverPorcentaje(clientePropio, tieneDescuentoAdicional bool) float64 {
	if clientePropio {
		if tieneDescuentoAdicional {
			return 1.5
		}
		return 2.5
	}
	if tieneDescuentoAdicional {
		return 0.5
	}
	return 1.0
}

// Entrada agrupa los datos de una factura necesarios para calcular su
// comisión. DescuentoPredeterminado viene del cliente, DescuentoAdicional
// de la factura; ambos son porcentajes (0 = sin descuento).
type Entrada struct {
	ValorTotal              float64
	ValorFlete              float64
	ClientePropio           bool
	DescuentoAdicional      float64
	DescuentoPredeterminado float64
}

// Resultado expone todos los componentes del cálculo para auditoría.
type Resultado struct {
	ValorNeto                    float64 `json:"valorNeto"`
	IVA                          float64 `json:"iva"`
	BaseComision                 float64 `json:"baseComision"`
	Porcentaje                   float64 `json:"porcentaje"`
	Comision                     float64 `json:"comision"`
	ClientePropio                bool    `json:"clientePropio"`
	TieneDescuentoAdicional      bool    `json:"tieneDescuentoAdicional"`
	TieneDescuentoPredeterminado bool    `json:"tieneDescuentoPredeterminado"`
	RequiereRevision             bool    `json:"requiereRevision"`
}

// Calcular aplica todas las reglas de comisión sobre una factura sin
// devoluciones. Si el cliente tiene descuento predeterminado la base es
// el neto completo (el descuento ya está reflejado en el precio); si no,
// se aplica la reducción del 15%.
func Calcular(e Entrada) (Resultado, error) {
	val, err := ValorarFactura(e.ValorTotal, e.ValorFlete)
	if err != nil {
		return Resultado{}, err
	}

	tieneAdicional := e.DescuentoAdicional > 0
	tienePredeterminado := e.DescuentoPredeterminado > 0

	base := val.ValorNeto
	if !tienePredeterminado {
		base = val.ValorNeto * FactorBaseSinDescuento
	}

	porcentaje := ResolverPorcentaje(e.ClientePropio, tieneAdicional)

	return Resultado{
		ValorNeto:                    val.ValorNeto,
		IVA:                          val.IVA,
		BaseComision:                 base,
		Porcentaje:                   porcentaje,
		Comision:                     base * (porcentaje / 100),
		ClientePropio:                e.ClientePropio,
		TieneDescuentoAdicional:      tieneAdicional,
		TieneDescuentoPredeterminado: tienePredeterminado,
	}, nil
}

// Devolucion es la vista mínima de una devolución que el cálculo necesita.
// ValorDevuelto llega con IVA incluido, igual que el valor de la factura.
type Devolucion struct {
	ValorDevuelto  float64
	AfectaComision bool
}

// AjustarBasePorDevoluciones resta de la base el valor neto (sin IVA) de
// cada devolución que afecta comisión. Las que no afectan quedan solo
// para auditoría y no cambian ninguna cifra. Si las devoluciones superan
// la base, esta se fija en cero y se marca la factura para revisión
// manual en lugar de quedar negativa.
func AjustarBasePorDevoluciones(base float64, devoluciones []Devolucion) (float64, bool) {
	ajustada := base
	for _, d := range devoluciones {
		if !d.AfectaComision {
			continue
		}
		ajustada -= d.ValorDevuelto / FactorIVA
	}
	if ajustada < 0 {
		return 0, true
	}
	return ajustada, false
}

// CalcularConDevoluciones calcula la comisión de una factura aplicando
// primero el ajuste por devoluciones sobre la base y después el
// porcentaje. El orden importa: el porcentaje resuelto se aplica a la
// base ya reducida.
func CalcularConDevoluciones(e Entrada, devoluciones []Devolucion) (Resultado, error) {
	res, err := Calcular(e)
	if err != nil {
		return Resultado{}, err
	}

	base, revision := AjustarBasePorDevoluciones(res.BaseComision, devoluciones)
	res.BaseComision = base
	res.Comision = base * (res.Porcentaje / 100)
	res.RequiereRevision = revision
	return res, nil
}
