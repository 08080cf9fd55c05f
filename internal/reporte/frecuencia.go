// internal/reporte/frecuencia.go
package reporte

import (
	"sort"
	"time"
)

// CompraCliente es un movimiento del flujo de compras importado
// (compra o devolución) atribuido a un cliente.
type CompraCliente struct {
	Cliente      string
	NIT          string
	Fecha        time.Time
	Total        float64
	EsDevolucion bool
}

// FrecuenciaCliente resume la cadencia de compra de un cliente.
type FrecuenciaCliente struct {
	Cliente           string    `json:"cliente"`
	NIT               string    `json:"nit"`
	NumCompras        int       `json:"numCompras"`
	TotalComprado     float64   `json:"totalComprado"`
	PrimeraCompra     time.Time `json:"primeraCompra"`
	UltimaCompra      time.Time `json:"ultimaCompra"`
	FrecuenciaMensual float64   `json:"frecuenciaMensual"`
}

// MesesEntre cuenta los meses calendario entre dos fechas. Fechas en el
// mismo mes dan 0.
func MesesEntre(desde, hasta time.Time) int {
	meses := (hasta.Year()-desde.Year())*12 + int(hasta.Month()) - int(desde.Month())
	if meses < 0 {
		return 0
	}
	return meses
}

// AnalizarFrecuencia deriva la cadencia de compra por cliente a partir
// del flujo de compras. Las devoluciones no cuentan como compras. El
// denominador tiene piso de 1 mes: un cliente con una sola compra queda
// con frecuencia definida y baja en lugar de una división por cero.
func AnalizarFrecuencia(compras []CompraCliente) []FrecuenciaCliente {
	porCliente := map[string]*FrecuenciaCliente{}

	for _, c := range compras {
		if c.EsDevolucion {
			continue
		}
		clave := c.NIT
		if clave == "" {
			clave = c.Cliente
		}

		f, ok := porCliente[clave]
		if !ok {
			f = &FrecuenciaCliente{
				Cliente:       c.Cliente,
				NIT:           c.NIT,
				PrimeraCompra: c.Fecha,
				UltimaCompra:  c.Fecha,
			}
			porCliente[clave] = f
		}

		f.NumCompras++
		f.TotalComprado += c.Total
		if c.Fecha.Before(f.PrimeraCompra) {
			f.PrimeraCompra = c.Fecha
		}
		if c.Fecha.After(f.UltimaCompra) {
			f.UltimaCompra = c.Fecha
		}
	}

	resultado := make([]FrecuenciaCliente, 0, len(porCliente))
	for _, f := range porCliente {
		meses := MesesEntre(f.PrimeraCompra, f.UltimaCompra)
		if meses < 1 {
			meses = 1
		}
		f.FrecuenciaMensual = float64(f.NumCompras) / float64(meses)
		resultado = append(resultado, *f)
	}

	sort.Slice(resultado, func(i, j int) bool {
		return resultado[i].NumCompras > resultado[j].NumCompras
	})
	return resultado
}
