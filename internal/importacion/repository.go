// internal/importacion/repository.go
package importacion

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operaciones de banco para Compra
type Repository struct {
	DB *gorm.DB
}

// NewRepository crea un nuevo repositorio
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Upsert inserta la fila o actualiza la ya cargada con la misma llave
// natural (nit, documento, artículo, tipo). Retorna true si fue
// inserción nueva.
func (r *Repository) Upsert(c *Compra) (bool, error) {
	var existente Compra
	err := r.DB.Where(
		"nit_cliente = ? AND num_documento = ? AND cod_articulo = ? AND es_devolucion = ?",
		c.NITCliente, c.NumDocumento, c.CodArticulo, c.EsDevolucion,
	).First(&existente).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, r.DB.Create(c).Error
	}
	if err != nil {
		return false, err
	}

	c.ID = existente.ID
	return false, r.DB.Save(c).Error
}

// ListarPorNIT retorna el flujo de movimientos de un cliente.
// Con incluirDevoluciones=false solo trae compras.
func (r *Repository) ListarPorNIT(nit string, incluirDevoluciones bool) ([]Compra, error) {
	q := r.DB.Where("nit_cliente = ?", nit).Order("fecha")
	if !incluirDevoluciones {
		q = q.Where("es_devolucion = ?", false)
	}

	var compras []Compra
	err := q.Find(&compras).Error
	return compras, err
}
