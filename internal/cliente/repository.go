package cliente

import (
	"gorm.io/gorm"
)

type Repository interface {
	Guardar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	BuscarPorNIT(db *gorm.DB, nit string) (*Cliente, error)
	ListarTodos(db *gorm.DB, soloActivos bool) ([]Cliente, error)
	Actualizar(db *gorm.DB, id uint, nuevosDatos *Cliente) (*Cliente, error)
	Desactivar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Guardar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorNIT(db *gorm.DB, nit string) (*Cliente, error) {
	var c Cliente
	if err := db.Where("nit = ?", nit).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, soloActivos bool) ([]Cliente, error) {
	var clientes []Cliente
	q := db.Order("nombre")
	if soloActivos {
		q = q.Where("activo = ?", true)
	}
	err := q.Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id uint, nuevosDatos *Cliente) (*Cliente, error) {
	var existente Cliente
	if err := db.First(&existente, id).Error; err != nil {
		return nil, err
	}

	existente.Nombre = nuevosDatos.Nombre
	existente.NIT = nuevosDatos.NIT
	existente.Contacto = nuevosDatos.Contacto
	existente.Email = nuevosDatos.Email
	existente.Telefono = nuevosDatos.Telefono
	existente.Ciudad = nuevosDatos.Ciudad
	existente.Direccion = nuevosDatos.Direccion
	existente.CupoTotal = nuevosDatos.CupoTotal
	existente.PlazoPago = nuevosDatos.PlazoPago
	existente.DescuentoPredeterminado = nuevosDatos.DescuentoPredeterminado
	existente.ClientePropio = nuevosDatos.ClientePropio
	existente.Vendedor = nuevosDatos.Vendedor
	existente.Activo = nuevosDatos.Activo

	if err := db.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}

// Desactivar marca el cliente como inactivo. No hay borrado físico: las
// facturas del cliente siguen contando en los reportes históricos.
func (r *repositoryImpl) Desactivar(db *gorm.DB, id uint) error {
	return db.Model(&Cliente{}).Where("id = ?", id).Update("activo", false).Error
}
