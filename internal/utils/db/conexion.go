package db

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Conectar abre la conexión Postgres con las credenciales resueltas por
// entorno o Secrets Manager.
func Conectar(puerto uint, host, nombre, secretID string) (*gorm.DB, error) {
	var sslMode string
	if os.Getenv("DB_SSL_MODE_DISABLE") == "true" {
		sslMode = " sslmode=disable"
	}

	usuario, clave, err := obtenerCredenciales(secretID)
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		host, usuario, clave, nombre, puerto, sslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}

// ObtenerDB arma la conexión a partir de las variables de entorno.
func ObtenerDB() (*gorm.DB, error) {
	puerto, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		puerto = 5432
	}

	nombre := os.Getenv("DB_NAME")
	if nombre == "" {
		nombre = "comisiones"
	}

	return Conectar(uint(puerto), os.Getenv("DB_HOST"), nombre, os.Getenv("DB_SECRET_ID"))
}
