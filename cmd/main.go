package main

import (
	"net/http"
	"os"

	"github.com/distriandina/api-comisiones/internal/cliente"
	"github.com/distriandina/api-comisiones/internal/comision"
	"github.com/distriandina/api-comisiones/internal/devolucion"
	"github.com/distriandina/api-comisiones/internal/factura"
	"github.com/distriandina/api-comisiones/internal/importacion"
	"github.com/distriandina/api-comisiones/internal/reporte"
	"github.com/distriandina/api-comisiones/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("archivo .env no encontrado; usando variables de entorno")
	}

	database, err := db.ObtenerDB()
	if err != nil {
		log.Fatal().Err(err).Msg("error al conectar a la base de datos")
	}

	// AutoMigrate para todos los modelos
	if err := database.AutoMigrate(
		&cliente.Cliente{},
		&factura.Factura{},
		&devolucion.Devolucion{},
		&importacion.Compra{},
	); err != nil {
		log.Fatal().Err(err).Msg("error en AutoMigrate")
	}

	// Handlers
	clienteHandler := cliente.NewHandler(database)
	facturaHandler := factura.NewHandler(database)
	devolucionHandler := devolucion.NewHandler(database)
	comisionHandler := comision.NewHandler()
	reporteHandler := reporte.NewHandler(database)
	importacionHandler := importacion.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rutas de clientes
	r.HandleFunc("/clientes", clienteHandler.CrearCliente).Methods("POST")
	r.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.ActualizarCliente).Methods("PUT")
	r.HandleFunc("/clientes/{id}", clienteHandler.DesactivarCliente).Methods("DELETE")

	// Rutas de ventas y facturas
	r.HandleFunc("/ventas", facturaHandler.CrearVenta).Methods("POST")
	r.HandleFunc("/comisiones/facturas", facturaHandler.Listar).Methods("GET")
	r.HandleFunc("/comisiones/facturas/anomalias", facturaHandler.Anomalias).Methods("GET")
	r.HandleFunc("/comisiones/facturas/{id}", facturaHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/comisiones/facturas/{id}", facturaHandler.Actualizar).Methods("PUT")
	r.HandleFunc("/comisiones/facturas/{id}/marcar-pagado", facturaHandler.MarcarPagada).Methods("PATCH")
	r.HandleFunc("/comisiones/facturas/{id}/comprobante", facturaHandler.SubirComprobante).Methods("POST")
	r.HandleFunc("/comisiones/facturas/{id}/comprobante", facturaHandler.ObtenerComprobante).Methods("GET")

	// Estimador interactivo (cálculo puro, sin base de datos)
	r.HandleFunc("/comisiones/preview", comisionHandler.Preview).Methods("POST")

	// Rutas de devoluciones
	r.HandleFunc("/devoluciones", devolucionHandler.Crear).Methods("POST")
	r.HandleFunc("/devoluciones", devolucionHandler.Listar).Methods("GET")
	r.HandleFunc("/devoluciones/facturas-disponibles", devolucionHandler.FacturasDisponibles).Methods("GET")
	r.HandleFunc("/devoluciones/{id}", devolucionHandler.Actualizar).Methods("PUT")
	r.HandleFunc("/devoluciones/{id}", devolucionHandler.Eliminar).Methods("DELETE")

	// Rutas de analítica y dashboard
	r.HandleFunc("/analytics/comisiones-mensuales", reporteHandler.ComisionesMensuales).Methods("GET")
	r.HandleFunc("/analytics/comisiones-mensuales/{mes}/facturas", reporteHandler.FacturasPorMes).Methods("GET")
	r.HandleFunc("/analytics/analisis-comercial", reporteHandler.AnalisisComercial).Methods("GET")
	r.HandleFunc("/analytics/frecuencia-compras", reporteHandler.FrecuenciaCompras).Methods("GET")
	r.HandleFunc("/dashboard/metrics", reporteHandler.Metrics).Methods("GET")

	// Carga en bloque del flujo de compras
	r.HandleFunc("/importaciones/compras", importacionHandler.ImportarCompras).Methods("POST")
	r.HandleFunc("/importaciones/compras/{nit}", importacionHandler.ListarCompras).Methods("GET")

	manejador := cors.AllowAll().Handler(r)

	puerto := os.Getenv("PORT")
	if puerto == "" {
		puerto = "8080"
	}

	log.Info().Str("puerto", puerto).Msg("servidor iniciado")
	if err := http.ListenAndServe(":"+puerto, manejador); err != nil {
		log.Fatal().Err(err).Msg("servidor detenido")
	}
}
