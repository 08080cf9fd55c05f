package notificacion

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// EnviarAlertaRevision notifica por webhook que una factura quedó
// marcada para revisión manual (devoluciones que superan el neto,
// pagos sin fecha corregidos a mano, etc.). Si ALERTA_WEBHOOK_URL no
// está configurada no hace nada.
func EnviarAlertaRevision(pedido, motivo string) {
	url := os.Getenv("ALERTA_WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensaje": "Alerta: factura marcada para revisión manual",
		"pedido":  pedido,
		"motivo":  motivo,
	}
	body, _ := json.Marshal(payload)

	cliente := &http.Client{Timeout: 10 * time.Second}
	resp, err := cliente.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Str("pedido", pedido).Msg("error al enviar webhook de alerta")
		return
	}
	defer resp.Body.Close()
}
