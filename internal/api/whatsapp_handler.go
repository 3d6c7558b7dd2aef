package api

import (
	"fmt"
	"log"
	"net/http"

	"turnero/internal/service"
)

// apologyMessage is what the user sees when anything fails internally;
// the webhook never replies with a bare error.
const apologyMessage = "⚠️ Error procesando su solicitud"

type WhatsAppHandler struct {
	Menu *service.MenuService
}

func NewWhatsAppHandler(menu *service.MenuService) *WhatsAppHandler {
	return &WhatsAppHandler{Menu: menu}
}

// Receive handles the Twilio webhook. The message body is the only input:
// there is no session, so each message resolves on its own.
func (h *WhatsAppHandler) Receive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/xml")

	if err := r.ParseForm(); err != nil {
		log.Printf("Error parsing webhook form: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, twimlMessage(apologyMessage))
		return
	}

	reply, err := h.Menu.Resolve(r.FormValue("Body"))
	if err != nil {
		log.Printf("Error resolving menu input: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, twimlMessage(apologyMessage))
		return
	}

	fmt.Fprint(w, twimlMessage(service.FormatMenuReply(reply)))
}

// StatusPage is a plain landing page listing the available endpoints.
func StatusPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `
    <h1>Servidor de Turnos Médicos</h1>
    <p>Endpoints disponibles:</p>
    <ul>
      <li>POST /whatsapp - Webhook para Twilio</li>
      <li>GET /api/slots - Turnos disponibles</li>
      <li>POST /api/reserve - Reservar turno</li>
    </ul>
    <p>Estado: ✅ Funcionando</p>
  `)
}
