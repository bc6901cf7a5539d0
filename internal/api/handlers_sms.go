package api

import (
	"log"
	"net/http"

	"tradie-receptionist/internal/sms"
)

const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?>
<Response></Response>`

// @Summary Incoming SMS command webhook
// @Tags Webhooks
// @Accept x-www-form-urlencoded
// @Produce xml
// @Success 200
// @Router /webhook/sms [post]
func (a *API) IncomingSMS(w http.ResponseWriter, r *http.Request) {
	// The SMS provider posts form-encoded bodies.
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	from := r.PostFormValue("From")
	body := r.PostFormValue("Body")

	tenant, err := a.Registry.ResolveByPersonalPhone(from)
	if err != nil {
		log.Printf("API: SMS from unknown number %q", from)
		writeTwiML(w)
		return
	}

	switch sms.ParseCommand(body) {
	case sms.CommandLastCaller:
		if !a.Dispatcher.NotifyLastCaller(tenant) {
			log.Printf("API: no last caller recorded for tenant %s", tenant.ID)
		}
	case sms.CommandNone:
		log.Printf("API: unrecognized SMS command %q from tenant %s", body, tenant.ID)
	default:
		// Availability toggles are accepted but not acted on yet.
		log.Printf("API: SMS command %q acknowledged for tenant %s", body, tenant.ID)
	}

	writeTwiML(w)
}

func writeTwiML(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/xml")
	_, _ = w.Write([]byte(emptyTwiML))
}
