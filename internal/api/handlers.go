package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tradie-receptionist/internal/auth"
	"tradie-receptionist/internal/metrics"
	"tradie-receptionist/internal/model"
	"tradie-receptionist/internal/prompt"
	"tradie-receptionist/internal/registry"
)

// webhookSecretHeader carries the shared secret the voice platform is
// configured to send with every webhook delivery.
const webhookSecretHeader = "X-Vapi-Secret"

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// Public
	r.Get("/health", a.Health)
	r.Handle("/metrics", metrics.Handler())

	// Platform webhooks (shared-secret auth inside the handlers)
	r.Post("/webhook/voice", a.VoiceWebhook)
	r.Post("/webhook/sms", a.IncomingSMS)

	// Secured dashboard API
	r.Group(func(r chi.Router) {
		r.Use(auth.JWTAuthMiddleware)

		r.Get("/api/calls", a.ListCalls)
		r.Get("/api/spam-stats", a.SpamStats)
	})

	return r
}

// @Summary Voice platform webhook
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /webhook/voice [post]
func (a *API) VoiceWebhook(w http.ResponseWriter, r *http.Request) {
	if !auth.SecretEqual(r.Header.Get(webhookSecretHeader), a.Cfg.Secrets.WebhookSecret) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var env model.WebhookEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	msg := env.Message
	kind := model.NormalizeEventType(msg.Type)
	metrics.WebhookEvents.WithLabelValues(kind).Inc()
	log.Printf("API: webhook %s | call: %s", msg.Type, msg.CallRef())

	switch kind {
	case model.EventStarted:
		a.handleCallStarted(w, msg)
	case model.EventFunctionCall:
		a.handleFunctionCall(w, msg)
	case model.EventEnded:
		a.handleCallEnded(w, msg)
	default:
		// Unknown event types are acknowledged with no side effects so new
		// platform message types never crash the handler.
		writeJSON(w, map[string]any{})
	}
}

// handleCallStarted returns the assembled assistant configuration. The
// platform blocks on this response to begin the call, so it is synchronous.
func (a *API) handleCallStarted(w http.ResponseWriter, msg model.WebhookMessage) {
	tenant, err := a.Registry.Resolve(msg.TenantKey())
	if err != nil {
		log.Printf("API: unknown phone number ID %q", msg.TenantKey())
		http.Error(w, "unknown phone number", http.StatusNotFound)
		return
	}

	asst, err := prompt.BuildAssistant(tenant, a.modelConfig(), a.voiceConfig())
	if err != nil {
		log.Printf("API: prompt build failed for tenant %s: %v", tenant.ID, err)
		http.Error(w, "tenant configuration incomplete", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"assistant": asst})
}

// handleFunctionCall processes the agent's structured end-of-call report.
func (a *API) handleFunctionCall(w http.ResponseWriter, msg model.WebhookMessage) {
	if msg.FunctionCall == nil || msg.FunctionCall.Name != "end_call_report" {
		writeJSON(w, map[string]string{"result": "OK"})
		return
	}

	tenant, err := a.Registry.Resolve(msg.TenantKey())
	if err != nil {
		log.Printf("API: tenant not found for call report: %q", msg.TenantKey())
		writeJSON(w, map[string]string{"result": "Report received"})
		return
	}

	a.Dispatcher.HandleReport(tenant, msg.CallRef(), msg.FunctionCall.Parameters)
	writeJSON(w, map[string]string{"result": "Report processed"})
}

// handleCallEnded attaches the transcript and queues the notification. The
// event is acknowledged regardless of dispatch outcome: failing the ack would
// only make the platform retry and cascade.
func (a *API) handleCallEnded(w http.ResponseWriter, msg model.WebhookMessage) {
	tenant, err := a.Registry.Resolve(msg.TenantKey())
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			// No recipient to guess at. Log for the operator and ack.
			log.Printf("API: ended event for unknown phone number ID %q, skipping notification", msg.TenantKey())
			writeJSON(w, map[string]any{})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	a.Dispatcher.HandleCallEnded(tenant, msg.CallRef(), msg.Summary, msg.Transcript, msg.Call.Duration)
	writeJSON(w, map[string]any{})
}

// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":         "ok",
		"tenants_loaded": a.Registry.Len(),
	})
}

func (a *API) modelConfig() prompt.ModelConfig {
	return prompt.ModelConfig{
		Provider:    a.Cfg.Model.Provider,
		Name:        a.Cfg.Model.Name,
		Temperature: a.Cfg.Model.Temperature,
	}
}

func (a *API) voiceConfig() prompt.VoiceConfig {
	return prompt.VoiceConfig{
		Provider:        a.Cfg.Voice.Provider,
		VoiceID:         a.Cfg.Voice.VoiceID,
		Stability:       a.Cfg.Voice.Stability,
		SimilarityBoost: a.Cfg.Voice.SimilarityBoost,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
