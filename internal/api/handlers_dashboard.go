package api

import (
	"net/http"

	"tradie-receptionist/internal/auth"
)

// @Summary List a tenant's completed calls
// @Tags Dashboard
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/calls [get]
func (a *API) ListCalls(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.GetTenantID(r)
	if tenantID == "" {
		http.Error(w, "unauthorized tenant", http.StatusUnauthorized)
		return
	}

	calls, total, real, spam := a.Calls.ListByTenant(tenantID, 50)

	writeJSON(w, map[string]any{
		"tenant_id":    tenantID,
		"total_calls":  total,
		"real_leads":   real,
		"spam_blocked": spam,
		"calls":        calls,
	})
}

// @Summary Spam counts for a tenant
// @Tags Dashboard
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/spam-stats [get]
func (a *API) SpamStats(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.GetTenantID(r)
	if tenantID == "" {
		http.Error(w, "unauthorized tenant", http.StatusUnauthorized)
		return
	}

	writeJSON(w, map[string]any{
		"tenant_id":          tenantID,
		"spam_blocked_today": a.Dispatcher.SpamCount(tenantID),
	})
}
