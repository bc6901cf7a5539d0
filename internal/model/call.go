// internal/model/call.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Event types delivered by the voice platform. The platform's native names
// (assistant-request, end-of-call-report) are normalized onto these.
const (
	EventStarted      = "started"
	EventEnded        = "ended"
	EventFunctionCall = "function-call"
	EventUnknown      = "unknown"
)

// Urgency levels for a call report.
const (
	UrgencyNormal    = "normal"
	UrgencySoon      = "soon"
	UrgencyEmergency = "emergency"
)

// WebhookEnvelope is the outer JSON body posted by the voice platform.
type WebhookEnvelope struct {
	Message WebhookMessage `json:"message"`
}

// WebhookMessage carries one call lifecycle event. The platform puts the
// phone number ID and call ID on the call object; some event variants carry
// them at the message level instead, so both spellings are accepted.
type WebhookMessage struct {
	Type          string        `json:"type"`
	Call          Call          `json:"call"`
	PhoneNumberID string        `json:"phoneNumberId,omitempty"`
	CallID        string        `json:"callId,omitempty"`
	FunctionCall  *FunctionCall `json:"functionCall,omitempty"`
	Summary       string        `json:"summary,omitempty"`
	Transcript    string        `json:"transcript,omitempty"`
}

// TenantKey returns the phone number ID wherever the event carried it.
func (m WebhookMessage) TenantKey() string {
	if m.Call.PhoneNumberID != "" {
		return m.Call.PhoneNumberID
	}
	return m.PhoneNumberID
}

// CallRef returns the call ID wherever the event carried it.
func (m WebhookMessage) CallRef() string {
	if m.Call.ID != "" {
		return m.Call.ID
	}
	return m.CallID
}

// Call identifies the phone call an event belongs to.
type Call struct {
	ID            string  `json:"id"`
	PhoneNumberID string  `json:"phoneNumberId"`
	Duration      float64 `json:"duration,omitempty"`
}

// FunctionCall is emitted when the agent invokes a tool mid-conversation.
type FunctionCall struct {
	Name       string     `json:"name"`
	Parameters CallReport `json:"parameters"`
}

// CallReport is the structured summary the agent submits at the end of a
// conversation with a real customer.
type CallReport struct {
	CallerName      string `json:"caller_name"`
	CallerPhone     string `json:"caller_phone"`
	Suburb          string `json:"suburb,omitempty"`
	JobDescription  string `json:"job_description"`
	Urgency         string `json:"urgency"`
	PreferredTiming string `json:"preferred_timing,omitempty"`
	Notes           string `json:"notes,omitempty"`
	IsSpam          bool   `json:"is_spam"`
}

// NormalizeEventType maps both the generic lifecycle names and the voice
// platform's native message types onto the internal event constants.
func NormalizeEventType(t string) string {
	switch t {
	case EventStarted, "assistant-request":
		return EventStarted
	case EventEnded, "end-of-call-report":
		return EventEnded
	case EventFunctionCall:
		return EventFunctionCall
	default:
		return EventUnknown
	}
}

// CallRecord is one audit-trail entry for a completed call.
type CallRecord struct {
	ID         uuid.UUID  `json:"id"`
	TenantID   string     `json:"tenant_id"`
	CallID     string     `json:"call_id"`
	Report     CallReport `json:"report"`
	Summary    string     `json:"summary,omitempty"`
	Transcript string     `json:"transcript,omitempty"`
	Duration   float64    `json:"duration,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
