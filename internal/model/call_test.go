package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEventType(t *testing.T) {
	require.Equal(t, EventStarted, NormalizeEventType("started"))
	require.Equal(t, EventStarted, NormalizeEventType("assistant-request"))
	require.Equal(t, EventEnded, NormalizeEventType("ended"))
	require.Equal(t, EventEnded, NormalizeEventType("end-of-call-report"))
	require.Equal(t, EventFunctionCall, NormalizeEventType("function-call"))
	require.Equal(t, EventUnknown, NormalizeEventType("speech-update"))
	require.Equal(t, EventUnknown, NormalizeEventType(""))
}

func TestMessageKeyFallbacks(t *testing.T) {
	m := WebhookMessage{Call: Call{ID: "c1", PhoneNumberID: "p1"}, CallID: "c2", PhoneNumberID: "p2"}
	require.Equal(t, "c1", m.CallRef())
	require.Equal(t, "p1", m.TenantKey())

	m = WebhookMessage{CallID: "c2", PhoneNumberID: "p2"}
	require.Equal(t, "c2", m.CallRef())
	require.Equal(t, "p2", m.TenantKey())
}
