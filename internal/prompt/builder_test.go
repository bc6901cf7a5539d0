package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tradie-receptionist/internal/model"
)

func testTenant() model.Tenant {
	return model.Tenant{
		ID:                "acme-plumbing",
		Name:              "Bruce",
		BusinessName:      "Acme Plumbing",
		TradeType:         "plumber",
		VapiPhoneNumberID: "+61400000001",
		PersonalPhone:     "+61499999999",
		ServiceArea:       "Melbourne",
		Services:          []string{"Blocked drains", "Hot water systems"},
		EmergencyKeywords: []string{"flooding", "burst"},
	}
}

func TestBuildSystemPromptContainsTenantFacts(t *testing.T) {
	script, err := BuildSystemPrompt(testTenant())
	require.NoError(t, err)

	require.Contains(t, script, "Acme Plumbing")
	require.Contains(t, script, "plumber")
	require.Contains(t, script, "Bruce")
	require.Contains(t, script, "Melbourne")
	require.Contains(t, script, "- Blocked drains")
	require.Contains(t, script, "flooding, burst")
	require.Contains(t, script, "end_call_report")
}

func TestBuildSystemPromptDeterministic(t *testing.T) {
	a, err := BuildSystemPrompt(testTenant())
	require.NoError(t, err)
	b, err := BuildSystemPrompt(testTenant())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBuildSystemPromptDefaults(t *testing.T) {
	tenant := testTenant()
	tenant.ServiceArea = ""
	tenant.EmergencyKeywords = nil

	script, err := BuildSystemPrompt(tenant)
	require.NoError(t, err)
	require.Contains(t, script, "the local area")
	require.Contains(t, script, "emergency, urgent, flooding, fire")
}

func TestBuildSystemPromptIncompleteConfig(t *testing.T) {
	for _, strip := range []func(*model.Tenant){
		func(m *model.Tenant) { m.Name = "" },
		func(m *model.Tenant) { m.BusinessName = "" },
		func(m *model.Tenant) { m.TradeType = "" },
	} {
		tenant := testTenant()
		strip(&tenant)

		script, err := BuildSystemPrompt(tenant)
		require.ErrorIs(t, err, ErrIncompleteConfig)
		// Never a partial script.
		require.Empty(t, script)
	}
}

func TestBuildFirstMessage(t *testing.T) {
	require.Equal(t, "G'day, Acme Plumbing, how can I help?", BuildFirstMessage(testTenant()))
}

func TestBuildAssistant(t *testing.T) {
	asst, err := BuildAssistant(testTenant(),
		ModelConfig{Provider: "openai", Name: "gpt-4o-mini", Temperature: 0.7},
		VoiceConfig{Provider: "eleven-labs", VoiceID: "voice-123", Stability: 0.6, SimilarityBoost: 0.8},
	)
	require.NoError(t, err)

	require.Equal(t, "voice-123", asst.Voice.VoiceID)
	require.Equal(t, "eleven-labs", asst.Voice.Provider)
	require.Equal(t, "gpt-4o-mini", asst.Model.Model)
	require.True(t, strings.Contains(asst.Model.SystemMessage, "Acme Plumbing"))
	require.Equal(t, "G'day, Acme Plumbing, how can I help?", asst.FirstMessage)
	require.True(t, asst.EndCallFunctionEnabled)
	require.Len(t, asst.Model.Functions, 1)
	require.Equal(t, "end_call_report", asst.Model.Functions[0].Name)
	require.Equal(t, "en-AU", asst.Transcriber.Language)
}

func TestBuildAssistantIncompleteConfig(t *testing.T) {
	tenant := testTenant()
	tenant.TradeType = ""

	_, err := BuildAssistant(tenant, ModelConfig{}, VoiceConfig{VoiceID: "v"})
	require.ErrorIs(t, err, ErrIncompleteConfig)
}
