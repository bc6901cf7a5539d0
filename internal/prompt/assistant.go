// internal/prompt/assistant.go
package prompt

import "tradie-receptionist/internal/model"

// VoiceConfig selects the deployment-wide agent voice. One voice per
// deployment; the ID comes from configuration, never a literal.
type VoiceConfig struct {
	Provider        string
	VoiceID         string
	Stability       float64
	SimilarityBoost float64
}

// ModelConfig selects the LLM backing the agent.
type ModelConfig struct {
	Provider    string
	Name        string
	Temperature float64
}

// Assistant is the configuration payload the voice platform expects in
// response to an assistant-request.
type Assistant struct {
	Model                  AssistantModel       `json:"model"`
	Voice                  AssistantVoice       `json:"voice"`
	FirstMessage           string               `json:"firstMessage"`
	EndCallMessage         string               `json:"endCallMessage"`
	Transcriber            AssistantTranscriber `json:"transcriber"`
	SilenceTimeoutSeconds  int                  `json:"silenceTimeoutSeconds"`
	MaxDurationSeconds     int                  `json:"maxDurationSeconds"`
	EndCallFunctionEnabled bool                 `json:"endCallFunctionEnabled"`
}

type AssistantModel struct {
	Provider      string           `json:"provider"`
	Model         string           `json:"model"`
	Temperature   float64          `json:"temperature"`
	SystemMessage string           `json:"systemMessage"`
	Functions     []FunctionSchema `json:"functions"`
}

type AssistantVoice struct {
	Provider        string  `json:"provider"`
	VoiceID         string  `json:"voiceId"`
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarityBoost"`
}

type AssistantTranscriber struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Language string `json:"language"`
}

type FunctionSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// BuildAssistant assembles the complete per-call assistant configuration for
// a tenant. Fails with ErrIncompleteConfig when the tenant record cannot
// produce a full script.
func BuildAssistant(t model.Tenant, mc ModelConfig, vc VoiceConfig) (Assistant, error) {
	system, err := BuildSystemPrompt(t)
	if err != nil {
		return Assistant{}, err
	}

	return Assistant{
		Model: AssistantModel{
			Provider:      mc.Provider,
			Model:         mc.Name,
			Temperature:   mc.Temperature,
			SystemMessage: system,
			Functions:     []FunctionSchema{endCallReportSchema()},
		},
		Voice: AssistantVoice{
			Provider:        vc.Provider,
			VoiceID:         vc.VoiceID,
			Stability:       vc.Stability,
			SimilarityBoost: vc.SimilarityBoost,
		},
		FirstMessage:   BuildFirstMessage(t),
		EndCallMessage: "No worries, have a good one!",
		Transcriber: AssistantTranscriber{
			Provider: "deepgram",
			Model:    "nova-2",
			Language: "en-AU",
		},
		SilenceTimeoutSeconds:  15,
		MaxDurationSeconds:     300,
		EndCallFunctionEnabled: true,
	}, nil
}

func endCallReportSchema() FunctionSchema {
	return FunctionSchema{
		Name:        "end_call_report",
		Description: "Submit the call summary report when the call is ending with a real customer",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"caller_name":      map[string]any{"type": "string", "description": "Customer name"},
				"caller_phone":     map[string]any{"type": "string", "description": "Customer phone number"},
				"suburb":           map[string]any{"type": "string", "description": "Customer suburb/location"},
				"job_description":  map[string]any{"type": "string", "description": "What job they need done — be specific"},
				"urgency":          map[string]any{"type": "string", "enum": []string{"normal", "soon", "emergency"}, "description": "How urgent is the job"},
				"preferred_timing": map[string]any{"type": "string", "description": "When the customer wants the work done"},
				"notes":            map[string]any{"type": "string", "description": "Any extra notes from the call"},
				"is_spam":          map[string]any{"type": "boolean", "description": "Whether the call was spam/sales"},
			},
			"required": []string{"caller_name", "caller_phone", "job_description", "urgency", "is_spam"},
		},
	}
}
