package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
tenants:
  file: my-tradies.yaml
voice:
  provider: eleven-labs
  voice_id: voice-123
  stability: 0.6
  similarity_boost: 0.8
sms:
  timeout_seconds: 5
workers: 3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("VAPI_WEBHOOK_SECRET", "hook-secret")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_SMS_FROM", "+61480000000")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoadConfig(t *testing.T) {
	setSecrets(t)

	cfg, err := LoadConfig(writeConfig(t, testYAML))
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "my-tradies.yaml", cfg.Tenants.File)
	require.Equal(t, "voice-123", cfg.Voice.VoiceID)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, 5*time.Second, cfg.SMSTimeout())

	require.Equal(t, "hook-secret", cfg.Secrets.WebhookSecret)
	require.Equal(t, "AC123", cfg.Secrets.TwilioAccountSID)
	require.Equal(t, "+61480000000", cfg.Secrets.TwilioSMSFrom)
}

func TestLoadConfigDefaults(t *testing.T) {
	setSecrets(t)

	cfg, err := LoadConfig(writeConfig(t, "voice:\n  voice_id: voice-123\n"))
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "tradies.yaml", cfg.Tenants.File)
	require.Equal(t, "eleven-labs", cfg.Voice.Provider)
	require.Equal(t, "openai", cfg.Model.Provider)
	require.Equal(t, "gpt-4o-mini", cfg.Model.Name)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, 10*time.Second, cfg.SMSTimeout())
}

func TestLoadConfigRequiresVoiceID(t *testing.T) {
	setSecrets(t)

	_, err := LoadConfig(writeConfig(t, "workers: 1\n"))
	require.Error(t, err)
}

func TestLoadConfigRequiresWebhookSecret(t *testing.T) {
	setSecrets(t)
	t.Setenv("VAPI_WEBHOOK_SECRET", "")

	_, err := LoadConfig(writeConfig(t, testYAML))
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
