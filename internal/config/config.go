// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Tenants struct {
		File string `yaml:"file"`
	} `yaml:"tenants"`

	Voice struct {
		Provider        string  `yaml:"provider"`
		VoiceID         string  `yaml:"voice_id"`
		Stability       float64 `yaml:"stability"`
		SimilarityBoost float64 `yaml:"similarity_boost"`
	} `yaml:"voice"`

	Model struct {
		Provider    string  `yaml:"provider"`
		Name        string  `yaml:"name"`
		Temperature float64 `yaml:"temperature"`
	} `yaml:"model"`

	SMS struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"sms"`

	Workers int `yaml:"workers"`

	// Secrets come from the environment, never from the yaml file.
	Secrets Secrets `yaml:"-"`
}

type Secrets struct {
	WebhookSecret    string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioSMSFrom    string
	JWTSecret        string
}

func (c *Config) SMSTimeout() time.Duration {
	return time.Duration(c.SMS.TimeoutSeconds) * time.Second
}

// LoadConfig reads the yaml file and pulls secrets from the environment.
// A .env file is honored when present so local runs work out of the box.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Tenants.File == "" {
		cfg.Tenants.File = "tradies.yaml"
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.SMS.TimeoutSeconds <= 0 {
		cfg.SMS.TimeoutSeconds = 10
	}
	if cfg.Model.Provider == "" {
		cfg.Model.Provider = "openai"
	}
	if cfg.Model.Name == "" {
		cfg.Model.Name = "gpt-4o-mini"
	}
	if cfg.Model.Temperature == 0 {
		cfg.Model.Temperature = 0.7
	}
	if cfg.Voice.VoiceID == "" {
		return nil, errors.New("voice.voice_id is required")
	}
	if cfg.Voice.Provider == "" {
		cfg.Voice.Provider = "eleven-labs"
	}

	cfg.Secrets = Secrets{
		WebhookSecret:    os.Getenv("VAPI_WEBHOOK_SECRET"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioSMSFrom:    os.Getenv("TWILIO_SMS_FROM"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}
	if cfg.Secrets.WebhookSecret == "" {
		return nil, errors.New("VAPI_WEBHOOK_SECRET is required")
	}

	return cfg, nil
}
