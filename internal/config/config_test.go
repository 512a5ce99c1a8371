package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config falls back to defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "explicit paths kept",
			config: Config{
				Paths: PathsConfig{
					Transcripts: "data/interviews",
					Codebook:    "data/codebook.csv",
					Output:      "data/coded",
				},
			},
			wantErr: false,
		},
		{
			name: "unknown provider",
			config: Config{
				Model: ModelConfig{Provider: "claude"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Transcripts != "transcripts" {
		t.Errorf("Transcripts = %v, want %v", cfg.Paths.Transcripts, "transcripts")
	}
	if cfg.Paths.Output != "coded_output" {
		t.Errorf("Output = %v, want %v", cfg.Paths.Output, "coded_output")
	}
	if cfg.Model.Provider != "ollama" {
		t.Errorf("Provider = %v, want %v", cfg.Model.Provider, "ollama")
	}
	if cfg.Model.Name != "mistral" {
		t.Errorf("Name = %v, want %v", cfg.Model.Name, "mistral")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, "info")
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  transcripts: "data/interviews"
  codebook: "data/codebook.xlsx"
  output: "data/coded"

model:
  provider: "gemini"
  name: "gemini-2.5-flash"

logging:
  level: "debug"

processing:
  halt_on_error: true
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Transcripts != "data/interviews" {
		t.Errorf("Transcripts = %v, want %v", cfg.Paths.Transcripts, "data/interviews")
	}
	if cfg.Model.Provider != "gemini" {
		t.Errorf("Provider = %v, want %v", cfg.Model.Provider, "gemini")
	}
	if !cfg.Processing.HaltOnError {
		t.Error("HaltOnError = false, want true")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
