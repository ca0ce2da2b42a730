package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantProvider string
		wantModel    string
		wantKey      string
	}{
		{
			name:         "defaults",
			env:          map[string]string{},
			wantProvider: "gemini",
			wantModel:    "gemini-2.5-flash",
		},
		{
			name:         "generic API_KEY",
			env:          map[string]string{"API_KEY": "k1"},
			wantProvider: "gemini",
			wantModel:    "gemini-2.5-flash",
			wantKey:      "k1",
		},
		{
			name:         "provider key env",
			env:          map[string]string{"GEMINI_API_KEY": "k2"},
			wantProvider: "gemini",
			wantModel:    "gemini-2.5-flash",
			wantKey:      "k2",
		},
		{
			name:         "API_KEY wins over provider key",
			env:          map[string]string{"API_KEY": "k1", "GEMINI_API_KEY": "k2"},
			wantProvider: "gemini",
			wantModel:    "gemini-2.5-flash",
			wantKey:      "k1",
		},
		{
			name:         "provider switch resets model",
			env:          map[string]string{"LEXIS_PROVIDER": "openai", "OPENAI_API_KEY": "sk"},
			wantProvider: "openai",
			wantModel:    "gpt-4o-mini",
			wantKey:      "sk",
		},
		{
			name:         "explicit model",
			env:          map[string]string{"LEXIS_PROVIDER": "ollama", "LEXIS_MODEL": "qwen2.5:7b"},
			wantProvider: "ollama",
			wantModel:    "qwen2.5:7b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.applyEnv(envMap(tt.env))
			if cfg.Provider != tt.wantProvider {
				t.Errorf("Provider = %q, want %q", cfg.Provider, tt.wantProvider)
			}
			if cfg.Model != tt.wantModel {
				t.Errorf("Model = %q, want %q", cfg.Model, tt.wantModel)
			}
			if cfg.APIKey != tt.wantKey {
				t.Errorf("APIKey = %q, want %q", cfg.APIKey, tt.wantKey)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "gemini with key", cfg: Config{Provider: "gemini", APIKey: "k"}},
		{name: "gemini without key", cfg: Config{Provider: "gemini"}, wantErr: ErrMissingAPIKey},
		{name: "ollama needs no key", cfg: Config{Provider: "ollama"}},
		{name: "unknown provider", cfg: Config{Provider: "nope"}, wantErr: ErrUnknownProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMissingKeyNamesSignupURL(t *testing.T) {
	err := (&Config{Provider: "groq"}).Validate()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Validate() = %v, want %v", err, ErrMissingAPIKey)
	}
	for _, want := range []string{"GROQ_API_KEY", "https://console.groq.com/keys"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}
}

func TestValidateCustomNeedsBaseURL(t *testing.T) {
	cfg := Config{Provider: "custom"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for custom provider without base_url")
	}
	cfg.BaseURL = "http://localhost:8080/v1"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	got, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil || got != nil {
		t.Fatalf("Load(missing) = %v, %v; want nil, nil", got, err)
	}

	path := filepath.Join(dir, "config.yaml")
	data := "provider: anthropic\nmodel: claude-3-5-haiku-20241022\napi_key: abc\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	got, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Provider != "anthropic" || got.Model != "claude-3-5-haiku-20241022" || got.APIKey != "abc" {
		t.Errorf("Load() = %+v", got)
	}

	if err := os.WriteFile(path, []byte("provider: [broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestMergeProviderResetsModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.merge(&Config{Provider: "groq"})
	if cfg.Model != "" {
		t.Errorf("Model = %q, want empty before env defaults", cfg.Model)
	}
	cfg.applyEnv(envMap(nil))
	if cfg.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Model = %q, want groq default", cfg.Model)
	}
}
