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
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing input path",
			config: Config{
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing output path",
			config: Config{
				Paths: PathsConfig{
					Input: "data/input",
				},
			},
			wantErr: true,
		},
		{
			name: "negative batch size",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
				Batch: BatchConfig{Size: -1},
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
	cfg := Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Batch.Size != 100 {
		t.Errorf("Batch.Size = %d, want 100", cfg.Batch.Size)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("Performance.MaxConcurrent = %d, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "data/input"
  output: "data/output"

batch:
  size: 50

logging:
  level: "debug"
  format: "text"

performance:
  max_concurrent: 4
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Batch.Size != 50 {
		t.Errorf("Batch.Size = %d, want 50", cfg.Batch.Size)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Performance.MaxConcurrent != 4 {
		t.Errorf("MaxConcurrent = %d, want 4", cfg.Performance.MaxConcurrent)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
