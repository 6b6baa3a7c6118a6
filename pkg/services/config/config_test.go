package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// When
	cfg, err := Load("")

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Report.Format != "text" {
		t.Errorf("expected Report.Format=text, got %s", cfg.Report.Format)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected Log.Level=info, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("expected Log.Format=console, got %s", cfg.Log.Format)
	}
}

func TestLoad_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "valid.yaml")
	// No indentation issues inside the backtick block
	content := `report:
  format: "json"
log:
  level: "debug"
  format: "json"`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := Load(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Report.Format != "json" {
		t.Errorf("expected Report.Format=json, got %s", cfg.Report.Format)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected Log.Level=debug, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected Log.Format=json, got %s", cfg.Log.Format)
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	err := os.WriteFile(path, []byte("report: format: bad"), 0o644)
	if err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}

	// When
	_, err = Load(path)

	// Then
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoad_UnknownFormat_FailsValidation(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad-format.yaml")
	err := os.WriteFile(path, []byte("report:\n  format: xml"), 0o644)
	if err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// When
	_, err = Load(path)

	// Then
	if err == nil {
		t.Error("expected validation error for format=xml, got nil")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	// Given
	t.Setenv("SALES_ATLAS_REPORT_FORMAT", "json")

	// When
	cfg, err := Load("")

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Report.Format != "json" {
		t.Errorf("expected env override to json, got %s", cfg.Report.Format)
	}
}
