package app

import (
	"os"
	"path/filepath"
	"testing"
)

// clearConfigEnv blanks every variable LoadConfig reads so tests see a
// clean environment regardless of the host shell.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CSVDF_CONFIG", "CSVDF_VERBOSE", "CSVDF_QUIET", "CSVDF_NO_COLOR",
		"CSVDF_FORMAT", "CSVDF_PROFILE",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT",
	} {
		t.Setenv(key, "")
	}
}

// TestLoadConfig_Defaults verifies defaults with a clean environment.
func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Verbose {
		t.Error("Verbose should default to false")
	}
	if config.ProfileFile != "" {
		t.Errorf("ProfileFile = %q, want empty", config.ProfileFile)
	}
	// LogLevel stays empty so flag shortcuts keep their precedence.
	if config.LogLevel != "" {
		t.Errorf("LogLevel = %q, want empty", config.LogLevel)
	}
	if config.LogFormat != "auto" {
		t.Errorf("LogFormat = %q, want auto", config.LogFormat)
	}
	if config.LogOutput != "stderr" {
		t.Errorf("LogOutput = %q, want stderr", config.LogOutput)
	}
}

// TestLoadConfig_EnvPrefix verifies CSVDF_ environment variables are read.
func TestLoadConfig_EnvPrefix(t *testing.T) {
	clearConfigEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("CSVDF_PROFILE", "people.yaml")
	t.Setenv("CSVDF_FORMAT", "yaml")
	t.Setenv("CSVDF_VERBOSE", "true")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.ProfileFile != "people.yaml" {
		t.Errorf("ProfileFile = %q, want people.yaml", config.ProfileFile)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", config.Format)
	}
	if !config.Verbose {
		t.Error("Verbose should be true")
	}
}

// TestLoadConfig_EnvFiles verifies .env loading and .env.local precedence.
func TestLoadConfig_EnvFiles(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	// t.Setenv leaves the variables present but empty; unset them so
	// godotenv is allowed to define them.
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_OUTPUT")

	writeEnvFile(t, dir, ".env", "LOG_LEVEL=debug\nLOG_OUTPUT=stdout\n")
	writeEnvFile(t, dir, ".env.local", "LOG_LEVEL=error\n")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error (.env.local should win)", config.LogLevel)
	}
	if config.LogOutput != "stdout" {
		t.Errorf("LogOutput = %q, want stdout (from .env)", config.LogOutput)
	}
}

func writeEnvFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// TestConfig_UpdateFromFlags verifies flag precedence over loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:   "yaml",
		LogLevel: "debug",
	}

	// Empty strings leave the loaded values alone.
	config.UpdateFromFlags(true, false, true, "", "")
	if !config.Verbose || config.Quiet || !config.NoColor {
		t.Errorf("booleans not applied: %+v", config)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %q, want yaml (empty flag should not override)", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug (empty flag should not override)", config.LogLevel)
	}

	// Non-empty strings override.
	config.UpdateFromFlags(false, true, false, "json", "error")
	if config.Verbose || !config.Quiet || config.NoColor {
		t.Errorf("booleans not applied: %+v", config)
	}
	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", config.LogLevel)
	}
}

// TestGetEnvOrDefault tests the env fallback helper.
func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("CSVDF_TEST_KEY", "set")
	if got := getEnvOrDefault("CSVDF_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("getEnvOrDefault() = %q, want set", got)
	}

	t.Setenv("CSVDF_TEST_KEY", "")
	if got := getEnvOrDefault("CSVDF_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("getEnvOrDefault() = %q, want fallback for empty value", got)
	}

	if got := getEnvOrDefault("CSVDF_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnvOrDefault() = %q, want fallback for missing value", got)
	}
}
