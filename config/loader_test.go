package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
)

type testToolConfig struct {
	ToolConfig `yaml:",inline" mapstructure:",squash"`

	Buffer int `yaml:"buffer" mapstructure:"buffer"`
}

func (c *testToolConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "testtool"
	}
	c.ToolConfig.ApplyDefaults()
}

// fakeFileSystem serves a fixed set of files.
type fakeFileSystem struct {
	files map[string]bool
	env   map[string]string
}

func (f *fakeFileSystem) Exists(path string) bool { return f.files[path] }

func (f *fakeFileSystem) LoadEnv(_ string) error {
	for k, v := range f.env {
		os.Setenv(k, v)
	}
	return nil
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
name: mytool
environment: production
buffer: 25
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	var cfg testToolConfig
	if err := LoadConfig("mytool", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "mytool" || cfg.Environment != "production" {
		t.Fatalf("unexpected base config: %+v", cfg.ToolConfig)
	}
	if cfg.Buffer != 25 {
		t.Fatalf("expected buffer 25, got %d", cfg.Buffer)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("LOGGING_LEVEL", "error")

	var cfg testToolConfig
	if err := LoadConfig("mytool", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("expected env override, got %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_MissingFileIsFine(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{}}

	var cfg testToolConfig
	if err := LoadConfig("mytool", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("a tool without config files must still load: %v", err)
	}
}

func TestLoad_AppliesDefaultsAndValidates(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{}}

	var cfg testToolConfig
	if err := Load("testtool", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "testtool" {
		t.Fatalf("defaults not applied: %+v", cfg.ToolConfig)
	}
	if cfg.Environment != "development" || !cfg.Debug {
		t.Fatalf("expected development defaults, got %+v", cfg.ToolConfig)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.ToolName != "testtool" {
		t.Fatalf("logging defaults not applied: %+v", cfg.Logging)
	}
}

func TestToolConfig_Validate(t *testing.T) {
	cfg := &ToolConfig{Name: "x", Environment: "production"}
	cfg.Logging.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Environment = "qa"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown environment")
	}

	cfg = &ToolConfig{Environment: "development"}
	cfg.Logging.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestFindEnvFile_ToolSpecificFirst(t *testing.T) {
	fs := &fakeFileSystem{files: map[string]bool{
		".env.mytool": true,
		".env":        true,
	}}
	if got := findEnvFile("mytool", fs); got != ".env.mytool" {
		t.Fatalf("expected tool-specific env file, got %q", got)
	}

	fs.files = map[string]bool{".env": true}
	if got := findEnvFile("mytool", fs); got != ".env" {
		t.Fatalf("expected fallback env file, got %q", got)
	}
}

// godotenv is exercised through RealFileSystem.
func TestRealFileSystem_LoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := godotenv.Write(map[string]string{"SYNTHKIT_TEST_KEY": "v"}, path); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	t.Setenv("SYNTHKIT_TEST_KEY", "")
	os.Unsetenv("SYNTHKIT_TEST_KEY")

	rfs := &RealFileSystem{}
	if !rfs.Exists(path) {
		t.Fatal("Exists reported a present file as missing")
	}
	if err := rfs.LoadEnv(path); err != nil {
		t.Fatalf("loading env: %v", err)
	}
	if os.Getenv("SYNTHKIT_TEST_KEY") != "v" {
		t.Fatal("env file variable not loaded")
	}
}
