package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"constgen/internal/config"
	"constgen/internal/resolver"
)

func strPtr(s string) *string { return &s }

func runGenerator(t *testing.T, cfg config.Config) error {
	t.Helper()

	return New(cfg, zaptest.NewLogger(t)).Run()
}

func TestRunResolvesFromFile(t *testing.T) {
	dir := t.TempDir()
	versionFile := filepath.Join(dir, "VERSION")
	if err := os.WriteFile(versionFile, []byte("1.2.3\n"), 0o644); err != nil {
		t.Fatalf("write version file: %v", err)
	}
	output := filepath.Join(dir, "buildinfo", "constants_gen.go")

	t.Setenv("CONSTGEN_TEST_VERSION", "ignored")

	cfg := config.Config{
		Package: "buildinfo",
		Output:  output,
		Constants: []config.Constant{
			{Name: "Version", File: versionFile, Env: "CONSTGEN_TEST_VERSION", Priority: config.PriorityFile},
		},
	}
	if err := runGenerator(t, cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	want := `Version = "1.2.3\n"`
	if !containsLine(string(data), want) {
		t.Fatalf("generated file missing %q:\n%s", want, data)
	}
}

func TestRunFallsBackToEnv(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "constants_gen.go")

	t.Setenv("CONSTGEN_TEST_VERSION", "9.9.9")

	cfg := config.Config{
		Package: "buildinfo",
		Output:  output,
		Constants: []config.Constant{
			{Name: "Version", File: filepath.Join(dir, "no_such_file"), Env: "CONSTGEN_TEST_VERSION", Priority: config.PriorityFile},
		},
	}
	if err := runGenerator(t, cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if !containsLine(string(data), `Version = "9.9.9"`) {
		t.Fatalf("expected env fallback in output:\n%s", data)
	}
}

func TestRunEnvPriorityBeatsFile(t *testing.T) {
	dir := t.TempDir()
	versionFile := filepath.Join(dir, "VERSION")
	if err := os.WriteFile(versionFile, []byte("from-file"), 0o644); err != nil {
		t.Fatalf("write version file: %v", err)
	}
	output := filepath.Join(dir, "constants_gen.go")

	t.Setenv("CONSTGEN_TEST_VERSION", "from-env")

	cfg := config.Config{
		Package: "buildinfo",
		Output:  output,
		Constants: []config.Constant{
			{Name: "Version", File: versionFile, Env: "CONSTGEN_TEST_VERSION", Priority: config.PriorityEnv},
		},
	}
	if err := runGenerator(t, cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if !containsLine(string(data), `Version = "from-env"`) {
		t.Fatalf("expected env priority in output:\n%s", data)
	}
}

func TestRunUsesDefault(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "constants_gen.go")

	os.Unsetenv("CONSTGEN_TEST_UNSET")

	cfg := config.Config{
		Package: "buildinfo",
		Output:  output,
		Constants: []config.Constant{
			{
				Name:     "Version",
				File:     filepath.Join(dir, "no_such_file"),
				Env:      "CONSTGEN_TEST_UNSET",
				Default:  strPtr("fallback string"),
				Priority: config.PriorityFile,
			},
		},
	}
	if err := runGenerator(t, cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	if !containsLine(string(data), `Version = "fallback string"`) {
		t.Fatalf("expected default in output:\n%s", data)
	}
}

func TestRunExhaustedWritesNothing(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "constants_gen.go")

	os.Unsetenv("CONSTGEN_TEST_UNSET")

	cfg := config.Config{
		Package: "buildinfo",
		Output:  output,
		Constants: []config.Constant{
			{Name: "Good", File: filepath.Join(dir, "no_such_file"), Env: "CONSTGEN_TEST_UNSET", Default: strPtr("ok"), Priority: config.PriorityFile},
			{Name: "Bad", File: filepath.Join(dir, "also_missing"), Env: "CONSTGEN_TEST_UNSET", Priority: config.PriorityFile},
		},
	}

	err := runGenerator(t, cfg)
	if !errors.Is(err, resolver.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file after failed run")
	}
}

// containsLine reports whether any line of src, trimmed of surrounding
// whitespace, equals want.
func containsLine(src, want string) bool {
	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}
