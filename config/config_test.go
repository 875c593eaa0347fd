package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRequiresPostgresSection(t *testing.T) {
	dir := t.TempDir()
	cfgYAML := "env:\n  env: test\n  serviceName: cardapio\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfgYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := New()
	if err == nil {
		t.Fatalf("New() = %+v, want error for missing postgres section", cfg)
	}
	if !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("New() error = %q, want it to name the postgres section", err)
	}
}
