package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NumColumns != 2 {
		t.Errorf("DefaultConfig().NumColumns = %d, want 2", cfg.NumColumns)
	}
	if cfg.Devel {
		t.Errorf("DefaultConfig().Devel = true, want false")
	}
}

func TestLoad_WritesDefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Load()
	if cfg.NumColumns != 2 {
		t.Errorf("Load().NumColumns = %d, want 2", cfg.NumColumns)
	}

	if _, err := os.Stat(filepath.Join(home, ".tcvtrc.yaml")); err != nil {
		t.Errorf("Load() did not write a default config file: %v", err)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	contents := "num_columns: 4\ndefault_shell: /bin/zsh\n"
	if err := os.WriteFile(filepath.Join(home, ".tcvtrc.yaml"), []byte(contents), 0644); err != nil {
		t.Fatalf("write fixture config: %v", err)
	}

	cfg := Load()
	if cfg.NumColumns != 4 {
		t.Errorf("Load().NumColumns = %d, want 4", cfg.NumColumns)
	}
	if cfg.DefaultShell != "/bin/zsh" {
		t.Errorf("Load().DefaultShell = %q, want /bin/zsh", cfg.DefaultShell)
	}
}

func TestLoad_ClampsInvalidNumColumns(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	contents := "num_columns: 0\n"
	if err := os.WriteFile(filepath.Join(home, ".tcvtrc.yaml"), []byte(contents), 0644); err != nil {
		t.Fatalf("write fixture config: %v", err)
	}

	cfg := Load()
	if cfg.NumColumns != 1 {
		t.Errorf("Load().NumColumns = %d, want clamped to 1", cfg.NumColumns)
	}
}

func TestLoad_EnvOverridesDevel(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TCVT_DEVEL", "1")

	cfg := Load()
	if !cfg.Devel {
		t.Errorf("Load().Devel = false with TCVT_DEVEL set, want true")
	}
}
