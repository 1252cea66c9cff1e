package domswap

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "domswap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFileDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(writeConfig(t, "container_id: my-keeper\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ContainerID != "my-keeper" {
		t.Errorf("ContainerID: got %q, want %q", cfg.ContainerID, "my-keeper")
	}
	if cfg.IslandTag != "astro-island" {
		t.Errorf("IslandTag default: got %q, want %q", cfg.IslandTag, "astro-island")
	}
	if cfg.BeforeEvent != "astro:before-swap" || cfg.AfterEvent != "astro:after-swap" {
		t.Errorf("event defaults: got %q / %q", cfg.BeforeEvent, cfg.AfterEvent)
	}
	if cfg.Collision != CollisionReject {
		t.Errorf("Collision default: got %q, want %q", cfg.Collision, CollisionReject)
	}
}

func TestLoadConfigFileBadPolicy(t *testing.T) {
	if _, err := LoadConfigFile(writeConfig(t, "collision: maybe\n")); err == nil {
		t.Error("unknown collision policy: got nil error, want error")
	}
}

func TestLoadConfigFileBadYAML(t *testing.T) {
	if _, err := LoadConfigFile(writeConfig(t, "collision: [\n")); err == nil {
		t.Error("malformed yaml: got nil error, want error")
	}
}
