package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "screwchick.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg ScrewChickConfig
	if err := yaml.Unmarshal(GetDefaultYAML("screwchick"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultScrewChickConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultScrewChickConfig() %+v", cfg, DefaultScrewChickConfig())
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML should return nil for unknown games")
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, "grid:\n  width: 30\nspeed:\n  pickup_increase: 0.5\n")

	cfg, err := LoadScrewChick(path)
	if err != nil {
		t.Fatalf("LoadScrewChick() failed: %v", err)
	}
	if cfg.Grid.Width != 30 {
		t.Errorf("Grid.Width = %d, expected 30", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 16 {
		t.Errorf("Grid.Height = %d, expected default 16", cfg.Grid.Height)
	}
	if cfg.Speed.PickupIncrease != 0.5 {
		t.Errorf("PickupIncrease = %v, expected 0.5", cfg.Speed.PickupIncrease)
	}
	if cfg.Input.QueueDepth != 2 {
		t.Errorf("QueueDepth = %d, expected default 2", cfg.Input.QueueDepth)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadScrewChick(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := writeConfig(t, "grid: [not, a, map]\n")
	if _, err := LoadScrewChick(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := writeConfig(t, "speed:\n  base_grid_speed: 0\n")
	cfg, err := LoadScrewChick(invalid)
	if err == nil {
		t.Error("expected validation error for zero base speed")
	}
	if cfg != DefaultScrewChickConfig() {
		t.Error("invalid config should fall back to defaults")
	}
}

func TestTryLoadSkipsInvalid(t *testing.T) {
	if _, ok := tryLoad(writeConfig(t, "input:\n  queue_depth: 0\n")); ok {
		t.Error("tryLoad should reject queue_depth 0")
	}
	cfg, ok := tryLoad(writeConfig(t, "input:\n  queue_depth: 3\n"))
	if !ok || cfg.Input.QueueDepth != 3 {
		t.Errorf("tryLoad = (%+v, %v), expected queue depth 3", cfg, ok)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScrewChickConfig)
		ok     bool
	}{
		{"defaults", func(*ScrewChickConfig) {}, true},
		{"tiny grid", func(c *ScrewChickConfig) { c.Grid.Width = 2 }, false},
		{"zero initial", func(c *ScrewChickConfig) { c.Speed.Initial = 0 }, false},
		{"negative pickup", func(c *ScrewChickConfig) { c.Speed.PickupIncrease = -1 }, false},
		{"decay above one", func(c *ScrewChickConfig) { c.Speed.DeliveryDecay = 1.5 }, false},
		{"no queue", func(c *ScrewChickConfig) { c.Input.QueueDepth = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultScrewChickConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	if _, err := ParseDifficultyPreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
	p, err := ParseDifficultyPreset("hard")
	if err != nil || p != DifficultyHard {
		t.Fatalf("ParseDifficultyPreset(hard) = (%q, %v)", p, err)
	}

	cfg := DefaultScrewChickConfig()
	ApplyScrewChickPreset(&cfg, DifficultyHard)
	if cfg.Speed.BaseGridSpeed != 3.0 {
		t.Errorf("hard BaseGridSpeed = %v, expected 3.0", cfg.Speed.BaseGridSpeed)
	}

	cfg = DefaultScrewChickConfig()
	ApplyScrewChickPreset(&cfg, DifficultyFixed)
	if cfg.Speed.PickupIncrease != 0 || cfg.Speed.DeliveryFailIncrease != 0 {
		t.Error("fixed preset should disable speed increases")
	}
	if cfg.Speed.BaseGridSpeed != 2.0 {
		t.Errorf("fixed preset should keep base speed, got %v", cfg.Speed.BaseGridSpeed)
	}
}
