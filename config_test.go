package planetary

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
[integration]
method = "rk4"
time_step = 3600.0
softening = 1000.0
max_acceleration = 50.0
max_velocity = 3.0e8
collision_threshold = 1.5

[forces]
gravity = true
relativistic = true
tidal = true
drag = false
radiation = true
magnetic = false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "planetary.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Method != RK4 {
		t.Fatalf("method = %s", cfg.Method)
	}
	if cfg.TimeStep != 3600 || cfg.Softening != 1000 || cfg.MaxAcceleration != 50 {
		t.Fatalf("numeric settings wrong: %+v", cfg)
	}
	if cfg.MaxVelocity != 3.0e8 || cfg.CollisionThreshold != 1.5 {
		t.Fatalf("numeric settings wrong: %+v", cfg)
	}
	if !cfg.Gravity || !cfg.Relativistic || !cfg.Tidal || !cfg.Radiation {
		t.Fatalf("force flags wrong: %+v", cfg)
	}
	if cfg.Drag || cfg.Magnetic {
		t.Fatalf("force flags wrong: %+v", cfg)
	}
	// The loaded configuration must build an integrator directly.
	if _, err := NewIntegrator(cfg); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "[integration]\nmethod = \"euler\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.Method != Euler {
		t.Fatalf("method = %s", cfg.Method)
	}
	if cfg.TimeStep != def.TimeStep || cfg.CollisionThreshold != def.CollisionThreshold {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if !cfg.Gravity {
		t.Fatal("gravity must default to on")
	}
}

func TestLoadConfigBadMethod(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "[integration]\nmethod = \"dopri853\"\n")); err == nil {
		t.Fatal("unknown method must be rejected at load time")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatal("missing file must be an error")
	}
}
