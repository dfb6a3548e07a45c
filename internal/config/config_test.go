package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FromRoot(t *testing.T) {
	dir := t.TempDir()
	data := []byte("version: 1\nscripts:\n  - ./build.sh\n  - ./test.sh\nwindow: 5\ninterval: 100ms\n")
	if err := os.WriteFile(filepath.Join(dir, ".orca"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Root != dir {
		t.Errorf("Root = %q, want %q", res.Root, dir)
	}
	if len(res.Config.Scripts) != 2 || res.Config.Scripts[0] != "./build.sh" {
		t.Errorf("Scripts = %v", res.Config.Scripts)
	}
	if got := res.Config.WindowSize(); got != 5 {
		t.Errorf("WindowSize() = %d, want 5", got)
	}
	if got := res.Config.RenderInterval(); got != 100*time.Millisecond {
		t.Errorf("RenderInterval() = %v, want 100ms", got)
	}
}

func TestLoad_FromSubdirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".orca"), []byte("version: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "scripts", "ci")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := Load(sub)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Root != root {
		t.Errorf("Root = %q, want %q", res.Root, root)
	}
	if res.Config.Version != 2 {
		t.Errorf("Version = %d, want 2", res.Config.Version)
	}
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	res, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Root != dir {
		t.Errorf("Root = %q, want %q (fallback to dir)", res.Root, dir)
	}
	if got := res.Config.WindowSize(); got != DefaultWindow {
		t.Errorf("WindowSize() = %d, want default %d", got, DefaultWindow)
	}
	if got := res.Config.RenderInterval(); got != DefaultInterval {
		t.Errorf("RenderInterval() = %v, want default %v", got, DefaultInterval)
	}
}

func TestRenderInterval_IgnoresInvalidDuration(t *testing.T) {
	cfg := &Config{RawInterval: "soon"}
	if got := cfg.RenderInterval(); got != DefaultInterval {
		t.Errorf("RenderInterval() = %v, want default %v", got, DefaultInterval)
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".orca"), []byte("scripts: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}
