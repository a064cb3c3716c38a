package variant

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridePartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(path, []byte("fill_byte: 255\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	base, _ := Builtin(Micro256)
	out, err := LoadOverride(path, base)
	if err != nil {
		t.Fatalf("LoadOverride: %v", err)
	}
	if out.FillByte != 0xFF {
		t.Fatalf("FillByte = %#x, want 0xFF", out.FillByte)
	}
	if out.ROMSize != base.ROMSize {
		t.Fatalf("ROMSize should be unchanged: got %d, want %d", out.ROMSize, base.ROMSize)
	}
}

func TestLoadOverrideRejectsIncompatibleSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(path, []byte("rom_size: 9000\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	base, _ := Builtin(Micro256)
	if _, err := LoadOverride(path, base); err == nil {
		t.Fatal("expected an error for rom_size exceeding pc_width's range")
	}
}

func TestLoadOverrideMissingFile(t *testing.T) {
	base, _ := Builtin(Micro256)
	if _, err := LoadOverride(filepath.Join(t.TempDir(), "missing.yaml"), base); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
