package rom

import (
	"testing"

	"github.com/tomstdenis/useqasm/internal/variant"
)

func newImage(t *testing.T) *Image {
	t.Helper()
	v, err := variant.Builtin(variant.Micro256)
	if err != nil {
		t.Fatalf("variant.Builtin: %v", err)
	}
	return New(v)
}

func TestNewFillsImage(t *testing.T) {
	img := newImage(t)
	if len(img.Slots) != 256 {
		t.Fatalf("len(Slots) = %d, want 256", len(img.Slots))
	}
	for i, s := range img.Slots {
		if s.Byte != img.Variant.FillByte {
			t.Fatalf("slot %d = %#x, want fill byte %#x", i, s.Byte, img.Variant.FillByte)
		}
		if s.Written() {
			t.Fatalf("slot %d should not be marked written", i)
		}
	}
}

func TestAdvanceNoWrap(t *testing.T) {
	img := newImage(t)
	img.PC = 10
	if img.Advance(5) {
		t.Fatal("Advance(5) from 10 should not wrap in a 256-byte ROM")
	}
	if img.PC != 15 {
		t.Fatalf("PC = %d, want 15", img.PC)
	}
}

func TestAdvanceWraps(t *testing.T) {
	img := newImage(t)
	img.PC = 250
	if !img.Advance(10) {
		t.Fatal("Advance(10) from 250 should wrap in a 256-byte ROM")
	}
	if img.PC != 4 {
		t.Fatalf("PC = %d, want 4", img.PC)
	}
}

func TestWrapFoldsNegative(t *testing.T) {
	img := newImage(t)
	if got := img.Wrap(-1); got != 255 {
		t.Fatalf("Wrap(-1) = %d, want 255", got)
	}
}
