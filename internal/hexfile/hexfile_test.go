package hexfile

import (
	"strconv"
	"strings"
	"testing"

	"github.com/tomstdenis/useqasm/internal/assembler"
	"github.com/tomstdenis/useqasm/internal/variant"
)

func build(t *testing.T, name variant.Name, source string) *assembler.Assembler {
	t.Helper()
	v, err := variant.Builtin(name)
	if err != nil {
		t.Fatalf("variant.Builtin: %v", err)
	}
	a := assembler.New(v)
	if err := a.Assemble(strings.Split(source, "\n")); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return a
}

func TestResolveForwardJump(t *testing.T) {
	a := build(t, variant.Micro256, ":L0\nJMP L1\n:L1\nRET\n")
	if err := Resolve(a); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// target (1) - (pc(0)+1) = 0.
	if got := a.Image.Slots[0].Byte; got != 0x80 {
		t.Fatalf("JMP byte = %#x, want 0x80", got)
	}
}

func TestResolveJumpOutOfRange(t *testing.T) {
	a := build(t, variant.Micro256, ".ORG 0\nJMP FAR\n.ORG 20\n:FAR\nRET\n")
	if err := Resolve(a); err == nil {
		t.Fatal("expected a jump-range error resolving a target 0x20 bytes past pc 0")
	}
}

func TestResolveForwardJumpToSingleLetterLabel(t *testing.T) {
	// spec worked example: ":a / JMP b / LD 0 / :b" encodes JMP's low
	// nibble as (2-(0+1))=1, opcode byte 0x81. "b" is also a valid hex
	// digit, so this pins down that label lookup wins over parsing it
	// as the literal 0xB.
	a := build(t, variant.Micro256, ":a\nJMP b\nLD 0\n:b\n")
	if err := Resolve(a); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := a.Image.Slots[0].Byte; got != 0x81 {
		t.Fatalf("JMP b byte = %#x, want 0x81", got)
	}
}

func TestResolveShortJumpFarthestTarget(t *testing.T) {
	// pc+16 is the farthest byte a short JMP can reach; it encodes as
	// nibble 15, not 0 -- the range is inclusive on both ends.
	a := build(t, variant.Micro256, ".ORG 0\nJMP FAR\n.ORG 10\n:FAR\nRET\n")
	if err := Resolve(a); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := a.Image.Slots[0].Byte; got != 0x8F {
		t.Fatalf("JMP to pc+16 byte = %#x, want 0x8F (offset 15)", got)
	}
}

func TestResolveShortJumpOneTooFar(t *testing.T) {
	a := build(t, variant.Micro256, ".ORG 0\nJMP FAR\n.ORG 11\n:FAR\nRET\n")
	if err := Resolve(a); err == nil {
		t.Fatal("pc+17 is one byte past JMP's reach and should fail to resolve")
	}
}

func TestResolveUnknownLabel(t *testing.T) {
	a := build(t, variant.Micro256, "JMP NOWHERE\n")
	if err := Resolve(a); err == nil {
		t.Fatal("expected an unresolved-label error")
	}
}

func TestResolveLabelBeatsSymbolOfSameName(t *testing.T) {
	// The original resolver checks code labels before .EQU symbols; a
	// name defined as both should resolve to the label's address.
	a := build(t, variant.Micro256, "JMP TARGET\n:TARGET\nRET\n.EQU TARGET 99\n")
	if err := Resolve(a); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := a.Image.Slots[0].Byte; got != 0x80 {
		t.Fatalf("JMP TARGET byte = %#x, want 0x80 (resolved against the label at pc 1, not the .EQU 99)", got)
	}
}

func TestResolveIMM12Absolute(t *testing.T) {
	// GOAL starts with a letter, so the encoder defers it to an .EQU
	// lookup in pass 2 instead of trying to parse it as a number.
	a := build(t, variant.Extended4096, "JMP GOAL\n.EQU GOAL 123\n")
	if err := Resolve(a); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if a.Image.Slots[0].Byte != 0x81 || a.Image.Slots[1].Byte != 0x23 {
		t.Fatalf("JMP GOAL -> %#x %#x, want 0x81 0x23", a.Image.Slots[0].Byte, a.Image.Slots[1].Byte)
	}
}

func TestWriteProducesExactLineCount(t *testing.T) {
	a := build(t, variant.Micro256, ":START\nLD 1\nRET\n")
	if err := Resolve(a); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	out := Write(a.Image)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 256+3 {
		t.Fatalf("got %d lines, want %d (ROM_SIZE+3)", len(lines), 256+3)
	}
	if lines[0] != "#File_format=Hex" || lines[1] != "#Address_depth=256" || lines[2] != "#Data_width=8" {
		t.Fatalf("unexpected header: %v", lines[:3])
	}
	for i, l := range lines[3:] {
		if len(l) != 2 {
			t.Fatalf("line %d (%q) is not a two-digit hex byte", i+3, l)
		}
		if _, err := strconv.ParseUint(l, 16, 8); err != nil {
			t.Fatalf("line %d (%q) is not valid hex: %v", i+3, l, err)
		}
		if l != strings.ToUpper(l) {
			t.Fatalf("line %d (%q) is not uppercase", i+3, l)
		}
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	a1 := build(t, variant.Micro256, ":START\nLD 1\nRET\n")
	a2 := build(t, variant.Micro256, ":START\nLD 1\nRET\n")
	if err := Resolve(a1); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := Resolve(a2); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if Write(a1.Image) != Write(a2.Image) {
		t.Fatal("assembling the same source twice should produce identical hex output")
	}
}
