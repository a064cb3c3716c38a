package instset

import "testing"

func TestMicro256KnownOpcodes(t *testing.T) {
	cases := map[string]byte{
		"LD":   0x00,
		"ST":   0x10,
		"SETB": 0x20,
		"JMP":  0x80,
		"JNZ":  0x90,
		"JSR":  0xE0,
		"SBIT": 0xF0,
	}
	for mnemonic, want := range cases {
		op, ok := EXEC1Micro256[mnemonic]
		if !ok {
			t.Fatalf("%s missing from EXEC1Micro256", mnemonic)
		}
		if op.Base != want {
			t.Fatalf("%s base = %#x, want %#x", mnemonic, op.Base, want)
		}
	}
}

func TestMicro256BaseOpcodesAreUnique(t *testing.T) {
	seen := make(map[byte]string)
	for name, op := range EXEC1Micro256 {
		n := op.Format.Bytes()
		if n != 1 {
			continue // only one-byte formats are compared; every EXEC1-256 format is one byte.
		}
		if other, ok := seen[op.Base]; ok {
			t.Fatalf("opcode %#x used by both %s and %s", op.Base, name, other)
		}
		seen[op.Base] = name
	}
}

func TestExtended4096FitsSingleByteBudget(t *testing.T) {
	used := 0
	for _, op := range EXEC1Extended4096 {
		switch op.Format {
		case FormatR, FormatSB, FormatIMM12:
			used += 16
		case FormatFull:
			used++
		case FormatIMMS:
			used++
		}
	}
	if used > 256 {
		t.Fatalf("extended instruction set claims %d single-byte codepoints, budget is 256", used)
	}
}

func TestExtended4096FillByteIsNotALiveOpcode(t *testing.T) {
	// 0xE6 is the fill byte written to every unwritten ROM slot in the
	// 4096-byte variant; no mnemonic in this table may claim it, or an
	// unwritten slot would decode as a live instruction instead of a
	// no-op.
	for name, op := range EXEC1Extended4096 {
		lo := op.Base
		hi := op.Base
		switch op.Format {
		case FormatR, FormatSB, FormatIMM12:
			hi = op.Base | 0x0F
		}
		if 0xE6 >= lo && 0xE6 <= hi {
			t.Fatalf("fill byte 0xE6 collides with %s's opcode range %#x-%#x", name, lo, hi)
		}
	}
}

func TestTableDispatch(t *testing.T) {
	if _, ok := Table(true, false)["JMP"]; !ok {
		t.Fatal("Table(256, EXEC1) should contain JMP")
	}
	if _, ok := Table(false, false)["JZ"]; !ok {
		t.Fatal("Table(4096, EXEC1) should contain JZ")
	}
	if _, ok := Table(true, true)["MOV"]; !ok {
		t.Fatal("Table(256, EXEC2) should contain MOV")
	}
}

func TestFormatBytes(t *testing.T) {
	if FormatR.Bytes() != 1 {
		t.Fatalf("FormatR.Bytes() = %d, want 1", FormatR.Bytes())
	}
	if FormatIMM12.Bytes() != 2 {
		t.Fatalf("FormatIMM12.Bytes() = %d, want 2", FormatIMM12.Bytes())
	}
}
