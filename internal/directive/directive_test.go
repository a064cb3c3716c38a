package directive

import "testing"

func TestClassifyBlankAndComment(t *testing.T) {
	for _, raw := range []string{"", "   ", "; a comment"} {
		l, err := Classify(raw)
		if err != nil {
			t.Fatalf("Classify(%q): %v", raw, err)
		}
		if l.Kind != KindBlank {
			t.Fatalf("Classify(%q).Kind = %v, want KindBlank", raw, l.Kind)
		}
	}
}

func TestClassifyOrg(t *testing.T) {
	l, err := Classify(".ORG 10")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Kind != KindOrg || l.Value != 0x10 {
		t.Fatalf("got %+v, want KindOrg value 0x10", l)
	}
}

func TestClassifyEqu(t *testing.T) {
	l, err := Classify(".EQU COUNT 0F")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Kind != KindEqu || l.Name != "COUNT" || l.Value != 0x0F {
		t.Fatalf("got %+v, want KindEqu COUNT=0x0F", l)
	}
}

func TestClassifyEquMissingValue(t *testing.T) {
	if _, err := Classify(".EQU COUNT"); err == nil {
		t.Fatal("expected an error for an .EQU with no value")
	}
}

func TestClassifyAlign(t *testing.T) {
	l, err := Classify(".ALIGN 10")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Kind != KindAlign || l.Value != 0x10 {
		t.Fatalf("got %+v, want KindAlign value 0x10", l)
	}
}

func TestClassifyDB(t *testing.T) {
	l, err := Classify(".DB FF")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Kind != KindDB || l.Value != 0xFF {
		t.Fatalf("got %+v, want KindDB value 0xFF", l)
	}
}

func TestClassifyMode(t *testing.T) {
	l, err := Classify(".MODE 2")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Kind != KindMode || l.Value != 2 {
		t.Fatalf("got %+v, want KindMode value 2", l)
	}
}

func TestClassifyModeRejectsHex(t *testing.T) {
	if _, err := Classify(".MODE 0A"); err == nil {
		t.Fatal(".MODE takes a decimal value, 0A should be rejected")
	}
}

func TestClassifyLabel(t *testing.T) {
	l, err := Classify(":LOOP")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Kind != KindLabel || l.Name != "LOOP" {
		t.Fatalf("got %+v, want KindLabel LOOP", l)
	}
}

func TestClassifyInstruction(t *testing.T) {
	l, err := Classify("LD 3")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Kind != KindInstruction || l.Name != "LD" || l.Operands != "3" {
		t.Fatalf("got %+v, want KindInstruction LD operands 3", l)
	}
}

func TestClassifyInstructionNoOperands(t *testing.T) {
	l, err := Classify("RET")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Kind != KindInstruction || l.Name != "RET" || l.Operands != "" {
		t.Fatalf("got %+v, want KindInstruction RET with no operands", l)
	}
}
