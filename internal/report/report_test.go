package report

import (
	"strings"
	"testing"

	"github.com/tomstdenis/useqasm/internal/assembler"
	"github.com/tomstdenis/useqasm/internal/hexfile"
	"github.com/tomstdenis/useqasm/internal/variant"
)

func build(t *testing.T, source string) *assembler.Assembler {
	t.Helper()
	v, err := variant.Builtin(variant.Micro256)
	if err != nil {
		t.Fatalf("variant.Builtin: %v", err)
	}
	a := assembler.New(v)
	if err := a.Assemble(strings.Split(source, "\n")); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if err := hexfile.Resolve(a); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return a
}

func TestListingShowsWrittenSlotsOnly(t *testing.T) {
	a := build(t, ":START\nLD 3\nRET\n")
	out := Listing(a)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d listing lines, want 2 (only the two written slots)", len(lines))
	}
	if !strings.Contains(lines[0], "START") {
		t.Fatalf("first listing line should mention label START: %q", lines[0])
	}
}

func TestSymbolsListsEquAndLabels(t *testing.T) {
	a := build(t, ".EQU COUNT 5\n:START\nLD 3\n")
	out := Symbols(a)
	if !strings.Contains(out, "COUNT") || !strings.Contains(out, "START") {
		t.Fatalf("Symbols() should list both COUNT and START: %q", out)
	}
}

func TestUsageReportsUtilization(t *testing.T) {
	a := build(t, "RET\n")
	out := Usage(a)
	if !strings.Contains(out, "1/256") {
		t.Fatalf("Usage() should report 1/256 bytes used: %q", out)
	}
}

func TestUsageListsFreeSlotsAboveNinetyPercent(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 240; i++ {
		b.WriteString(".DB 00\n")
	}
	a := build(t, b.String())
	out := Usage(a)
	if !strings.Contains(out, "free slots") {
		t.Fatalf("at 240/256 (93.75%%) utilization, free slots should be listed: %q", out)
	}
}

func TestUsageOmitsFreeSlotListingBelowThreshold(t *testing.T) {
	a := build(t, "RET\n")
	out := Usage(a)
	if strings.Contains(out, "free slots") {
		t.Fatalf("at low utilization, free slots should not be listed: %q", out)
	}
}
