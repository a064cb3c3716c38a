/*
	Microsequencer Assembler - Usage report

	Copyright (c) 2024, Richard Cornwell

	Permission is hereby granted, free of charge, to any person obtaining a
	copy of this software and associated documentation files (the "Software"),
	to deal in the Software without restriction, including without limitation
	the rights to use, copy, modify, merge, publish, distribute, sublicense,
	and/or sell copies of the Software, and to permit persons to whom the
	Software is furnished to do so, subject to the following conditions:

	The above copyright notice and this permission notice shall be included in
	all copies or substantial portions of the Software.

	THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
	IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
	FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
	RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
	IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
	CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

// Package report formats the listing a successful assembly prints:
// per-slot disposition, the symbol table, and a utilization summary,
// in the register/memory-dump style of command/parser's mem_commands.
package report

import (
	"fmt"
	"strings"

	"github.com/tomstdenis/useqasm/internal/assembler"
	"github.com/tomstdenis/useqasm/util/hex"
)

// addrWidth returns how many hex digits an address needs for romSize.
func addrWidth(romSize int) int {
	if romSize > 256 {
		return 3
	}
	return 2
}

// Listing renders one line per written ROM slot: address, byte, the
// label that claimed it (if any), the originating source line number
// and text.
func Listing(a *assembler.Assembler) string {
	width := addrWidth(len(a.Image.Slots))
	var b strings.Builder
	for addr, slot := range a.Image.Slots {
		if !slot.Written() {
			continue
		}
		label := slot.Label
		if label == "" {
			label = "-"
		}
		hex.FormatAddr(&b, addr, width)
		b.WriteString("  ")
		hex.FormatByte(&b, slot.Byte)
		fmt.Fprintf(&b, "  %-12s  line %-5d  %s\n", label, slot.OriginLine, slot.Source)
	}
	return b.String()
}

// Symbols renders the .EQU symbols, then the code labels, each in
// definition order.
func Symbols(a *assembler.Assembler) string {
	var b strings.Builder
	for _, e := range a.Symbols.Entries() {
		fmt.Fprintf(&b, "%-16s = %04X   (line %d)\n", e.Name, e.Value, e.OriginLine)
	}
	for _, e := range a.Labels.Entries() {
		fmt.Fprintf(&b, "%-16s : %04X   (line %d)\n", e.Name, e.Value, e.OriginLine)
	}
	return b.String()
}

// Usage summarizes how much of the ROM is claimed, and per spec lists
// free slot addresses once utilization climbs past 90% but stops
// short of listing anything once the ROM is entirely full.
func Usage(a *assembler.Assembler) string {
	total := len(a.Image.Slots)
	used := 0
	var free []int
	for addr, slot := range a.Image.Slots {
		if slot.Written() {
			used++
		} else {
			free = append(free, addr)
		}
	}

	var b strings.Builder
	pct := float64(used) / float64(total) * 100
	fmt.Fprintf(&b, "%d/%d bytes used (%.1f%%)\n", used, total, pct)

	if used > 0 && used < total && pct > 90.0 {
		fmt.Fprintf(&b, "free slots (%d):\n", len(free))
		for _, addr := range free {
			fmt.Fprintf(&b, "  %04X\n", addr)
		}
	}
	return b.String()
}
