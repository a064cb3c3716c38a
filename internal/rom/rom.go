/*
	Microsequencer Assembler - ROM image

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

// Package rom models the fixed-size ROM image the assembler writes
// into: one Slot per addressable PC value, mirroring the original
// tool's `program[256]` array but with an explicit pending-reference
// field instead of ad-hoc tgt/half strings.
package rom

import "github.com/tomstdenis/useqasm/internal/variant"

// Half selects which part of a resolved value a deferred reference uses.
type Half int

const (
	HalfNone Half = iota
	HalfHigh
	HalfLow
)

// PendingRef is a deferred label/symbol reference recorded on a slot
// during pass 1 and substituted during pass 2.
type PendingRef struct {
	Target    string
	Half      Half
	Format    int // instset.Format value; kept untyped here to avoid an import cycle.
	SecondIdx int // 1 on the second (PC+1) slot of an IMM12 reference, 0 otherwise.
}

// Mode identifies which instruction set a slot was encoded against.
type Mode int

const (
	ModeEXEC1 Mode = iota
	ModeEXEC2
)

// Slot is one ROM byte plus its assembler-time metadata.
type Slot struct {
	Byte       byte
	OriginLine int // 1-based source line that first wrote this slot, 0 = unset.
	Label      string
	Pending    *PendingRef
	Mode       Mode
	Source     string // source line text, kept for the listing report.
}

// Written reports whether an instruction or .DB has claimed this slot.
func (s *Slot) Written() bool {
	return s.OriginLine != 0
}

// Image is the ROM array plus the live PC the assembler threads through
// pass 1. Package assembler tracks the active mode itself and records
// it per slot; it does not update Image.Mode.
type Image struct {
	Variant variant.Variant
	Slots   []Slot
	PC      int
	Mode    Mode
}

// New allocates an image pre-filled with the variant's fill byte.
func New(v variant.Variant) *Image {
	slots := make([]Slot, v.ROMSize)
	for i := range slots {
		slots[i].Byte = v.FillByte
	}
	return &Image{Variant: v, Slots: slots}
}

// Advance moves the PC forward by n bytes, wrapping at ROMSize. It
// reports whether a wrap occurred so the caller can warn.
func (img *Image) Advance(n int) (wrapped bool) {
	next := img.PC + n
	if next >= img.Variant.ROMSize {
		wrapped = true
		next %= img.Variant.ROMSize
	}
	img.PC = next
	return wrapped
}

// Wrap folds an arbitrary slot index back into [0, ROMSize).
func (img *Image) Wrap(addr int) int {
	size := img.Variant.ROMSize
	addr %= size
	if addr < 0 {
		addr += size
	}
	return addr
}
