/*
	Microsequencer Assembler - Instruction tables

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

// Package instset holds the static mnemonic -> opcode tables for the
// EXEC1 and EXEC2 micro-instruction sets, for both ROM size variants.
// Matching is a map lookup rather than a linear scan over a
// null-terminated C array, but the entry shape -- {mnemonic, opcode,
// format} -- mirrors the original opcode table directly.
package instset

// Format is the operand-encoding shape associated with a mnemonic.
type Format int

const (
	// EXEC1 formats.
	FormatR     Format = iota + 1 // single byte, 4-bit imm/label in low nibble.
	FormatSB                      // single byte, (s:3,b:1) packed in low 4 bits.
	FormatFull                    // single byte, no operand.
	FormatIMM                     // two bytes: opcode, 8-bit imm/label.
	FormatIMM12                   // two bytes: opcode low nibble | hi4, byte lo8.
	FormatIMMS                    // two bytes, 12-bit imm shifted right 4 (16-aligned).
	FormatJMP                     // EXEC1-256 short relative forward jump.
	FormatJNZ                     // EXEC1-256 short relative backward jump.
	FormatJSR                     // EXEC1-256 16-byte aligned absolute jump.

	// EXEC2 formats.
	FormatRS // single byte, (r:2,s:2) in low 4 bits.
	FormatR2 // single byte, r:2 in low 2 bits.
	FormatRI // two bytes, r:2 in opcode low bits, 8-bit imm/label.
	FormatI  // two bytes, opcode then 8-bit imm/label.
	FormatNO // single byte, no operand.
)

// Bytes reports how many ROM slots an instruction of this format occupies.
func (f Format) Bytes() int {
	switch f {
	case FormatR, FormatSB, FormatFull, FormatJMP, FormatJNZ, FormatJSR,
		FormatRS, FormatR2, FormatNO:
		return 1
	case FormatIMM, FormatIMM12, FormatIMMS, FormatRI, FormatI:
		return 2
	default:
		return 0
	}
}

// Opcode is one instruction table entry.
type Opcode struct {
	Mnemonic string
	Base     byte
	Format   Format
}
