/*
	Microsequencer Assembler - Build variant configuration

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

// Package variant bundles the per-build constants the assembler core is
// generic over: ROM size, PC width, fill byte, and which EXEC1
// instruction set applies. The original tool picked these at compile
// time; here they are a value threaded through the pipeline so both the
// 256-byte and 4096-byte targets share one binary.
package variant

import "fmt"

// HalfWidth selects what a '<' / '>' half-selector extracts.
type HalfWidth int

const (
	// HalfNibble: addresses are 8-bit, halves are nibbles (256-byte variant).
	HalfNibble HalfWidth = iota
	// HalfByte: addresses are 12-bit, halves are bytes (4096-byte variant).
	HalfByte
)

// Name identifies a built-in variant.
type Name string

const (
	Micro256  Name = "256"  // original microsequencer, EXEC1 short-range jumps.
	Extended4096 Name = "4096" // extended target, EXEC1 absolute jumps via IMM12.
)

// Variant bundles the constants the core assembler is generic over.
type Variant struct {
	Name      Name
	ROMSize   int       // number of addressable ROM slots.
	PCWidth   int       // bits in the wrapping PC counter.
	FillByte  byte      // byte written to every unwritten slot.
	HalfWidth HalfWidth // meaning of '<' / '>' half-selectors.
	HasEXEC2  bool      // whether .MODE / EXEC2 table is available.
	HasShortJumps bool  // whether JMP/JNZ use the ±16 relative encoding.
}

// Builtin returns the canonical configuration for a variant name.
func Builtin(name Name) (Variant, error) {
	switch name {
	case Micro256, "":
		return Variant{
			Name:          Micro256,
			ROMSize:       256,
			PCWidth:       8,
			FillByte:      0xAF, // CLR
			HalfWidth:     HalfNibble,
			HasEXEC2:      true,
			HasShortJumps: true,
		}, nil
	case Extended4096:
		return Variant{
			Name:          Extended4096,
			ROMSize:       4096,
			PCWidth:       12,
			FillByte:      0xE6, // NOP
			HalfWidth:     HalfByte,
			HasEXEC2:      false,
			HasShortJumps: false,
		}, nil
	default:
		return Variant{}, fmt.Errorf("unknown variant %q", name)
	}
}

// PCMask returns the wrap mask for this variant's PC width.
func (v Variant) PCMask() int {
	return (1 << v.PCWidth) - 1
}

// Wrap folds pc into [0, 2^PCWidth) using the variant's PC width.
func (v Variant) Wrap(pc int) int {
	return pc & v.PCMask()
}
